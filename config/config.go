// Package config loads application credentials from the environment or
// from a YAML file with named profiles.
package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Environment variable names read by FromEnvironment. Overridable when
// embedding chorus in an application with its own naming convention.
var (
	ClientIDVar     = "CHORUS_CLIENT_ID"
	ClientSecretVar = "CHORUS_CLIENT_SECRET"
	RedirectURIVar  = "CHORUS_REDIRECT_URI"
	UserRefreshVar  = "CHORUS_USER_REFRESH"
)

// DefaultProfile is the profile FromFile selects when none is named.
const DefaultProfile = "default"

// Credentials holds application credentials. Missing values are empty
// strings, not errors; validation happens where they are used.
type Credentials struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	RedirectURI  string `yaml:"redirect_uri"`
	UserRefresh  string `yaml:"user_refresh"`
}

// Error is a configuration loading or parsing error.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

// envVarPattern matches ${VAR_NAME} patterns in strings.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// expandEnvVars replaces ${VAR} patterns with environment variable values.
// Unset variables are left unchanged.
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		if val, ok := os.LookupEnv(varName); ok {
			return val
		}
		return match
	})
}

// FromEnvironment reads credentials from the environment. Unset
// variables yield empty fields.
func FromEnvironment() Credentials {
	return Credentials{
		ClientID:     os.Getenv(ClientIDVar),
		ClientSecret: os.Getenv(ClientSecretVar),
		RedirectURI:  os.Getenv(RedirectURIVar),
		UserRefresh:  os.Getenv(UserRefreshVar),
	}
}

// FromFile reads credentials from a YAML file holding named profiles:
//
//	default:
//	  client_id: app-id
//	  client_secret: ${SECRET_FROM_ENV}
//	  redirect_uri: https://localhost:5000/callback
//	another:
//	  client_id: other-id
//
// An empty profile name selects DefaultProfile. ${VAR} references in
// values are expanded from the environment.
func FromFile(path, profile string) (Credentials, error) {
	if profile == "" {
		profile = DefaultProfile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Credentials{}, err
	}

	var profiles map[string]Credentials
	if err := yaml.Unmarshal(data, &profiles); err != nil {
		return Credentials{}, &Error{Message: "failed to parse credentials file: " + err.Error()}
	}

	creds, ok := profiles[profile]
	if !ok {
		return Credentials{}, &Error{Message: fmt.Sprintf("profile %q not found in %s", profile, path)}
	}

	creds.ClientID = expandEnvVars(creds.ClientID)
	creds.ClientSecret = expandEnvVars(creds.ClientSecret)
	creds.RedirectURI = expandEnvVars(creds.RedirectURI)
	creds.UserRefresh = expandEnvVars(creds.UserRefresh)
	return creds, nil
}
