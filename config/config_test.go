package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCredentials = `
default:
  client_id: df_id
  client_secret: df_secret
  redirect_uri: df_uri
  user_refresh: df_refresh

another:
  client_id: an_id
  client_secret: an_secret
  redirect_uri: an_uri

missing:
  client_id: only_id

expanded:
  client_id: ${CHORUS_TEST_EXPAND}
  client_secret: ${CHORUS_TEST_UNSET_VAR}
`

func writeCredentials(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "credentials.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testCredentials), 0o600))
	return path
}

func TestFromEnvironment(t *testing.T) {
	t.Setenv(ClientIDVar, "env_id")
	t.Setenv(ClientSecretVar, "env_secret")
	t.Setenv(RedirectURIVar, "env_uri")
	t.Setenv(UserRefreshVar, "env_refresh")

	creds := FromEnvironment()
	assert.Equal(t, "env_id", creds.ClientID)
	assert.Equal(t, "env_secret", creds.ClientSecret)
	assert.Equal(t, "env_uri", creds.RedirectURI)
	assert.Equal(t, "env_refresh", creds.UserRefresh)
}

func TestFromEnvironmentMissingIsEmpty(t *testing.T) {
	t.Setenv(ClientIDVar, "")
	t.Setenv(ClientSecretVar, "")
	t.Setenv(RedirectURIVar, "")
	t.Setenv(UserRefreshVar, "")

	creds := FromEnvironment()
	assert.Empty(t, creds.ClientID)
	assert.Empty(t, creds.ClientSecret)
}

func TestFromEnvironmentRenamedVars(t *testing.T) {
	origID := ClientIDVar
	ClientIDVar = "MY_APP_ID"
	t.Cleanup(func() { ClientIDVar = origID })

	t.Setenv("MY_APP_ID", "renamed_id")
	creds := FromEnvironment()
	assert.Equal(t, "renamed_id", creds.ClientID)
}

func TestFromFileDefaultProfile(t *testing.T) {
	path := writeCredentials(t)

	creds, err := FromFile(path, "")
	require.NoError(t, err)
	assert.Equal(t, "df_id", creds.ClientID)
	assert.Equal(t, "df_secret", creds.ClientSecret)
	assert.Equal(t, "df_uri", creds.RedirectURI)
	assert.Equal(t, "df_refresh", creds.UserRefresh)
}

func TestFromFileNamedProfile(t *testing.T) {
	path := writeCredentials(t)

	creds, err := FromFile(path, "another")
	require.NoError(t, err)
	assert.Equal(t, "an_id", creds.ClientID)
	assert.Empty(t, creds.UserRefresh)
}

func TestFromFileMissingKeysAreEmpty(t *testing.T) {
	path := writeCredentials(t)

	creds, err := FromFile(path, "missing")
	require.NoError(t, err)
	assert.Equal(t, "only_id", creds.ClientID)
	assert.Empty(t, creds.ClientSecret)
	assert.Empty(t, creds.RedirectURI)
}

func TestFromFileProfileIsCaseSensitive(t *testing.T) {
	path := writeCredentials(t)

	_, err := FromFile(path, "ANOTHER")
	assert.Error(t, err)
}

func TestFromFileNonexistentFile(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "nope.yaml"), "")
	assert.True(t, os.IsNotExist(err))
}

func TestFromFileNonexistentProfile(t *testing.T) {
	path := writeCredentials(t)

	_, err := FromFile(path, "notprofile")
	require.Error(t, err)

	var cfgErr *Error
	assert.ErrorAs(t, err, &cfgErr)
}

func TestFromFileEnvExpansion(t *testing.T) {
	path := writeCredentials(t)
	t.Setenv("CHORUS_TEST_EXPAND", "expanded_id")
	os.Unsetenv("CHORUS_TEST_UNSET_VAR")

	creds, err := FromFile(path, "expanded")
	require.NoError(t, err)
	assert.Equal(t, "expanded_id", creds.ClientID)
	assert.Equal(t, "${CHORUS_TEST_UNSET_VAR}", creds.ClientSecret,
		"unset variables are left unchanged")
}

func TestFromFileInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("not: [valid"), 0o600))

	_, err := FromFile(path, "")
	require.Error(t, err)

	var cfgErr *Error
	assert.ErrorAs(t, err, &cfgErr)
}

func TestResolvePathsHomeOverride(t *testing.T) {
	t.Setenv("CHORUS_HOME", "/tmp/chorus-test")

	p, err := ResolvePaths()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/chorus-test", p.Base)
	assert.Equal(t, filepath.Join("/tmp/chorus-test", "credentials.yaml"), p.Credentials)
	assert.Equal(t, filepath.Join("/tmp/chorus-test", "cache.db"), p.Cache)
}
