package config

import (
	"os"
	"path/filepath"
)

const defaultBaseDir = ".chorus"

// Paths holds resolved filesystem paths for chorus data.
type Paths struct {
	Base        string // ~/.chorus
	Credentials string // ~/.chorus/credentials.yaml
	Cache       string // ~/.chorus/cache.db
	Logs        string // ~/.chorus/logs
}

// ResolvePaths computes all standard paths from the home directory.
// If CHORUS_HOME is set, it overrides the default base directory.
func ResolvePaths() (Paths, error) {
	base := os.Getenv("CHORUS_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Paths{}, err
		}
		base = filepath.Join(home, defaultBaseDir)
	}

	return Paths{
		Base:        base,
		Credentials: filepath.Join(base, "credentials.yaml"),
		Cache:       filepath.Join(base, "cache.db"),
		Logs:        filepath.Join(base, "logs"),
	}, nil
}

// EnsureDirs creates the standard directories if they don't exist.
func (p Paths) EnsureDirs() error {
	for _, d := range []string{p.Base, p.Logs} {
		if err := os.MkdirAll(d, 0o700); err != nil {
			return err
		}
	}
	return nil
}
