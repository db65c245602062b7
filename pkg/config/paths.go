package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ConfigDirName is the name of the config directory under ~/.config.
	ConfigDirName = "paydeploy"
	// TemplateFileName is the name of the per-user template profile.
	TemplateFileName = "template.yaml"
)

// GetConfigDir returns the config directory path (~/.config/paydeploy).
// Respects XDG_CONFIG_HOME if set.
func GetConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDirName), nil
}

// UserTemplatePath returns the path of the per-user template profile.
func UserTemplatePath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, TemplateFileName), nil
}

// ResolvePath picks the template file to load. An explicit path wins;
// otherwise the per-user profile is used if it exists. An empty result
// means the built-in default.
func ResolvePath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	path, err := UserTemplatePath()
	if err != nil {
		// No home directory: fall back to the built-in template
		return "", nil
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("cannot access %s: %w", path, err)
	}
	return path, nil
}

// LoadResolved loads the template chosen by ResolvePath.
func LoadResolved(explicit string) (Template, string, error) {
	path, err := ResolvePath(explicit)
	if err != nil {
		return Template{}, "", err
	}
	tpl, err := Load(path)
	return tpl, path, err
}
