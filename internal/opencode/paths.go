package opencode

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	configDirName  = "opencode"
	configFileName = "oh-my-opencode.json"
	portalDirName  = "portal"
)

// ConfigRoot returns the base directory for user configuration:
// $XDG_CONFIG_HOME when set, otherwise ~/.config.
func ConfigRoot() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(home, ".config"), nil
}

// DefaultConfigPath returns the standard location of the live document:
// <config-root>/opencode/oh-my-opencode.json.
func DefaultConfigPath() (string, error) {
	root, err := ConfigRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, configDirName, configFileName), nil
}

// PortalDir returns the directory holding per-provider override files:
// <config-root>/portal.
func PortalDir() (string, error) {
	root, err := ConfigRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, portalDirName), nil
}

// OverridePath returns the override file location for the named provider.
func OverridePath(provider string) (string, error) {
	dir, err := PortalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, provider+".json"), nil
}
