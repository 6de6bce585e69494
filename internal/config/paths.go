package config

import (
	"os"
	"path/filepath"

	"github.com/kitecorp/kitebuild/internal/constants"
)

// GlobalConfigDir returns the kitebuild home directory (~/.kitebuild).
func GlobalConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, constants.KitebuildHome), nil
}

// GlobalConfigPath returns the path of the global config file
// (~/.kitebuild/config.yaml).
func GlobalConfigPath() (string, error) {
	dir, err := GlobalConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.GlobalConfigName), nil
}

// ProjectConfigPath returns the path of the project config file
// (<projectDir>/kitebuild.yaml).
func ProjectConfigPath(projectDir string) string {
	return filepath.Join(projectDir, constants.ProjectConfigName)
}
