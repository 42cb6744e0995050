package config

import (
	"os"
	"path"
)

func GetConfigDirectoryPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}

	return path.Join(homeDir, ".goigapi")
}

func GetConfigDirectoryProfilesPath() string {
	return path.Join(GetConfigDirectoryPath(), "profiles")
}

// GetDefaultSettingsPath is where the CLI persists the session between runs,
// unless --settings points somewhere else.
func GetDefaultSettingsPath() string {
	return path.Join(GetConfigDirectoryPath(), "session.json")
}
