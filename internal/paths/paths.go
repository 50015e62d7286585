package paths

import (
	"os"
	"path/filepath"
)

// EnvOptionsFile names the environment variable that overrides the default
// options file.
const EnvOptionsFile = "DROPSELECT_OPTIONS"

// LocalOptionsFile is looked up in the working directory first.
const LocalOptionsFile = "options.yaml"

func home() string {
	h, _ := os.UserHomeDir()
	return h
}

// ConfigDir returns $XDG_CONFIG_HOME/dropselect, or ~/.config/dropselect.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "dropselect")
	}
	return filepath.Join(home(), ".config", "dropselect")
}

// UserOptionsFile returns the options file in ConfigDir.
func UserOptionsFile() string {
	return filepath.Join(ConfigDir(), "options.yaml")
}

// OptionsFile resolves the options file used when none is given: the
// environment override, then ./options.yaml if present, then the user file.
func OptionsFile() string {
	if p := os.Getenv(EnvOptionsFile); p != "" {
		return p
	}
	if _, err := os.Stat(LocalOptionsFile); err == nil {
		return LocalOptionsFile
	}
	if _, err := os.Stat(UserOptionsFile()); err == nil {
		return UserOptionsFile()
	}
	return LocalOptionsFile
}
