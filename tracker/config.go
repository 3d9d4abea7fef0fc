package tracker

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigDirName is the name of the directory under os.UserConfigDir() that
// holds the user configuration files.
const ConfigDirName = "tabula"

// ReadCustomConfig reads filename from the user configuration directory into
// target, which must be a pointer. exists is false if the file could not be
// found; err is set if the file exists but could not be parsed.
func ReadCustomConfig(filename string, target any) (exists bool, err error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return false, err
	}
	path := filepath.Join(configDir, ConfigDirName, filename)
	bytes, err := os.ReadFile(path)
	if err != nil {
		return false, nil
	}
	if err := yaml.Unmarshal(bytes, target); err != nil {
		return true, fmt.Errorf("could not parse %s: %w", path, err)
	}
	return true, nil
}
