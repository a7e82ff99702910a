package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SaveConfig provides methods to save configuration values.
type SaveConfig struct {
	// GlobalConfigDir is the directory under ~/.config/ for global config.
	GlobalConfigDir string

	// GlobalConfigFile is the filename. Defaults to "config.yaml".
	GlobalConfigFile string

	// LocalConfigName is the filename for local config in the repository root.
	LocalConfigName string

	// ValidGlobalKeys lists keys that can be set in global config.
	ValidGlobalKeys []string

	// ValidLocalKeys lists keys that can be set in local config.
	ValidLocalKeys []string

	// ValidateValue checks a value before it is saved. Optional.
	ValidateValue func(key, value string) error
}

func (c SaveConfig) globalConfigFile() string {
	if c.GlobalConfigFile != "" {
		return c.GlobalConfigFile
	}
	return "config.yaml"
}

// GlobalPath returns the path of the global config file.
func (c SaveConfig) GlobalPath() (string, error) {
	if c.GlobalConfigDir == "" {
		return "", fmt.Errorf("global config directory not configured")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", c.GlobalConfigDir, c.globalConfigFile()), nil
}

// LocalPath returns the path of the local config file under repoRoot.
func (c SaveConfig) LocalPath(repoRoot string) (string, error) {
	if repoRoot == "" {
		return "", fmt.Errorf("repository root not found")
	}
	if c.LocalConfigName == "" {
		return "", fmt.Errorf("local config name not configured")
	}
	return filepath.Join(repoRoot, c.LocalConfigName), nil
}

// SaveGlobal saves a key-value pair to the global config file.
func (c SaveConfig) SaveGlobal(key, value string) error {
	if err := validateKey("global", c.ValidGlobalKeys, key); err != nil {
		return err
	}
	if err := c.validateValue(key, value); err != nil {
		return err
	}
	path, err := c.GlobalPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return updateFile(path, 0o600, func(m map[string]interface{}) {
		m[key] = parseValue(value)
	})
}

// SaveLocal saves a key-value pair to the local config file in the
// repository root.
func (c SaveConfig) SaveLocal(repoRoot, key, value string) error {
	if err := validateKey("local", c.ValidLocalKeys, key); err != nil {
		return err
	}
	if err := c.validateValue(key, value); err != nil {
		return err
	}
	path, err := c.LocalPath(repoRoot)
	if err != nil {
		return err
	}
	// Local config is shared with the repository and should be readable.
	return updateFile(path, 0o644, func(m map[string]interface{}) {
		m[key] = parseValue(value)
	})
}

// DeleteGlobalKey removes a key from the global config.
// A missing file is not an error.
func (c SaveConfig) DeleteGlobalKey(key string) error {
	path, err := c.GlobalPath()
	if err != nil {
		return err
	}
	return deleteKey(path, 0o600, key)
}

// DeleteLocalKey removes a key from the local config.
// A missing file is not an error.
func (c SaveConfig) DeleteLocalKey(repoRoot, key string) error {
	path, err := c.LocalPath(repoRoot)
	if err != nil {
		return err
	}
	return deleteKey(path, 0o644, key)
}

func (c SaveConfig) validateValue(key, value string) error {
	if c.ValidateValue == nil {
		return nil
	}
	return c.ValidateValue(key, value)
}

func validateKey(scope string, valid []string, key string) error {
	if len(valid) > 0 && !contains(valid, key) {
		return fmt.Errorf("unknown %s config key: %s\n\nValid keys: %s",
			scope, key, strings.Join(valid, ", "))
	}
	return nil
}

// updateFile loads the YAML map at path (empty if absent), applies mutate
// and writes it back. A file that does not parse is left untouched.
func updateFile(path string, perm os.FileMode, mutate func(map[string]interface{})) error {
	var existing map[string]interface{}
	if data, readErr := os.ReadFile(path); readErr == nil {
		if err := yaml.Unmarshal(data, &existing); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	}
	if existing == nil {
		existing = make(map[string]interface{})
	}

	mutate(existing)

	data, err := yaml.Marshal(existing)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, perm)
}

func deleteKey(path string, perm os.FileMode, key string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	return updateFile(path, perm, func(m map[string]interface{}) {
		delete(m, key)
	})
}

// parseValue converts string values to appropriate types for YAML.
func parseValue(value string) interface{} {
	switch strings.ToLower(value) {
	case "true":
		return true
	case "false":
		return false
	}
	return value
}
