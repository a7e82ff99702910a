package config

import (
	"fmt"
	"log/slog"

	"github.com/randalmurphal/gitseed/git"
)

// Settings recognized by gitseed.
const (
	KeyDefaultBranch = "default_branch"
	KeyDescription   = "description"
	KeyLogLevel      = "log_level"
)

// Locations of gitseed's own settings.
const (
	AppName         = "gitseed"
	EnvPrefix       = "GITSEED_"
	LocalConfigName = ".gitseed.yaml"
)

// Keys lists every setting gitseed understands.
func Keys() []string {
	return []string{KeyDefaultBranch, KeyDescription, KeyLogLevel}
}

// Defaults returns the built-in value of every setting.
func Defaults() map[string]string {
	return map[string]string{
		KeyDefaultBranch: git.DefaultBranch,
		KeyDescription:   git.DefaultDescription,
		KeyLogLevel:      "warn",
	}
}

// DefaultResolverConfig returns the resolver configuration for gitseed.
func DefaultResolverConfig() ResolverConfig {
	return ResolverConfig{
		EnvPrefix:       EnvPrefix,
		GlobalConfigDir: AppName,
		LocalConfigName: LocalConfigName,
		Defaults:        Defaults(),
		ValidGlobalKeys: Keys(),
		ValidLocalKeys:  Keys(),
	}
}

// DefaultSaveConfig returns the writer configuration matching
// DefaultResolverConfig.
func DefaultSaveConfig() SaveConfig {
	return SaveConfig{
		GlobalConfigDir: AppName,
		LocalConfigName: LocalConfigName,
		ValidGlobalKeys: Keys(),
		ValidLocalKeys:  Keys(),
		ValidateValue:   ValidateValue,
	}
}

// ValidateValue rejects a value that would break later commands if saved.
func ValidateValue(key, value string) error {
	switch key {
	case KeyLogLevel:
		var level slog.Level
		if err := level.UnmarshalText([]byte(value)); err != nil {
			return fmt.Errorf("invalid %s %q: %w", KeyLogLevel, value, err)
		}
	case KeyDefaultBranch:
		if err := git.ValidateBranchName(value); err != nil {
			return fmt.Errorf("invalid %s: %w", KeyDefaultBranch, err)
		}
	}
	return nil
}

// LogLevel parses the resolved log_level setting.
func (c *Resolved) LogLevel() (slog.Level, error) {
	var level slog.Level
	value := c.Get(KeyLogLevel)
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return slog.LevelWarn, fmt.Errorf("invalid %s %q: %w", KeyLogLevel, value, err)
	}
	return level, nil
}

// Initializer returns a git.Initializer carrying the resolved seed settings.
func (c *Resolved) Initializer(logger *slog.Logger) git.Initializer {
	return git.Initializer{
		DefaultBranch: c.Get(KeyDefaultBranch),
		Description:   c.Get(KeyDescription),
		Logger:        logger,
	}
}
