// Package config resolves gitseed's own settings.
//
// These are tool settings, separate from the .git/config file written into
// a new repository. Values are layered with clear precedence:
//  1. Command-line flags (highest priority)
//  2. Environment variables (GITSEED_ prefix)
//  3. Local config (.gitseed.yaml in the enclosing repository root)
//  4. Global config (~/.config/gitseed/config.yaml)
//  5. Built-in defaults (lowest priority)
//
// # Basic Usage
//
//	resolver := config.NewResolver(config.DefaultResolverConfig())
//	cfg := resolver.Resolve()
//	fmt.Println(cfg.Get(config.KeyDefaultBranch))    // "main"
//	fmt.Println(cfg.Source(config.KeyDefaultBranch)) // "default"
//
//	repo, err := cfg.Initializer(logger).Create(path)
//
// # Environment Variables
//
//	GITSEED_DEFAULT_BRANCH=trunk   # sets "default_branch"
//	GITSEED_LOG_LEVEL=debug        # sets "log_level"
//
// # Saving
//
// SaveConfig writes single keys into the global or local YAML file,
// rejecting keys that are not in its valid key lists.
package config
