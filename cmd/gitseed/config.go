package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/gitseed/config"
	clierrors "github.com/randalmurphal/gitseed/errors"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change gitseed settings",
		Long: `Show or change gitseed settings.

Settings are read from ~/.config/gitseed/config.yaml (global), from
.gitseed.yaml in the enclosing repository root (local) and from
GITSEED_* environment variables.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(true)
		},
	}

	var local bool

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List every setting with its value and source",
		Args:  exactArgs(0, "gitseed config list"),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := a.settings.Keys()
			sort.Strings(keys)
			for _, key := range keys {
				value, src := a.settings.GetWithSource(key)
				fmt.Fprintf(a.stdout, "%s=%s (%s)\n", key, value, src)
			}
			return nil
		},
	}

	getCmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Print the value of a setting",
		Args:  exactArgs(1, "gitseed config get <key>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkKey(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, a.settings.Get(args[0]))
			return nil
		},
	}

	setCmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Save a setting to the global (or --local) config file",
		Args:  exactArgs(2, "gitseed config set [--local] <key> <value>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			if local {
				return a.saveConfig.SaveLocal(a.resolver.RepoRoot(), args[0], args[1])
			}
			return a.saveConfig.SaveGlobal(args[0], args[1])
		},
	}

	unsetCmd := &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove a setting from the global (or --local) config file",
		Args:  exactArgs(1, "gitseed config unset [--local] <key>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkKey(args[0]); err != nil {
				return err
			}
			if local {
				return a.saveConfig.DeleteLocalKey(a.resolver.RepoRoot(), args[0])
			}
			return a.saveConfig.DeleteGlobalKey(args[0])
		},
	}

	for _, c := range []*cobra.Command{setCmd, unsetCmd} {
		c.Flags().BoolVar(&local, "local", false, "use .gitseed.yaml in the repository root")
	}

	cmd.AddCommand(listCmd, getCmd, setCmd, unsetCmd)
	return cmd
}

func exactArgs(n int, usage string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return clierrors.NewUsageError(usage)
		}
		return nil
	}
}

func checkKey(key string) error {
	for _, k := range config.Keys() {
		if k == key {
			return nil
		}
	}
	return fmt.Errorf("unknown config key: %s", key)
}
