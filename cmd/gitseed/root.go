package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/gitseed/config"
	clierrors "github.com/randalmurphal/gitseed/errors"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer

	resolverConfig config.ResolverConfig
	saveConfig     config.SaveConfig

	// Set by the persistent pre-run hook.
	resolver *config.Resolver
	settings *config.Resolved
	logger   *slog.Logger

	logLevel string // --log-level
}

func newApp(stdout, stderr io.Writer) *app {
	rc := config.DefaultResolverConfig()
	rc.ErrWriter = stderr
	return &app{
		stdout:         stdout,
		stderr:         stderr,
		resolverConfig: rc,
		saveConfig:     config.DefaultSaveConfig(),
	}
}

func run(args []string, stdout, stderr io.Writer) int {
	return newApp(stdout, stderr).run(args)
}

func (a *app) run(args []string) int {
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		if clierrors.IsUsageError(err) {
			return 2
		}
		return 1
	}
	return 0
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gitseed",
		Short:         "Create the on-disk layout of a new repository",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(false)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return clierrors.NewUsageError("gitseed <command> [args]")
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "",
		"log level: debug, info, warn or error (overrides "+config.KeyLogLevel+")")

	rootCmd.AddCommand(newInitCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))

	return rootCmd
}

// setup resolves settings and builds the logger. When lenient, a bad
// log_level falls back to warn so the setting can still be repaired.
func (a *app) setup(lenient bool) error {
	a.resolver = config.NewResolver(a.resolverConfig)
	a.settings = a.resolver.ResolveWithFlags(map[string]string{
		config.KeyLogLevel: a.logLevel,
	})

	level, err := a.settings.LogLevel()
	if err != nil {
		if !lenient {
			return err
		}
		fmt.Fprintf(a.stderr, "Warning: %v; using warn\n", err)
	}
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
	return nil
}
