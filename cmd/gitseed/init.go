package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	clierrors "github.com/randalmurphal/gitseed/errors"
	"github.com/randalmurphal/gitseed/git"
)

const initUsage = "gitseed init [--branch <name>] <path>"

func newInitCmd(a *app) *cobra.Command {
	var (
		branch string
		quiet  bool
	)

	cmd := &cobra.Command{
		Use:   "init <path>",
		Short: "Create an empty repository at path",
		Long: `Create an empty repository at path.

The working tree is created if it does not exist. Inside it, .git/ receives
the branches, objects, refs/heads and refs/tags directories and the
description, HEAD and config files. Running init again on an existing
repository restores the seed files and any missing directories.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return clierrors.NewUsageError(initUsage)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(args[0], branch, quiet)
		},
	}

	cmd.Flags().StringVarP(&branch, "branch", "b", "", "name of the branch HEAD points at")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only print errors")

	return cmd
}

func (a *app) runInit(path, branch string, quiet bool) error {
	_, existed := git.NewRepository(path).Dir(".")

	in := a.settings.Initializer(a.logger)
	if branch != "" {
		in.DefaultBranch = branch
	}

	repo, err := in.Create(path)
	if err != nil {
		return clierrors.WrapInitError(err)
	}

	if quiet {
		return nil
	}

	gitdir := repo.GitDir()
	if abs, err := filepath.Abs(gitdir); err == nil {
		gitdir = abs
	}
	if existed {
		fmt.Fprintf(a.stdout, "Reinitialized existing Git repository in %s/\n", gitdir)
	} else {
		fmt.Fprintf(a.stdout, "Initialized empty Git repository in %s/\n", gitdir)
	}
	return nil
}
