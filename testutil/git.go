package testutil

import (
	"os"
	"os/exec"
	"strings"
	"testing"
)

// RequireGit skips the test when the git binary is not installed.
func RequireGit(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
}

// GitOutput runs git in dir and returns its trimmed stdout.
// The test fails if the command fails.
func GitOutput(t *testing.T, dir string, args ...string) string {
	t.Helper()

	output, err := runGit(t, dir, args...)
	if err != nil {
		t.Fatalf("git %v failed: %v", args, err)
	}
	return strings.TrimRight(output, "\n")
}

// runGit runs a git command in the specified directory with global and
// system configuration ignored.
func runGit(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_CONFIG_NOSYSTEM=1",
		"GIT_CONFIG_GLOBAL="+os.DevNull,
		"GIT_CEILING_DIRECTORIES="+dir,
	)

	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			t.Logf("git %v stderr: %s", args, exitErr.Stderr)
		}
		return "", err
	}

	return string(output), nil
}
