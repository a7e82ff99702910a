package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"syscall"

	"github.com/randalmurphal/gitseed/git"
)

// CLIError wraps an error with user-friendly context and suggestions.
type CLIError struct {
	// Err is the underlying error
	Err error
	// Message is a user-friendly description of what went wrong
	Message string
	// Suggestion is an actionable hint for the user
	Suggestion string
	// Details provides additional context (optional)
	Details string
}

func (e *CLIError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)
	if e.Details != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Details)
	}
	if e.Suggestion != "" {
		sb.WriteString("\n\n")
		sb.WriteString(e.Suggestion)
	}
	return sb.String()
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// ErrorMessenger provides customizable error messages.
// Implement this interface to customize suggestions for your CLI.
type ErrorMessenger interface {
	// InvalidTargetMessage returns the message and suggestion when the
	// target path exists and is not a directory.
	InvalidTargetMessage(path string) (message, suggestion string)
	// PermissionDeniedMessage returns the message and suggestion when a
	// directory or file cannot be created.
	PermissionDeniedMessage(path string) (message, suggestion string)
	// PathCollisionMessage returns the message and suggestion when a path
	// is occupied by an entry of the wrong kind.
	PathCollisionMessage(path string) (message, suggestion string)
	// PathNotReadyMessage returns the message and suggestion when a seed
	// file's parent directory is unexpectedly missing.
	PathNotReadyMessage(path string) (message, suggestion string)
	// InvalidBranchMessage returns the message and suggestion for an
	// unusable default branch name.
	InvalidBranchMessage() (message, suggestion string)
	// UsageMessage returns the message and suggestion for bad arguments.
	UsageMessage(usage string) (message, suggestion string)
}

// DefaultMessenger provides default error messages.
type DefaultMessenger struct{}

func (m DefaultMessenger) InvalidTargetMessage(path string) (string, string) {
	return fmt.Sprintf("Cannot initialize a repository at %s: it is not a directory.", path),
		"Pass a directory path, or a path that does not exist yet."
}

func (m DefaultMessenger) PermissionDeniedMessage(path string) (string, string) {
	return fmt.Sprintf("Permission denied while creating %s", path),
		"Check that you can write to the target directory."
}

func (m DefaultMessenger) PathCollisionMessage(path string) (string, string) {
	return fmt.Sprintf("Cannot create %s: the path is occupied by a file.", path),
		"Move the conflicting file out of the way and run init again."
}

func (m DefaultMessenger) PathNotReadyMessage(path string) (string, string) {
	return fmt.Sprintf("Cannot write %s: its directory is missing.", path),
		"The repository layout is incomplete. Run init again to repair it."
}

func (m DefaultMessenger) InvalidBranchMessage() (string, string) {
	return "The configured default branch name is not a valid ref name.",
		"Set default_branch to a name such as \"main\"."
}

func (m DefaultMessenger) UsageMessage(usage string) (string, string) {
	return "Invalid arguments.", "Usage: " + usage
}

// WrapConfig configures error wrapping behavior.
type WrapConfig struct {
	Messenger ErrorMessenger
}

// Option configures WrapConfig.
type Option func(*WrapConfig)

// WithMessenger sets a custom error messenger.
func WithMessenger(m ErrorMessenger) Option {
	return func(c *WrapConfig) {
		c.Messenger = m
	}
}

func getMessenger(opts []Option) ErrorMessenger {
	cfg := &WrapConfig{
		Messenger: DefaultMessenger{},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg.Messenger
}

// WrapInitError wraps a repository initialization error with guidance.
// The original error stays reachable through errors.Is and errors.As, and
// its text (operation and path) is kept as the details. Permission and
// collision failures also match ErrPermissionDenied and ErrPathCollision.
func WrapInitError(err error, opts ...Option) error {
	if err == nil {
		return nil
	}

	messenger := getMessenger(opts)
	path := failedPath(err)

	var msg, suggestion string
	cause := err
	switch {
	case errors.Is(err, git.ErrInvalidTarget):
		msg, suggestion = messenger.InvalidTargetMessage(path)
		return &CLIError{Err: err, Message: msg, Suggestion: suggestion}
	case errors.Is(err, git.ErrInvalidBranchName):
		msg, suggestion = messenger.InvalidBranchMessage()
	case errors.Is(err, fs.ErrPermission):
		msg, suggestion = messenger.PermissionDeniedMessage(path)
		cause = fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	case errors.Is(err, syscall.ENOTDIR), errors.Is(err, fs.ErrExist):
		msg, suggestion = messenger.PathCollisionMessage(path)
		cause = fmt.Errorf("%w: %w", ErrPathCollision, err)
	case errors.Is(err, git.ErrPathNotReady):
		msg, suggestion = messenger.PathNotReadyMessage(path)
	default:
		return err
	}

	return &CLIError{
		Err:        cause,
		Message:    msg,
		Details:    err.Error(),
		Suggestion: suggestion,
	}
}

// NewUsageError creates an error for a command invoked with bad arguments.
func NewUsageError(usage string, opts ...Option) error {
	messenger := getMessenger(opts)
	msg, suggestion := messenger.UsageMessage(usage)
	return &CLIError{
		Err:        ErrUsage,
		Message:    msg,
		Suggestion: suggestion,
	}
}

// failedPath returns the path recorded on a *git.Error, if any.
func failedPath(err error) string {
	var gitErr *git.Error
	if errors.As(err, &gitErr) {
		return gitErr.Path
	}
	return ""
}
