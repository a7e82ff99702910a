package git

import "errors"

// Repository errors.
var (
	// ErrInvalidTarget indicates the target root exists and is not a directory.
	ErrInvalidTarget = errors.New("target is not a directory")

	// ErrPathNotReady indicates the parent directory of a repository file
	// has not been created yet.
	ErrPathNotReady = errors.New("parent directory does not exist")

	// ErrPathEscape indicates a repository-relative name resolves outside
	// the control directory.
	ErrPathEscape = errors.New("path escapes the control directory")

	// ErrInvalidBranchName indicates a default branch name that is not a valid ref.
	ErrInvalidBranchName = errors.New("invalid branch name")
)

// Error wraps a filesystem error with the operation and path that failed.
type Error struct {
	Op   string // Operation that failed (e.g., "mkdir", "write")
	Path string // Filesystem path the operation was applied to
	Err  error  // Underlying error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return e.Op + " " + e.Path + ": " + e.Err.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
