package errors

import (
	"errors"
	"io/fs"
	"syscall"

	"github.com/randalmurphal/gitseed/git"
)

// IsInvalidTarget checks if an error reports a target that is not a directory.
func IsInvalidTarget(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, git.ErrInvalidTarget)
}

// IsPermissionError checks if an error is permission-related.
func IsPermissionError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrPermissionDenied) || errors.Is(err, fs.ErrPermission)
}

// IsPathCollision checks if an error was caused by a path occupied by an
// entry of the wrong kind.
func IsPathCollision(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrPathCollision) ||
		errors.Is(err, syscall.ENOTDIR) ||
		errors.Is(err, fs.ErrExist)
}

// IsPathNotReady checks if an error reports a missing parent directory.
func IsPathNotReady(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, git.ErrPathNotReady)
}

// IsUsageError checks if an error reports invalid command arguments.
func IsUsageError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrUsage)
}
