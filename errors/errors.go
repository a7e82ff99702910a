package errors

import "errors"

// Common CLI errors with actionable guidance.
var (
	// ErrUsage indicates the command was invoked with invalid arguments.
	ErrUsage = errors.New("invalid usage")

	// ErrPermissionDenied indicates insufficient filesystem permissions.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrPathCollision indicates a path the repository needs is occupied
	// by something of the wrong kind.
	ErrPathCollision = errors.New("path occupied")
)
