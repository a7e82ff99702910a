// Package errors provides CLI error patterns with user-friendly messaging.
//
// Core types:
//   - CLIError: Wraps errors with message, suggestion, and details
//   - ErrorMessenger: Interface for customizing error messages
//
// Sentinel errors for common scenarios:
//   - ErrUsage: Command invoked with invalid arguments
//   - ErrPermissionDenied: Insufficient filesystem permissions
//   - ErrPathCollision: A required path is occupied by the wrong kind of entry
//
// Example usage:
//
//	// Wrap an init error with default messages
//	if _, err := git.Init(path); err != nil {
//	    return errors.WrapInitError(err)
//	}
//
//	// Wrap with custom messages
//	type MyMessenger struct{ errors.DefaultMessenger }
//	func (m MyMessenger) InvalidTargetMessage(path string) (string, string) {
//	    return path + " is a file.", "Pick a directory."
//	}
//
//	wrapped := errors.WrapInitError(err, errors.WithMessenger(MyMessenger{}))
//
//	// Check error types
//	if errors.IsInvalidTarget(err) {
//	    // Handle a file passed as the target
//	}
package errors
