package cli

import (
	"errors"
	"fmt"
)

// UsageError is returned by a [CommandFunc] when its flags or arguments don't make sense together,
// for example when a required flag is missing.
// [Command.Exec] follows the error with the command's usage text.
type UsageError struct {
	reason error
}

// NewUsageError formats a reason with [fmt.Errorf] and wraps it in a [UsageError], so %w may be used.
func NewUsageError(format string, args ...any) error {
	return &UsageError{reason: fmt.Errorf(format, args...)}
}

// IsUsageError reports whether err or anything it wraps is a [UsageError].
func IsUsageError(err error) bool {
	var uerr *UsageError
	return errors.As(err, &uerr)
}

func (e *UsageError) Error() string {
	if e.reason == nil {
		return "usage error"
	}
	return fmt.Sprintf("usage error: %v", e.reason)
}

// Is lets errors.Is(err, &UsageError{}) match any UsageError regardless of its reason.
func (e *UsageError) Is(target error) bool {
	_, ok := target.(*UsageError)
	return ok
}

func (e *UsageError) Unwrap() error {
	return e.reason
}
