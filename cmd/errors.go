package cmd

import "fmt"

// Process exit statuses returned by the driver.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// UsageError is a malformed invocation: an unknown option or a missing option
// value.  It is reported before any compiler state exists.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// FatalError is an environment or invocation defect the driver cannot
// recover from, such as an unresolvable executable path.
type FatalError struct {
	Message string
	Err     error
}

func (e *FatalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Err)
	}

	return e.Message
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// usageErrorf creates a new usage error.
func usageErrorf(format string, args ...interface{}) error {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// fatalError creates a new fatal error wrapping cause (which may be nil).
func fatalError(cause error, format string, args ...interface{}) error {
	return &FatalError{Message: fmt.Sprintf(format, args...), Err: cause}
}
