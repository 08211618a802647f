package trace

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Domain errors for trace generation and replay.
var (
	// ErrInvalidArgument indicates an input outside the valid domain of an operation,
	// such as a traversal start node that does not exist.
	ErrInvalidArgument = errors.New("trace: invalid argument")

	// ErrInconsistent indicates a trace that does not replay against its input.
	ErrInconsistent = errors.New("trace: inconsistent step")
)

// InvalidArgument returns an error wrapping ErrInvalidArgument with a formatted message.
func InvalidArgument(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}

// StepError reports the step at which verification failed.
type StepError struct {
	Step    int
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d: %v", e.Step, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
