package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorTracer is an error carrying a message and the stack of the error it wraps.
type ErrorTracer struct {
	Message string
	Err     error
}

// StackTracer is an interface that requires a StackTrace method.
type StackTracer interface {
	StackTrace() errors.StackTrace
}

// NewTracer creates a new ErrorTracer with the provided message.
func NewTracer(message string) *ErrorTracer {
	return &ErrorTracer{
		Message: message,
	}
}

// TracerFromError creates a new ErrorTracer from an existing error, preserving the stack trace.
func TracerFromError(err error) *ErrorTracer {
	return NewTracer(err.Error()).Wrap(err)
}

// Wrapf annotates err with a formatted context message. It returns nil when err is nil.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return NewTracer(fmt.Sprintf(format, args...) + ": " + err.Error()).Wrap(err)
}

func (e *ErrorTracer) Error() string {
	return e.Message
}

func (e *ErrorTracer) Unwrap() error {
	return e.Err
}

// Wrap wraps an existing error into the ErrorTracer, capturing a stack when it has none.
func (e *ErrorTracer) Wrap(err error) *ErrorTracer {
	e.Err = err
	if _, ok := err.(StackTracer); !ok {
		e.Err = errors.WithStack(err)
	}
	return e
}

// StackTrace returns the stack trace of the underlying error if it implements StackTracer.
func (e *ErrorTracer) StackTrace() errors.StackTrace {
	if errWithStack, ok := e.Unwrap().(StackTracer); ok {
		return errWithStack.StackTrace()
	}
	return nil
}
