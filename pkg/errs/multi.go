package errs

import (
	"strings"

	"github.com/pkg/errors"
)

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// Multi collects validation errors, mostly produced while checking configs.
type Multi struct {
	errors []error
}

func NewMulti() *Multi {
	return &Multi{
		errors: []error{},
	}
}

func (m *Multi) Add(err error) {
	if err == nil {
		return
	}

	m.errors = append(m.errors, err)
}

func (m *Multi) Err(msg string) {
	m.Add(errors.New(msg))
}

func (m *Multi) Errf(format string, args ...interface{}) {
	m.Add(errors.Errorf(format, args...))
}

func (m *Multi) Error() string {
	if !m.HasErrors() {
		return ""
	}

	strErrs := make([]string, len(m.errors))

	for i := range m.errors {
		strErrs[i] = m.errors[i].Error()
	}

	return strings.Join(strErrs, "; ")
}

func (m *Multi) StackTrace() errors.StackTrace {
	if !m.HasErrors() {
		return nil
	}
	for _, curErr := range m.errors {
		var errWithStack stackTracer
		ok := errors.As(curErr, &errWithStack)
		if ok {
			return errWithStack.StackTrace()
		}
	}

	return errors.StackTrace{}
}

func (m *Multi) HasErrors() bool {
	return m != nil && len(m.errors) > 0
}

// ErrOrNil returns nil for an empty collection so it can be returned as a plain error.
func (m *Multi) ErrOrNil() error {
	if !m.HasErrors() {
		return nil
	}

	return m
}
