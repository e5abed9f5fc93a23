package agent

import (
	"errors"
	"fmt"
	"strings"
)

// SinkError is one failed sink write.
type SinkError struct {
	Sink  string
	Cause error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Sink, e.Cause)
}

func (e *SinkError) Unwrap() error {
	return e.Cause
}

// PersistenceError reports sinks that failed during a run. The run itself
// completed: history was saved and the digest was sent.
type PersistenceError struct {
	Failures []*SinkError
}

func (e *PersistenceError) Error() string {
	parts := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		parts[i] = f.Error()
	}
	return "persistence error: " + strings.Join(parts, "; ")
}

func (e *PersistenceError) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f
	}
	return errs
}

// IsPersistence reports whether err only concerns failed sink writes.
func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
