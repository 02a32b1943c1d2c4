package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrRunCompleted is returned when finishing a run that already has a
	// completion timestamp.
	ErrRunCompleted = errors.New("run is already completed")

	ErrTemplateNotFound = errors.New("template not found")
	ErrRunNotFound      = errors.New("run not found")
)

// IncompleteRunError indicates a run cannot be finished because required
// items remain unchecked.
type IncompleteRunError struct {
	Remaining int
}

func (e IncompleteRunError) Error() string {
	return fmt.Sprintf("%d required item(s) still unchecked", e.Remaining)
}
