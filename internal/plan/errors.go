// Package plan implements the periodization engine: schedule generation,
// progression suggestions, cross-week matching, and propagation of suggested
// targets into the following week of a mesocycle.
package plan

import (
	"errors"
	"fmt"
)

// Lookup sentinels. Expected absence (the mesocycle has no next week, a
// coordinate points past the end of a slice) is reported with ok=false
// returns, not with these errors; the sentinels are for callers that asked
// for something by ID or coordinate and were wrong.
var (
	ErrMesocycleNotFound = errors.New("mesocycle not found")
	ErrWorkoutNotFound   = errors.New("workout not found")
	ErrExerciseNotFound  = errors.New("exercise not found")
	ErrSetNotFound       = errors.New("set not found")
)

// StorageError marks a persistence failure. The engine leaves in-memory state
// untouched when one occurs, so the caller can retry the whole operation.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// IsStorage reports whether err is (or wraps) a StorageError.
func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
