package game

import (
	"errors"
	"fmt"
)

// MissingObjectError reports a trigger or action naming an object that is
// not in the scene.
type MissingObjectError struct {
	Name string
}

func (e *MissingObjectError) Error() string {
	return fmt.Sprintf("missing object %q", e.Name)
}

// ErrInternal marks a violated runtime invariant.
var ErrInternal = errors.New("internal error")
