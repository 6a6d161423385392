package sidenote

import (
	"errors"
	"fmt"
)

// ErrMissingRenderer indicates that Config.RenderFragment was not set.
var ErrMissingRenderer = errors.New("missing fragment renderer")

// RenderError reports that the fragment renderer failed for one note. The
// transform aborts on the first failure; no partial document is returned.
type RenderError struct {
	NoteID int
	Err    error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render note %d: %v", e.NoteID, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
