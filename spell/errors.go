package spell

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrMissingParameter is the sentinel matched by errors.Is for any
// MissingParameterError. Use errors.As to recover the coordinates.
var ErrMissingParameter = errors.New("missing parameter")

// MissingParameterError reports a special-shaped piece that lacks one of
// its required parameters.
type MissingParameterError struct {
	X, Y  uint8
	Key   string
	Param string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing parameter %s for piece %s at [%d, %d]",
		e.Param, e.Key, e.X, e.Y)
}

func (e *MissingParameterError) Is(target error) bool {
	return target == ErrMissingParameter
}
