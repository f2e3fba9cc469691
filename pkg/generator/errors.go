package generator

import "errors"

// ErrEmptyEnum is returned when a node carries an empty enum list.
// Schema loaders reject such documents up front; this guards direct
// library use with hand-built schema values.
var ErrEmptyEnum = errors.New("enum must not be empty")

// ConstraintError reports a generation request that cannot be satisfied,
// such as an array asking for more unique items than the item domain can
// produce, or an integer range containing no integers.
type ConstraintError struct {
	Message string
}

func (e *ConstraintError) Error() string {
	return e.Message
}
