package vector

import "fmt"

// ErrOutOfRange indicates a bounds-checked access with an index outside
// [0, Len()). It is the only error the package produces; the unchecked
// accessors skip the check entirely.
type ErrOutOfRange struct {
	Index int
	Len   int
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("vector: index %d out of range with length %d", e.Index, e.Len)
}
