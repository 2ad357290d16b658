package shape

import (
	"errors"
	"fmt"
)

// ErrDefinition is the sentinel wrapped by every DefinitionError.
var ErrDefinition = errors.New("shape: invalid definition")

// DefinitionError reports a shape definition that cannot be decoded into a
// square grid: either it has no rows, or a row mask needs more than Size bits.
type DefinitionError struct {
	Row   int    // Offending row, -1 when the definition has no rows
	Value uint64 // Offending row mask
	Size  int    // Declared dimension N
}

func (e *DefinitionError) Error() string {
	if e.Row < 0 {
		return "shape: invalid definition: no rows"
	}
	return fmt.Sprintf("shape: invalid definition: row %d value %#x does not fit in %d bits",
		e.Row, e.Value, e.Size)
}

// Unwrap lets errors.Is match ErrDefinition.
func (e *DefinitionError) Unwrap() error {
	return ErrDefinition
}
