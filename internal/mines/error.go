package mines

import "fmt"

// PreconditionError is what the engine panics with when it is called with
// arguments no correct caller would pass: impossible board dimensions or a
// tile lookup outside the grid.
type PreconditionError struct {
	message string
}

func preconditionf(format string, args ...any) PreconditionError {
	return PreconditionError{fmt.Sprintf(format, args...)}
}

// [PreconditionError] implements [error]
func (e PreconditionError) Error() string {
	return e.message
}
