package internal

import "github.com/pkg/errors"

// Geometric failures are ordinary errors, returned up the call chain and
// tested with errors.Is. Context (which triangle, which polygon) is attached
// with errors.Wrapf.
var (
	ErrDegenerateTriangle = errors.New("degenerate triangle")
	ErrInvalidGeometry    = errors.New("invalid geometry")
	ErrConvergenceFailure = errors.New("expansion did not converge")
)

// Broken invariants deep inside the geometry (a zero value polygon that never
// went through NewRegularPolygon, a fan triangle of a valid polygon coming out
// degenerate) are reported with a panic instead, and Expander.Run recovers
// them into an error.
type invariantError struct {
	error
}

// Panic with an invariantError.
func fatalf(format string, args ...interface{}) {
	panic(invariantError{errors.Errorf(format, args...)})
}

// Convert a recovered invariantError into an error. Any other panic is
// re-raised.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if err, ok := r.(invariantError); ok {
			return err.error
		}
		panic(r)
	}
	return nil
}
