package jacobi

import (
	"errors"
	"fmt"
)

// ErrInvalidInput reports a malformed system: a non-square matrix, a
// right-hand side of the wrong length, a non-positive tolerance, or a zero
// diagonal entry.  It is returned (wrapped with the specific reason)
// before any decomposition work is done.
var ErrInvalidInput = errors.New("jacobi: invalid input")

// NonConvergentError is returned when the iteration matrix has spectral
// radius at or above one, in which case the iteration diverges for some
// initial guess and Solve refuses to run.  This is an expected outcome for
// many valid systems (e.g. non-diagonally-dominant ones), not a bug.
type NonConvergentError struct {
	SpectralRadius float64
}

func (e *NonConvergentError) Error() string {
	return fmt.Sprintf("jacobi: iteration matrix spectral radius %v >= 1, method cannot converge", e.SpectralRadius)
}

// IterationLimitError is returned when the iterate delta fails to drop to
// the tolerance within MaxIter iterations.  With the spectral radius gate
// in place this only happens when the tolerance sits below what floating
// point can resolve for the given system.
type IterationLimitError struct {
	MaxIter int
	Delta   float64
}

func (e *IterationLimitError) Error() string {
	return fmt.Sprintf("jacobi: no convergence after %v iterations (iterate delta %v)", e.MaxIter, e.Delta)
}
