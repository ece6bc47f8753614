// Package jacobi solves dense linear systems A*x=b with the Jacobi
// stationary iteration.  A is split into its diagonal part D and the
// remainder, giving the fixed-point form
//
//	x_{k+1} = H*x_k + C,  H = D^-1*(D-A),  C = D^-1*b
//
// which converges for every initial guess exactly when the spectral radius
// of H is below one.  Solve verifies that gate before iterating and fails
// with NonConvergentError when it cannot hold.
package jacobi

import (
	"bytes"
	"errors"
	"fmt"
	"math/cmplx"

	"github.com/gonum/matrix/mat64"
)

// DefaultMaxIter is the iteration cap used when Jacobi.MaxIter is zero.
// The spectral radius gate already guarantees convergence, so the cap only
// guards against floating-point stagnation when Tol sits near machine
// precision for the given system.
const DefaultMaxIter = 1000000

// Jacobi solves dense linear systems via Jacobi fixed-point iteration.
// Tol must be set to a positive tolerance before calling Solve.  A Jacobi
// value records per-solve stats in unexported fields and so must not be
// shared between concurrent solves; independent values run concurrently
// without coordination.
type Jacobi struct {
	// MaxIter caps the number of iterations.  Zero means DefaultMaxIter.
	MaxIter int
	// Tol is the stopping tolerance: iteration stops as soon as the
	// euclidean norm of the difference between consecutive iterates is no
	// longer strictly greater than Tol.
	Tol    float64
	niter  int
	ndof   int
	radius float64
}

func (j *Jacobi) Status() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Jacobi Solver Stats:\n")
	fmt.Fprintf(&buf, "    %v dof\n", j.ndof)
	fmt.Fprintf(&buf, "    spectral radius %v\n", j.radius)
	fmt.Fprintf(&buf, "    converged in %v iterations", j.niter)
	return buf.String()
}

// Solve computes an x with consecutive-iterate distance at most j.Tol for
// the system A*x=b.  It fails with ErrInvalidInput before doing any work
// if the system is malformed, with NonConvergentError if the iteration
// matrix has spectral radius at or above one, and with IterationLimitError
// if the tolerance is not reached within the iteration cap.  A and b are
// only read, never modified.
func (j *Jacobi) Solve(A *mat64.Dense, b []float64) ([]float64, error) {
	if err := validate(A, b, j.Tol); err != nil {
		return nil, err
	}
	n := len(b)
	j.ndof = n
	j.niter = 0

	H, c := split(A, b)

	radius, err := SpectralRadius(H)
	if err != nil {
		return nil, err
	}
	j.radius = radius
	if radius >= 1 {
		return nil, &NonConvergentError{SpectralRadius: radius}
	}

	maxiter := j.MaxIter
	if maxiter == 0 {
		maxiter = DefaultMaxIter
	}

	x := mat64.NewVector(n, nil)
	next := mat64.NewVector(n, nil)
	next.MulVec(H, x)
	next.AddVec(next, c)

	var diff mat64.Vector
	for j.niter = 1; ; j.niter++ {
		diff.SubVec(x, next)
		delta := mat64.Norm(&diff, 2)
		if !(delta > j.Tol) {
			break
		}
		if j.niter >= maxiter {
			return nil, &IterationLimitError{MaxIter: maxiter, Delta: delta}
		}
		x.CloneVec(next)
		next.MulVec(H, x)
		next.AddVec(next, c)
	}
	return next.RawVector().Data, nil
}

// Solve solves A*x=b to within eps with default settings.  It is
// shorthand for solving with &Jacobi{Tol: eps}.
func Solve(A *mat64.Dense, b []float64, eps float64) ([]float64, error) {
	j := &Jacobi{Tol: eps}
	return j.Solve(A, b)
}

// SpectralRadius returns the largest eigenvalue modulus of the square
// matrix m.  Asymmetric matrices can carry complex conjugate eigenvalue
// pairs; the modulus is taken over the complex values.
func SpectralRadius(m mat64.Matrix) (float64, error) {
	var eig mat64.Eigen
	if ok := eig.Factorize(m, false, false); !ok {
		return 0, errors.New("jacobi: eigenvalue computation failed")
	}
	var radius float64
	for _, v := range eig.Values(nil) {
		if r := cmplx.Abs(v); r > radius {
			radius = r
		}
	}
	return radius, nil
}

func validate(A *mat64.Dense, b []float64, tol float64) error {
	rows, cols := A.Dims()
	if rows != cols {
		return fmt.Errorf("%w: matrix is %vx%v, want square", ErrInvalidInput, rows, cols)
	}
	if rows < 1 {
		return fmt.Errorf("%w: empty system", ErrInvalidInput)
	}
	if len(b) != rows {
		return fmt.Errorf("%w: rhs has %v entries, want %v", ErrInvalidInput, len(b), rows)
	}
	// the negated form also rejects NaN tolerances
	if !(tol > 0) {
		return fmt.Errorf("%w: tolerance %v, want > 0", ErrInvalidInput, tol)
	}
	for i := 0; i < rows; i++ {
		if A.At(i, i) == 0 {
			return fmt.Errorf("%w: zero diagonal entry in row %v", ErrInvalidInput, i)
		}
	}
	return nil
}

// split builds the iteration matrix H = D^-1*(D-A) and constant vector
// C = D^-1*b.  D is diagonal, so applying its inverse is an elementwise
// division by A's diagonal.
func split(A *mat64.Dense, b []float64) (*mat64.Dense, *mat64.Vector) {
	n := len(b)
	H := mat64.NewDense(n, n, nil)
	c := mat64.NewVector(n, nil)
	for i := 0; i < n; i++ {
		d := A.At(i, i)
		for k := 0; k < n; k++ {
			if k != i {
				H.Set(i, k, -A.At(i, k)/d)
			}
		}
		c.SetVec(i, b[i]/d)
	}
	return H, c
}
