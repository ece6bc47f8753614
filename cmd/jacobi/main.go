// Command jacobi interactively reads a dense linear system A*x=b and a
// tolerance from stdin, solves it with the Jacobi stationary iteration,
// and prints the solution components at 8 decimal digits.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gonum/floats"
	"github.com/gonum/matrix/mat64"

	"github.com/ichrak-ghr/jacobi"
)

func main() {
	log.SetFlags(0)

	r := newSystemReader(os.Stdin, os.Stdout)
	A, b, eps, err := r.readSystem()
	if err != nil {
		log.Fatal(err)
	}

	solver := &jacobi.Jacobi{Tol: eps}
	x, err := solver.Solve(A, b)
	if err != nil {
		log.Fatal(err)
	}

	for i, v := range x {
		fmt.Printf("x[%v] = %.8f\n", i, v)
	}

	var ax mat64.Vector
	ax.MulVec(A, mat64.NewVector(len(x), x))
	fmt.Printf("%v\n", solver.Status())
	fmt.Printf("    residual %v\n", floats.Distance(ax.RawVector().Data, b, 2))
}
