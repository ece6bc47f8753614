package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/gonum/matrix/mat64"
)

// systemReader collects a linear system from interactive input.  Each
// value is validated as it is read and malformed entries are re-prompted
// locally, so readSystem only ever yields a complete well-formed
// (A, b, epsilon) triple.
type systemReader struct {
	toks *bufio.Scanner
	w    io.Writer
}

func newSystemReader(r io.Reader, w io.Writer) *systemReader {
	toks := bufio.NewScanner(r)
	toks.Split(bufio.ScanWords)
	return &systemReader{toks: toks, w: w}
}

func (r *systemReader) readSystem() (A *mat64.Dense, b []float64, eps float64, err error) {
	n, err := r.readInt("system size n: ", func(v int) bool { return v >= 1 })
	if err != nil {
		return nil, nil, 0, err
	}

	A = mat64.NewDense(n, n, nil)
	row := make([]float64, n)
	for i := 0; i < n; i++ {
		if err := r.readRow(fmt.Sprintf("A row %v (%v values): ", i, n), row); err != nil {
			return nil, nil, 0, err
		}
		A.SetRow(i, row)
	}

	b = make([]float64, n)
	if err := r.readRow(fmt.Sprintf("b (%v values): ", n), b); err != nil {
		return nil, nil, 0, err
	}

	eps, err = r.readFloat("tolerance epsilon: ", func(v float64) bool { return v > 0 })
	if err != nil {
		return nil, nil, 0, err
	}
	return A, b, eps, nil
}

func (r *systemReader) token() (string, error) {
	if !r.toks.Scan() {
		if err := r.toks.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.toks.Text(), nil
}

func (r *systemReader) readInt(prompt string, valid func(int) bool) (int, error) {
	for {
		fmt.Fprint(r.w, prompt)
		tok, err := r.token()
		if err != nil {
			return 0, err
		}
		v, perr := strconv.Atoi(tok)
		if perr != nil || !valid(v) {
			fmt.Fprintf(r.w, "bad value %q, try again\n", tok)
			continue
		}
		return v, nil
	}
}

func (r *systemReader) readFloat(prompt string, valid func(float64) bool) (float64, error) {
	for {
		fmt.Fprint(r.w, prompt)
		tok, err := r.token()
		if err != nil {
			return 0, err
		}
		v, perr := strconv.ParseFloat(tok, 64)
		if perr != nil || !valid(v) {
			fmt.Fprintf(r.w, "bad value %q, try again\n", tok)
			continue
		}
		return v, nil
	}
}

// readRow fills dst with len(dst) values.  A malformed token discards the
// partial row and prompts for the whole row again.
func (r *systemReader) readRow(prompt string, dst []float64) error {
	for {
		fmt.Fprint(r.w, prompt)
		ok := true
		for i := range dst {
			tok, err := r.token()
			if err != nil {
				return err
			}
			v, perr := strconv.ParseFloat(tok, 64)
			if perr != nil {
				fmt.Fprintf(r.w, "bad value %q, re-enter the row\n", tok)
				ok = false
				break
			}
			dst[i] = v
		}
		if ok {
			return nil
		}
	}
}
