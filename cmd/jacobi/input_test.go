package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadSystem(t *testing.T) {
	in := "2  4 1  2 3  1 2  1e-8"
	var out bytes.Buffer

	r := newSystemReader(strings.NewReader(in), &out)
	A, b, eps, err := r.readSystem()
	require.NoError(t, err)

	rows, cols := A.Dims()
	require.Equal(t, 2, rows)
	require.Equal(t, 2, cols)
	require.Equal(t, 4.0, A.At(0, 0))
	require.Equal(t, 1.0, A.At(0, 1))
	require.Equal(t, 2.0, A.At(1, 0))
	require.Equal(t, 3.0, A.At(1, 1))
	require.Equal(t, []float64{1, 2}, b)
	require.Equal(t, 1e-8, eps)
}

func TestReadSystemReprompt(t *testing.T) {
	// bad size twice, a bad matrix entry (whole row re-entered), and a
	// non-positive tolerance before the valid one
	in := "zero -1 2  4 x  4 1  2 3  1 2  -1 1e-8"
	var out bytes.Buffer

	r := newSystemReader(strings.NewReader(in), &out)
	A, b, eps, err := r.readSystem()
	require.NoError(t, err)

	require.Equal(t, 4.0, A.At(0, 0))
	require.Equal(t, 1.0, A.At(0, 1))
	require.Equal(t, []float64{1, 2}, b)
	require.Equal(t, 1e-8, eps)
	require.Contains(t, out.String(), "try again")
	require.Contains(t, out.String(), "re-enter the row")
}

func TestReadSystemEOF(t *testing.T) {
	var out bytes.Buffer
	r := newSystemReader(strings.NewReader("2  4 1"), &out)
	_, _, _, err := r.readSystem()
	require.Error(t, err)
}
