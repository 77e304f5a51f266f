// Package dvm implements the dense vectorised matrix: a row-major
// contiguous complex64 buffer with explicit row and column counts, plus
// row/column/split accessors returning scv.Vector. A Matrix is immutable
// after construction, mirroring gonum's mat.CDense except specialised to
// complex64 and carrying no BLAS-backed storage.
package dvm

import (
	"fmt"

	"github.com/LorenzoFritzsch/hilbert-qusim/internal/asm/c64"
	"github.com/LorenzoFritzsch/hilbert-qusim/internal/asm/f32"
	"github.com/LorenzoFritzsch/hilbert-qusim/qerr"
	"github.com/LorenzoFritzsch/hilbert-qusim/scv"
	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultTolerance is the default absolute/relative tolerance used by
// ApproxEqual and Matrix.Equal.
const DefaultTolerance = 1e-5

// Matrix is a dense, row-major complex64 matrix. The zero value is not a
// valid Matrix; use New or one of the constant factories.
type Matrix struct {
	rows, cols int
	data       []complex64
}

// New builds a Matrix from a row-major flat slice of length rows*cols. It
// panics if rows or cols is negative, and returns a *qerr.ShapeError if
// len(data) != rows*cols. Empty (0x0), scalar (1x1), vector (1xN) and
// general (MxN) shapes are all valid.
func New(rows, cols int, data []complex64) (Matrix, error) {
	if rows < 0 || cols < 0 {
		panic("dvm: negative dimension")
	}
	if len(data) != rows*cols {
		return Matrix{}, qerr.NewShapeError("dvm.New",
			fmt.Sprintf("data len %d", len(data)),
			fmt.Sprintf("%dx%d (%d elements)", rows, cols, rows*cols))
	}
	cp := make([]complex64, len(data))
	copy(cp, data)
	return Matrix{rows: rows, cols: cols, data: cp}, nil
}

// NewZero returns a rows x cols Matrix of zeros.
func NewZero(rows, cols int) Matrix {
	m, err := New(rows, cols, make([]complex64, rows*cols))
	if err != nil {
		panic(err)
	}
	return m
}

// Dims returns the number of rows and columns in m.
func (m Matrix) Dims() (rows, cols int) {
	return m.rows, m.cols
}

// At returns the element at (i, j). It panics if the index is out of range.
func (m Matrix) At(i, j int) complex64 {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("dvm: index (%d,%d) out of range for %dx%d matrix", i, j, m.rows, m.cols))
	}
	return m.data[i*m.cols+j]
}

// Row returns row i as an scv.Vector of length m.cols.
func (m Matrix) Row(i int) scv.Vector {
	if i < 0 || i >= m.rows {
		panic(fmt.Sprintf("dvm: row %d out of range for %d rows", i, m.rows))
	}
	return scv.FromComplex(m.data[i*m.cols : (i+1)*m.cols])
}

// Column returns column j as an scv.Vector of length m.rows, gathered by
// strided access over the row-major buffer.
func (m Matrix) Column(j int) scv.Vector {
	if j < 0 || j >= m.cols {
		panic(fmt.Sprintf("dvm: column %d out of range for %d cols", j, m.cols))
	}
	col := make([]complex64, m.rows)
	for i := 0; i < m.rows; i++ {
		col[i] = m.data[i*m.cols+j]
	}
	return scv.FromComplex(col)
}

// Split flattens m's row-major buffer into a single scv.Vector of length
// rows*cols.
func (m Matrix) Split() scv.Vector {
	return scv.FromComplex(m.data)
}

// ApproxEqual reports whether a and b are equal within the given tolerance,
// comparing real and imaginary parts independently via
// gonum.org/v1/gonum/floats/scalar.EqualWithinAbsOrRel.
func ApproxEqual(a, b complex64, tol float32) bool {
	t := float64(tol)
	return scalar.EqualWithinAbsOrRel(float64(real(a)), float64(real(b)), t, t) &&
		scalar.EqualWithinAbsOrRel(float64(imag(a)), float64(imag(b)), t, t)
}

// Equal reports whether a and b have the same dimensions and the magnitude
// of cvsve(sub(a.Split(), b.Split())) — the horizontal sum of their
// element-wise difference, not a max-abs-difference — is within
// DefaultTolerance. This intentionally mirrors the original engine's
// equality heuristic: it is cheap (one pass, one kernel call) but, like
// AlgebraEngine.IsUnitary, it can be fooled by differences that cancel when
// summed.
func (a Matrix) Equal(b Matrix) bool {
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	as, bs := a.Split(), b.Split()
	diff := scv.Vector{
		Re: f32.SubTo(make([]float32, as.Len()), as.Re, bs.Re),
		Im: f32.SubTo(make([]float32, as.Len()), as.Im, bs.Im),
	}
	sum := c64.Sum(diff.Complex())
	mag := float64(real(sum))*float64(real(sum)) + float64(imag(sum))*float64(imag(sum))
	return mag <= DefaultTolerance*DefaultTolerance
}
