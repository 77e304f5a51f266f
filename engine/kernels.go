// Package engine is the AlgebraEngine facade: one factory function per
// algebraic operation, each performing its own shape checks and returning a
// freshly built *lazy.Graph. This file holds the kernel catalogue — the
// lazy.ElemFunc/lazy.RowFunc closures that give each operation its
// semantics — grounded on the kernel table of the specification and on
// gonum's own split between a thin public entry point (engine.go) and the
// numeric core that does the real work (kernels.go, mirroring the
// cdense_arithmetic.go / cmatrix.go split in gonum's mat package).
package engine

import (
	"github.com/LorenzoFritzsch/hilbert-qusim/internal/asm/c64"
	"github.com/LorenzoFritzsch/hilbert-qusim/internal/asm/f32"
	"github.com/LorenzoFritzsch/hilbert-qusim/lazy"
	"github.com/LorenzoFritzsch/hilbert-qusim/scv"
)

// conjugateTransposeElem implements conj(A[n,m]) for output[m,n]. The right
// operand is an unused placeholder (see lazy.NewDVMDVM's conjugate-transpose
// caller).
func conjugateTransposeElem(left, _ lazy.Operand, m, n int) complex64 {
	v := left.At(n, m)
	return complex(real(v), -imag(v))
}

// conjugateTransposeRow returns the conjugate of A's m-th column.
func conjugateTransposeRow(left, _ lazy.Operand, m int) scv.Vector {
	rows, _ := left.Dims()
	re := make([]float32, rows)
	im := make([]float32, rows)
	for i := 0; i < rows; i++ {
		v := left.At(i, m)
		re[i] = real(v)
		im[i] = -imag(v)
	}
	return scv.Vector{Re: re, Im: im}
}

// innerProductElem computes Σ_i conj(L[0,i]) * R[0,i], defined only at (0,0).
func innerProductElem(left, right lazy.Operand, _, _ int) complex64 {
	lRow := left.Row(0).Conjugate()
	rRow := right.Row(0)
	prod := c64.MulTo(make([]complex64, lRow.Len()), lRow.Complex(), rRow.Complex())
	return c64.Sum(prod)
}

// innerProductRow returns the 1x1 row holding the inner product scalar.
func innerProductRow(left, right lazy.Operand, _ int) scv.Vector {
	c := innerProductElem(left, right, 0, 0)
	return scv.FromComplex([]complex64{c})
}

// columnOf reads column n of op via repeated At calls: lazy.Operand exposes
// Dims, At and Row, so unlike dvm.Matrix it has no dedicated Column method.
func columnOf(op lazy.Operand, n int) scv.Vector {
	rows, _ := op.Dims()
	re := make([]float32, rows)
	im := make([]float32, rows)
	for i := 0; i < rows; i++ {
		v := op.At(i, n)
		re[i] = real(v)
		im[i] = imag(v)
	}
	return scv.Vector{Re: re, Im: im}
}

// matMulElem computes Σ_i L[m,i] * R[i,n].
func matMulElem(left, right lazy.Operand, m, n int) complex64 {
	lRow := left.Row(m)
	rCol := columnOf(right, n)
	prod := c64.MulTo(make([]complex64, lRow.Len()), lRow.Complex(), rCol.Complex())
	return c64.Sum(prod)
}

// matMulRow computes row m of L multiplied with every column of R.
func matMulRow(left, right lazy.Operand, m int) scv.Vector {
	_, cols := right.Dims()
	re := make([]float32, cols)
	im := make([]float32, cols)
	for n := 0; n < cols; n++ {
		v := matMulElem(left, right, m, n)
		re[n] = real(v)
		im[n] = imag(v)
	}
	return scv.Vector{Re: re, Im: im}
}

// matVecElem computes out[0,n] = Σ_i R[0,i] * L[i,n]: the flattened vector R
// applied on the left of matrix L, so that a gate matrix L can be applied to
// amplitude row vector R and yield a same-shaped row vector back.
func matVecElem(left, right lazy.Operand, _, n int) complex64 {
	rRow := right.Row(0)
	col := columnOf(left, n)
	prod := c64.MulTo(make([]complex64, rRow.Len()), rRow.Complex(), col.Complex())
	return c64.Sum(prod)
}

// matVecRow computes the single output row (an entire v*M scan).
func matVecRow(left, right lazy.Operand, m int) scv.Vector {
	_, cols := left.Dims()
	re := make([]float32, cols)
	im := make([]float32, cols)
	for n := 0; n < cols; n++ {
		v := matVecElem(left, right, m, n)
		re[n] = real(v)
		im[n] = imag(v)
	}
	return scv.Vector{Re: re, Im: im}
}

// outerProductElem computes L[0,m] * conj(R[0,n]).
func outerProductElem(left, right lazy.Operand, m, n int) complex64 {
	l := left.At(0, m)
	r := right.At(0, n)
	rc := complex(real(r), -imag(r))
	return l * rc
}

// outerProductRow computes L[0,m] * conj(R row 0).
func outerProductRow(left, right lazy.Operand, m int) scv.Vector {
	l := left.At(0, m)
	conjR := right.Row(0).Conjugate()
	re := c64.ScaleTo(make([]complex64, conjR.Len()), l, conjR.Complex())
	return scv.FromComplex(re)
}

// newScalarProductKernels returns the elem/row kernel pair for L[m,n] * k,
// with k captured by the closure rather than read from an operand.
func newScalarProductKernels(k complex64) (lazy.ElemFunc, lazy.RowFunc) {
	elem := func(left, _ lazy.Operand, m, n int) complex64 {
		return left.At(m, n) * k
	}
	row := func(left, _ lazy.Operand, m int) scv.Vector {
		l := left.Row(m)
		out := c64.ScaleTo(make([]complex64, l.Len()), k, l.Complex())
		return scv.FromComplex(out)
	}
	return elem, row
}

// sumElem computes L[m,n] + R[m,n].
func sumElem(left, right lazy.Operand, m, n int) complex64 {
	return left.At(m, n) + right.At(m, n)
}

// sumRow computes the element-wise sum of rows m of L and R via the real
// SIMD kernel, lane by lane on the split real/imaginary halves.
func sumRow(left, right lazy.Operand, m int) scv.Vector {
	l, r := left.Row(m), right.Row(m)
	re := f32.AddTo(make([]float32, l.Len()), l.Re, r.Re)
	im := f32.AddTo(make([]float32, l.Len()), l.Im, r.Im)
	return scv.Vector{Re: re, Im: im}
}

// tensorElem computes L[m/R.rows, n/R.cols] * R[m mod R.rows, n mod R.cols].
func tensorElem(left, right lazy.Operand, m, n int) complex64 {
	rRows, rCols := right.Dims()
	return left.At(m/rRows, n/rCols) * right.At(m%rRows, n%rCols)
}

// tensorRow forms output row m by expanding indices per the block
// structure: for each column block b (one per column of L), the slice
// [b*R.cols, (b+1)*R.cols) of the row equals L[m/R.rows, b] * R's (m mod
// R.rows)-th row.
func tensorRow(left, right lazy.Operand, m int) scv.Vector {
	rRows, rCols := right.Dims()
	_, lCols := left.Dims()
	rRow := right.Row(m % rRows)
	re := make([]float32, lCols*rCols)
	im := make([]float32, lCols*rCols)
	for b := 0; b < lCols; b++ {
		coeff := left.At(m/rRows, b)
		block := c64.ScaleTo(make([]complex64, rCols), coeff, rRow.Complex())
		blockVec := scv.FromComplex(block)
		copy(re[b*rCols:(b+1)*rCols], blockVec.Re)
		copy(im[b*rCols:(b+1)*rCols], blockVec.Im)
	}
	return scv.Vector{Re: re, Im: im}
}

// tensorRowVectorVector is the vector x vector specialisation: when both
// operands are 1xN row vectors, the output (also a single row) is formed by
// scalar-multiplying R's single row by each element of L and concatenating,
// skipping the general nested block-index arithmetic entirely.
func tensorRowVectorVector(left, right lazy.Operand, _ int) scv.Vector {
	_, lCols := left.Dims()
	rRow := right.Row(0)
	re := make([]float32, lCols*rRow.Len())
	im := make([]float32, lCols*rRow.Len())
	for b := 0; b < lCols; b++ {
		coeff := left.At(0, b)
		block := c64.ScaleTo(make([]complex64, rRow.Len()), coeff, rRow.Complex())
		blockVec := scv.FromComplex(block)
		copy(re[b*rRow.Len():(b+1)*rRow.Len()], blockVec.Re)
		copy(im[b*rRow.Len():(b+1)*rRow.Len()], blockVec.Im)
	}
	return scv.Vector{Re: re, Im: im}
}

// isVectorPair reports whether both operands are 1xN row vectors, the shape
// that triggers the tensor product's vector-vector row specialisation.
func isVectorPair(left, right lazy.Operand) bool {
	lRows, _ := left.Dims()
	rRows, _ := right.Dims()
	return lRows == 1 && rRows == 1
}

// tensorRowDispatch picks the specialised vector-vector row kernel when both
// operands are row vectors, falling back to the general block-index kernel
// otherwise. The general kernel remains correct for every shape; this only
// avoids its nested-index arithmetic in the common vector case.
func tensorRowDispatch(left, right lazy.Operand, m int) scv.Vector {
	if isVectorPair(left, right) {
		return tensorRowVectorVector(left, right, m)
	}
	return tensorRow(left, right, m)
}
