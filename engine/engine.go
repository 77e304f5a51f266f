// Package engine is the AlgebraEngine facade described at the top of
// kernels.go: one exported factory function per algebraic operation. Every
// factory validates operand shapes up front and returns a freshly built
// *lazy.Graph that owns its own arenas — none of the graphs or matrices
// passed in are ever mutated, so callers can keep using their operands
// after the call returns.
package engine

import (
	"fmt"

	"github.com/LorenzoFritzsch/hilbert-qusim/dvm"
	"github.com/LorenzoFritzsch/hilbert-qusim/lazy"
	"github.com/LorenzoFritzsch/hilbert-qusim/qerr"
)

func shape(rows, cols int) string {
	return fmt.Sprintf("%dx%d", rows, cols)
}

// ConjugateTranspose returns a graph for A†.
func ConjugateTranspose(m dvm.Matrix) *lazy.Graph {
	rows, cols := m.Dims()
	placeholder := dvm.NewZero(0, 0)
	return lazy.NewDVMDVM(m, placeholder, conjugateTransposeElem, conjugateTransposeRow, cols, rows)
}

// InnerProduct returns a graph for <u, v> = Σ conj(u_i) * v_i. u and v must
// both be 1xN row vectors of equal length.
func InnerProduct(u, v dvm.Matrix) (*lazy.Graph, error) {
	ur, uc := u.Dims()
	vr, vc := v.Dims()
	if ur != 1 || vr != 1 {
		return nil, qerr.NewShapeError("inner_product", shape(ur, uc)+", "+shape(vr, vc), "1xN, 1xN")
	}
	if uc != vc {
		return nil, qerr.NewShapeError("inner_product", shape(ur, uc)+", "+shape(vr, vc), "equal length vectors")
	}
	return lazy.NewDVMDVM(u, v, innerProductElem, innerProductRow, 1, 1), nil
}

// MatrixMultiplication returns a graph for A*B. A's column count must match
// B's row count.
func MatrixMultiplication(a, b dvm.Matrix) (*lazy.Graph, error) {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ac != br {
		return nil, qerr.NewShapeError("matrix_multiplication", shape(ar, ac)+" * "+shape(br, bc), "A.cols == B.rows")
	}
	return lazy.NewDVMDVM(a, b, matMulElem, matMulRow, ar, bc), nil
}

// matMulGraph multiplies a graph's value by a DVM on the right, returning a
// new graph. Used internally by MatrixExp to grow its matrix chain by one
// more DVM factor.
func matMulGraph(g *lazy.Graph, b dvm.Matrix) (*lazy.Graph, error) {
	gr, gc := g.Dims()
	br, bc := b.Dims()
	if gc != br {
		return nil, qerr.NewShapeError("matrix_multiplication", shape(gr, gc)+" * "+shape(br, bc), "A.cols == B.rows")
	}
	result := g.Clone()
	result.AppendMatrix(b, matMulElem, matMulRow, gr, bc)
	return result, nil
}

// MatrixExp returns a graph for M^k. M must be square; k must be
// non-negative. M^0 is the n x n identity, built lazily via NewIdentity.
func MatrixExp(m dvm.Matrix, k int) (*lazy.Graph, error) {
	rows, cols := m.Dims()
	if rows != cols {
		return nil, qerr.NewShapeError("matrix_exp", shape(rows, cols), "square matrix")
	}
	if k < 0 {
		return nil, qerr.NewShapeError("matrix_exp", fmt.Sprintf("k=%d", k), "k >= 0")
	}
	if k == 0 {
		return lazy.NewIdentity(rows), nil
	}
	g := lazy.NewWrap(m)
	for i := 1; i < k; i++ {
		next, err := matMulGraph(g, m)
		if err != nil {
			return nil, err
		}
		g = next
	}
	return g, nil
}

// MatrixVectorProduct applies matrix m to row-vector v, both materialised:
// out = v * m, a 1xN row vector where N = m.cols. v must have exactly as
// many entries as m has rows.
func MatrixVectorProduct(m, v dvm.Matrix) (*lazy.Graph, error) {
	mr, mc := m.Dims()
	vr, vc := v.Dims()
	if vr != 1 {
		return nil, qerr.NewShapeError("matrix_vector_product", shape(vr, vc), "1xN vector")
	}
	if vc != mr {
		return nil, qerr.NewShapeError("matrix_vector_product", shape(mr, mc)+" * "+shape(vr, vc), "v.cols == M.rows")
	}
	return lazy.NewDVMDVM(m, v, matVecElem, matVecRow, 1, mc), nil
}

// MatrixVectorProductGraphDVM applies a lazily-built matrix graph g to a
// materialised row-vector v, returning a new graph.
func MatrixVectorProductGraphDVM(g *lazy.Graph, v dvm.Matrix) (*lazy.Graph, error) {
	gr, gc := g.Dims()
	vr, vc := v.Dims()
	if vr != 1 {
		return nil, qerr.NewShapeError("matrix_vector_product", shape(vr, vc), "1xN vector")
	}
	if vc != gr {
		return nil, qerr.NewShapeError("matrix_vector_product", shape(gr, gc)+" * "+shape(vr, vc), "v.cols == M.rows")
	}
	result := g.Clone()
	result.AppendMatrix(v, matVecElem, matVecRow, 1, gc)
	return result, nil
}

// MatrixVectorProductGraphGraph applies a lazily-built matrix graph mg to a
// lazily-built row-vector graph vg, returning a new graph. vg is spliced
// into a clone of mg and left untouched.
func MatrixVectorProductGraphGraph(mg, vg *lazy.Graph) (*lazy.Graph, error) {
	mr, mc := mg.Dims()
	vr, vc := vg.Dims()
	if vr != 1 {
		return nil, qerr.NewShapeError("matrix_vector_product", shape(vr, vc), "1xN vector")
	}
	if vc != mr {
		return nil, qerr.NewShapeError("matrix_vector_product", shape(mr, mc)+" * "+shape(vr, vc), "v.cols == M.rows")
	}
	result := mg.Clone()
	result.AppendLazy(vg, matVecElem, matVecRow, 1, mc)
	return result, nil
}

// OuterProduct returns a graph for u ⊗ conj(v)ᵀ, i.e. out[m,n] = u[m]*conj(v[n]).
// u and v must both be 1xN row vectors (possibly of different lengths).
func OuterProduct(u, v dvm.Matrix) (*lazy.Graph, error) {
	ur, uc := u.Dims()
	vr, vc := v.Dims()
	if ur != 1 || vr != 1 {
		return nil, qerr.NewShapeError("outer_product", shape(ur, uc)+", "+shape(vr, vc), "1xN, 1xN")
	}
	return lazy.NewDVMDVM(u, v, outerProductElem, outerProductRow, uc, vc), nil
}

// ScalarProduct returns a graph for k*M.
func ScalarProduct(m dvm.Matrix, k complex64) *lazy.Graph {
	elem, row := newScalarProductKernels(k)
	rows, cols := m.Dims()
	placeholder := dvm.NewZero(0, 0)
	return lazy.NewDVMDVM(m, placeholder, elem, row, rows, cols)
}

// MatSum returns a graph for A+B. A and B must share the same shape.
func MatSum(a, b dvm.Matrix) (*lazy.Graph, error) {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return nil, qerr.NewShapeError("matsum", shape(ar, ac)+" + "+shape(br, bc), "equal shapes")
	}
	return lazy.NewDVMDVM(a, b, sumElem, sumRow, ar, ac), nil
}

// MatSumGraphDVM returns a graph for g+b, where g is already a lazy graph
// and b a materialised matrix of the same shape.
func MatSumGraphDVM(g *lazy.Graph, b dvm.Matrix) (*lazy.Graph, error) {
	gr, gc := g.Dims()
	br, bc := b.Dims()
	if gr != br || gc != bc {
		return nil, qerr.NewShapeError("matsum", shape(gr, gc)+" + "+shape(br, bc), "equal shapes")
	}
	result := g.Clone()
	result.AppendMatrix(b, sumElem, sumRow, gr, gc)
	return result, nil
}

// MatSumGraphGraph returns a graph for a+b, two lazy graphs of equal shape.
// b is spliced into a clone of a and left untouched.
func MatSumGraphGraph(a, b *lazy.Graph) (*lazy.Graph, error) {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return nil, qerr.NewShapeError("matsum", shape(ar, ac)+" + "+shape(br, bc), "equal shapes")
	}
	result := a.Clone()
	result.AppendLazy(b, sumElem, sumRow, ar, ac)
	return result, nil
}

// TensorProduct returns a graph for A ⊗ B.
func TensorProduct(a, b dvm.Matrix) *lazy.Graph {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	return lazy.NewDVMDVM(a, b, tensorElem, tensorRowDispatch, ar*br, ac*bc)
}

// TensorProductGraphDVM returns a graph for g ⊗ b.
func TensorProductGraphDVM(g *lazy.Graph, b dvm.Matrix) *lazy.Graph {
	gr, gc := g.Dims()
	br, bc := b.Dims()
	result := g.Clone()
	result.AppendMatrix(b, tensorElem, tensorRowDispatch, gr*br, gc*bc)
	return result
}

// TensorProductGraphGraph returns a graph for a ⊗ b, two lazy graphs. b is
// spliced into a clone of a and left untouched.
func TensorProductGraphGraph(a, b *lazy.Graph) *lazy.Graph {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	result := a.Clone()
	result.AppendLazy(b, tensorElem, tensorRowDispatch, ar*br, ac*bc)
	return result
}

// TensorPower returns a graph for the n-fold tensor power A ⊗ A ⊗ ... ⊗ A
// (n copies). n must be at least 1.
func TensorPower(a dvm.Matrix, n int) (*lazy.Graph, error) {
	if n < 1 {
		return nil, qerr.NewShapeError("tensor_power", fmt.Sprintf("n=%d", n), "n >= 1")
	}
	rows, cols := a.Dims()
	g := lazy.NewWrap(a)
	outRows, outCols := rows, cols
	for i := 1; i < n; i++ {
		outRows *= rows
		outCols *= cols
		g.AppendMatrix(a, tensorElem, tensorRowDispatch, outRows, outCols)
	}
	return g, nil
}

// IsUnitary reports whether M*M† is (approximately) the identity, checked
// via the same diagonal-and-row-sum heuristic the rest of the toolchain
// uses: every diagonal entry equal to 1 and every row summing to 1, within
// dvm.DefaultTolerance. This does not check off-diagonal entries
// individually, so it can accept some non-unitary matrices whose rows
// happen to sum correctly; it is a fast necessary check, not a full proof.
func IsUnitary(m dvm.Matrix) bool {
	rows, cols := m.Dims()
	if rows != cols {
		return false
	}
	mh := ConjugateTranspose(m)
	product, err := productOfMAndMH(m, mh)
	if err != nil {
		return false
	}
	for i := 0; i < rows; i++ {
		row := product.GetRow(i)
		var sum complex64
		for j := 0; j < cols; j++ {
			sum += row.At(j)
		}
		diag := row.At(i)
		if !dvm.ApproxEqual(diag, 1, dvm.DefaultTolerance) {
			return false
		}
		if !dvm.ApproxEqual(sum, 1, dvm.DefaultTolerance) {
			return false
		}
	}
	return true
}

// productOfMAndMH builds the graph for M * M†, given M and its already
// constructed conjugate-transpose graph mh.
func productOfMAndMH(m dvm.Matrix, mh *lazy.Graph) (*lazy.Graph, error) {
	wrapped := lazy.NewWrap(m)
	gr, gc := wrapped.Dims()
	hr, hc := mh.Dims()
	if gc != hr {
		return nil, qerr.NewShapeError("is_unitary", shape(gr, gc)+" * "+shape(hr, hc), "M.cols == M†.rows")
	}
	wrapped.AppendLazy(mh, matMulElem, matMulRow, gr, hc)
	return wrapped, nil
}
