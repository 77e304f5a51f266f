// Package lazy implements the deferred-evaluation computation graph: an
// arena of materialised DVMs and an arena of operation nodes, arranged so
// that the last node in the operation arena is always the root. It is the
// generic splicing/arena mechanism only — it knows nothing about what
// "matrix multiplication" or "tensor product" mean; those semantics live in
// package engine, which builds ElemFunc/RowFunc closures and hands them to
// the constructors here. This mirrors gonum's own separation between a
// generic storage/indexing layer (blas/gonum's workqueue.go, arena-free but
// analogous in spirit) and the BLAS routines that use it.
package lazy

import (
	"fmt"

	"github.com/LorenzoFritzsch/hilbert-qusim/scv"
)

// Operand is anything a kernel can read an element or row from: either a
// materialised dvm.Matrix or another node within the same graph.
type Operand interface {
	Dims() (rows, cols int)
	At(m, n int) complex64
	Row(m int) scv.Vector
}

// ElemFunc computes a single output element at coordinates (m, n) from a
// pair of operands. It may ignore either operand (e.g. conjugate transpose
// ignores its right operand).
type ElemFunc func(left, right Operand, m, n int) complex64

// RowFunc computes an entire output row from a pair of operands.
type RowFunc func(left, right Operand, row int) scv.Vector

// Kind tags which arena each of a node's two indices refers into.
type Kind uint8

const (
	// KindDVMDVM: both leftIndex and rightIndex index the DVM arena.
	KindDVMDVM Kind = iota
	// KindOpDVM: leftIndex indexes the operation arena, rightIndex the DVM arena.
	KindOpDVM
	// KindDVMOp: leftIndex indexes the DVM arena, rightIndex the operation arena.
	KindDVMOp
	// KindOpOp: both leftIndex and rightIndex index the operation arena.
	KindOpOp
)

func (k Kind) String() string {
	switch k {
	case KindDVMDVM:
		return "DVM_DVM"
	case KindOpDVM:
		return "OP_DVM"
	case KindDVMOp:
		return "DVM_OP"
	case KindOpOp:
		return "OP_OP"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// node is a single interior node of the graph: it never materialises its
// own output, only dispatches to elemKernel/rowKernel with the operand pair
// selected by kind.
type node struct {
	kind                  Kind
	leftIndex, rightIndex int
	elemKernel            ElemFunc
	rowKernel             RowFunc
	outRows, outCols      int
}

func (n *node) operands(g *Graph) (left, right Operand) {
	switch n.kind {
	case KindDVMDVM:
		return g.dvmArena[n.leftIndex], g.dvmArena[n.rightIndex]
	case KindOpDVM:
		return opOperand{g, n.leftIndex}, g.dvmArena[n.rightIndex]
	case KindDVMOp:
		return g.dvmArena[n.leftIndex], opOperand{g, n.rightIndex}
	case KindOpOp:
		return opOperand{g, n.leftIndex}, opOperand{g, n.rightIndex}
	default:
		panic("lazy: unreachable operation kind " + n.kind.String())
	}
}

func (n *node) elem(g *Graph, m, c int) complex64 {
	left, right := n.operands(g)
	return n.elemKernel(left, right, m, c)
}

func (n *node) row(g *Graph, m int) scv.Vector {
	left, right := n.operands(g)
	return n.rowKernel(left, right, m)
}

// opOperand adapts a node living at idx within g into an Operand, so that
// OP_DVM/DVM_OP/OP_OP kernels can read through it exactly like a DVM.
type opOperand struct {
	g   *Graph
	idx int
}

func (o opOperand) Dims() (int, int) {
	n := &o.g.opArena[o.idx]
	return n.outRows, n.outCols
}

func (o opOperand) At(m, n int) complex64 {
	return o.g.opArena[o.idx].elem(o.g, m, n)
}

func (o opOperand) Row(m int) scv.Vector {
	return o.g.opArena[o.idx].row(o.g, m)
}
