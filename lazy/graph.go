package lazy

import (
	"github.com/LorenzoFritzsch/hilbert-qusim/dvm"
	"github.com/LorenzoFritzsch/hilbert-qusim/scv"
)

// Graph is the full deferred computation: an arena of DVMs and an arena of
// operation nodes, the last of which is the root representing the value of
// the whole graph. Graph must always be used through a *Graph; copying a
// Graph value would alias both arenas' backing arrays, which the design
// forbids. Use Clone for an independent deep copy.
type Graph struct {
	dvmArena []dvm.Matrix
	opArena  []node
}

// NewDVMDVM builds the canonical two-DVM-operand graph: it pushes l and r
// into the DVM arena (at indices 0 and 1) and a single KindDVMDVM root node
// referring to them.
func NewDVMDVM(l, r dvm.Matrix, elem ElemFunc, row RowFunc, outRows, outCols int) *Graph {
	g := &Graph{
		dvmArena: []dvm.Matrix{l, r},
	}
	g.opArena = []node{{
		kind:       KindDVMDVM,
		leftIndex:  0,
		rightIndex: 1,
		elemKernel: elem,
		rowKernel:  row,
		outRows:    outRows,
		outCols:    outCols,
	}}
	return g
}

// NewWrap builds a passthrough graph holding only m: its single node reads
// straight through to m regardless of requested coordinates.
func NewWrap(m dvm.Matrix) *Graph {
	rows, cols := m.Dims()
	elem := func(left, _ Operand, r, c int) complex64 { return left.At(r, c) }
	row := func(left, _ Operand, r int) scv.Vector { return left.Row(r) }
	g := &Graph{dvmArena: []dvm.Matrix{m}}
	g.opArena = []node{{
		kind:       KindDVMDVM,
		leftIndex:  0,
		rightIndex: 0,
		elemKernel: elem,
		rowKernel:  row,
		outRows:    rows,
		outCols:    cols,
	}}
	return g
}

// NewIdentity builds the lazy n x n identity without ever materialising a
// dense buffer: its row kernel emits the standard basis row e_m directly. A
// single 0x0 placeholder DVM is pushed so every node still has two valid
// arena indices to dereference, even though neither is read.
func NewIdentity(n int) *Graph {
	if n <= 0 {
		panic("lazy: identity size must be positive")
	}
	elem := func(_, _ Operand, r, c int) complex64 {
		if r == c {
			return 1
		}
		return 0
	}
	row := func(_, _ Operand, r int) scv.Vector {
		re := make([]float32, n)
		re[r] = 1
		return scv.Vector{Re: re, Im: make([]float32, n)}
	}
	placeholder := dvm.NewZero(0, 0)
	g := &Graph{dvmArena: []dvm.Matrix{placeholder}}
	g.opArena = []node{{
		kind:       KindDVMDVM,
		leftIndex:  0,
		rightIndex: 0,
		elemKernel: elem,
		rowKernel:  row,
		outRows:    n,
		outCols:    n,
	}}
	return g
}

// root returns the graph's root node: the last entry of the operation
// arena, which every public accessor delegates to.
func (g *Graph) root() *node {
	return &g.opArena[len(g.opArena)-1]
}

// Dims returns the root node's cached output dimensions.
func (g *Graph) Dims() (rows, cols int) {
	r := g.root()
	return r.outRows, r.outCols
}

// Get returns the (m, n)-th element of the graph's value. It is read-only
// and safe to call concurrently, including during Materialise.
func (g *Graph) Get(m, n int) complex64 {
	return g.root().elem(g, m, n)
}

// GetRow returns row m of the graph's value. It is read-only and safe to
// call concurrently, including during Materialise.
func (g *Graph) GetRow(m int) scv.Vector {
	return g.root().row(g, m)
}

// AppendMatrix extends the graph by pushing m onto the DVM arena and a new
// KindOpDVM node on top of the current root, whose operands are the prior
// root and m.
func (g *Graph) AppendMatrix(m dvm.Matrix, elem ElemFunc, row RowFunc, outRows, outCols int) {
	g.dvmArena = append(g.dvmArena, m)
	matIdx := len(g.dvmArena) - 1
	priorRoot := len(g.opArena) - 1
	g.opArena = append(g.opArena, node{
		kind:       KindOpDVM,
		leftIndex:  priorRoot,
		rightIndex: matIdx,
		elemKernel: elem,
		rowKernel:  row,
		outRows:    outRows,
		outCols:    outCols,
	})
}

// AppendLazy splices other's nodes into g, relocating every operand index
// by however far g's arenas have already grown, then pushes one further
// KindOpOp node combining g's prior root with other's spliced root. other is
// left untouched; none of its storage is shared with g afterwards.
func (g *Graph) AppendLazy(other *Graph, elem ElemFunc, row RowFunc, outRows, outCols int) {
	baseOp := len(g.opArena)
	priorRoot := baseOp - 1

	for _, on := range other.opArena {
		nn := node{
			elemKernel: on.elemKernel,
			rowKernel:  on.rowKernel,
			outRows:    on.outRows,
			outCols:    on.outCols,
		}
		switch on.kind {
		case KindDVMDVM:
			g.dvmArena = append(g.dvmArena, other.dvmArena[on.leftIndex])
			li := len(g.dvmArena) - 1
			g.dvmArena = append(g.dvmArena, other.dvmArena[on.rightIndex])
			ri := len(g.dvmArena) - 1
			nn.kind, nn.leftIndex, nn.rightIndex = KindDVMDVM, li, ri
		case KindOpDVM:
			g.dvmArena = append(g.dvmArena, other.dvmArena[on.rightIndex])
			ri := len(g.dvmArena) - 1
			nn.kind, nn.leftIndex, nn.rightIndex = KindOpDVM, baseOp+on.leftIndex, ri
		case KindDVMOp:
			g.dvmArena = append(g.dvmArena, other.dvmArena[on.leftIndex])
			li := len(g.dvmArena) - 1
			nn.kind, nn.leftIndex, nn.rightIndex = KindDVMOp, li, baseOp+on.rightIndex
		case KindOpOp:
			nn.kind, nn.leftIndex, nn.rightIndex = KindOpOp, baseOp+on.leftIndex, baseOp+on.rightIndex
		default:
			panic("lazy: unreachable operation kind " + on.kind.String())
		}
		g.opArena = append(g.opArena, nn)
	}

	splicedRoot := len(g.opArena) - 1
	g.opArena = append(g.opArena, node{
		kind:       KindOpOp,
		leftIndex:  priorRoot,
		rightIndex: splicedRoot,
		elemKernel: elem,
		rowKernel:  row,
		outRows:    outRows,
		outCols:    outCols,
	})
}

// Clone returns a deep copy of g: both arenas are fully independent, so
// appending to the clone can never invalidate or alias the original's
// storage.
func (g *Graph) Clone() *Graph {
	dvmArena := make([]dvm.Matrix, len(g.dvmArena))
	for i, m := range g.dvmArena {
		rows, cols := m.Dims()
		cloned, err := dvm.New(rows, cols, m.Split().Complex())
		if err != nil {
			panic(err)
		}
		dvmArena[i] = cloned
	}
	opArena := make([]node, len(g.opArena))
	copy(opArena, g.opArena)
	return &Graph{dvmArena: dvmArena, opArena: opArena}
}
