package qubit

import (
	"fmt"

	"github.com/LorenzoFritzsch/hilbert-qusim/engine"
	"github.com/LorenzoFritzsch/hilbert-qusim/lazy"
	"github.com/LorenzoFritzsch/hilbert-qusim/qerr"
)

// kind tags which of StateVector's two backing slices is live: a state
// vector holds either plain qubits (before any gate has touched them) or
// lazy graphs (once a gate has rewritten one or more elements into deferred
// form), never a mix of both.
type kind int

const (
	kindQubits kind = iota
	kindGraphs
)

// StateVector is an ordered, non-empty sequence of qubits or of the lazy
// graphs that replace them once a gate has been applied. Insertion is only
// ever at the tail or by index; ToVector folds the whole sequence down to a
// single graph over the 2^n-dimensional joint space via repeated tensor
// products.
type StateVector struct {
	kind   kind
	qubits []Qubit
	graphs []*lazy.Graph
}

// NewFromQubits builds a StateVector backed by qubits. It requires at least
// one qubit.
func NewFromQubits(qubits ...Qubit) (*StateVector, error) {
	if len(qubits) == 0 {
		return nil, qerr.NewShapeError("qubit.NewFromQubits", "0 qubits", "at least 1")
	}
	cp := make([]Qubit, len(qubits))
	copy(cp, qubits)
	return &StateVector{kind: kindQubits, qubits: cp}, nil
}

// NewFromGraphs builds a StateVector backed by lazy single-qubit graphs. It
// requires at least one graph, and every graph must have shape 1x2.
func NewFromGraphs(graphs ...*lazy.Graph) (*StateVector, error) {
	if len(graphs) == 0 {
		return nil, qerr.NewShapeError("qubit.NewFromGraphs", "0 graphs", "at least 1")
	}
	for i, g := range graphs {
		rows, cols := g.Dims()
		if rows != 1 || cols != 2 {
			return nil, qerr.NewShapeError("qubit.NewFromGraphs",
				fmt.Sprintf("%s at index %d", shapeOf(rows, cols), i), "1x2")
		}
	}
	cp := make([]*lazy.Graph, len(graphs))
	copy(cp, graphs)
	return &StateVector{kind: kindGraphs, graphs: cp}, nil
}

// Len returns the number of qubits in the state vector.
func (sv *StateVector) Len() int {
	if sv.kind == kindQubits {
		return len(sv.qubits)
	}
	return len(sv.graphs)
}

// IsGraphBacked reports whether the state vector currently holds lazy
// graphs rather than plain qubits.
func (sv *StateVector) IsGraphBacked() bool {
	return sv.kind == kindGraphs
}

// Qubit returns the qubit at index i. It errors if the state vector is
// currently graph-backed (call Graph instead).
func (sv *StateVector) Qubit(i int) (Qubit, error) {
	if sv.kind != kindQubits {
		return Qubit{}, qerr.NewShapeError("qubit.StateVector.Qubit", "graph-backed", "qubit-backed")
	}
	return sv.qubits[i], nil
}

// Graph returns the graph at index i, wrapping a plain qubit's vector form
// on demand if the state vector is qubit-backed.
func (sv *StateVector) Graph(i int) *lazy.Graph {
	if sv.kind == kindGraphs {
		return sv.graphs[i]
	}
	return lazy.NewWrap(sv.qubits[i].ToMatrix())
}

// ReplaceWithGraph overwrites index i with a lazy graph, promoting the
// whole state vector to graph-backed if it was qubit-backed. Every other
// qubit is wrapped via NewWrap so the sequence stays uniform.
func (sv *StateVector) ReplaceWithGraph(i int, g *lazy.Graph) error {
	rows, cols := g.Dims()
	if rows != 1 || cols != 2 {
		return qerr.NewShapeError("qubit.StateVector.ReplaceWithGraph", shapeOf(rows, cols), "1x2")
	}
	if sv.kind == kindQubits {
		graphs := make([]*lazy.Graph, len(sv.qubits))
		for j, q := range sv.qubits {
			graphs[j] = lazy.NewWrap(q.ToMatrix())
		}
		sv.kind = kindGraphs
		sv.qubits = nil
		sv.graphs = graphs
	}
	sv.graphs[i] = g
	return nil
}

// ToVector folds the state vector down to a single graph over the
// 2^n-dimensional joint Hilbert space, tensoring element 0 with element 1,
// the result with element 2, and so on.
func (sv *StateVector) ToVector() *lazy.Graph {
	n := sv.Len()
	if sv.kind == kindQubits {
		result := lazy.NewWrap(sv.qubits[0].ToMatrix())
		for i := 1; i < n; i++ {
			result = engine.TensorProductGraphDVM(result, sv.qubits[i].ToMatrix())
		}
		return result
	}
	result := sv.graphs[0].Clone()
	for i := 1; i < n; i++ {
		result = engine.TensorProductGraphGraph(result, sv.graphs[i])
	}
	return result
}
