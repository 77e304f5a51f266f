// Package qubit implements the single-qubit and multi-qubit state types
// that sit on top of the algebra engine: a Qubit is a normalised pair of
// complex amplitudes, and a StateVector is an ordered collection of qubits
// (or of the lazy graphs that replace them once a gate has been applied)
// that folds down to a single joint-space graph via repeated tensor
// products.
package qubit

import (
	"fmt"

	"github.com/LorenzoFritzsch/hilbert-qusim/dvm"
	"github.com/LorenzoFritzsch/hilbert-qusim/lazy"
	"github.com/LorenzoFritzsch/hilbert-qusim/qerr"
	"gonum.org/v1/gonum/floats/scalar"
)

// Qubit is a unit vector in C^2, represented as amplitudes (alpha, beta)
// with |alpha|^2 + |beta|^2 = 1. The zero value is not a valid Qubit; use
// New, FromVector or FromGraph.
type Qubit struct {
	alpha, beta complex64
}

func normSquared(alpha, beta complex64) float64 {
	ar, ai := float64(real(alpha)), float64(imag(alpha))
	br, bi := float64(real(beta)), float64(imag(beta))
	return ar*ar + ai*ai + br*br + bi*bi
}

func checkNorm(op string, alpha, beta complex64) error {
	n := normSquared(alpha, beta)
	tol := float64(dvm.DefaultTolerance)
	if !scalar.EqualWithinAbsOrRel(n, 1, tol, tol) {
		return qerr.NewNormError(op, n)
	}
	return nil
}

// New builds a Qubit directly from its two amplitudes, validating the
// unit-norm invariant.
func New(alpha, beta complex64) (Qubit, error) {
	if err := checkNorm("qubit.New", alpha, beta); err != nil {
		return Qubit{}, err
	}
	return Qubit{alpha: alpha, beta: beta}, nil
}

// FromVector builds a Qubit from a materialised 1x2 row vector.
func FromVector(m dvm.Matrix) (Qubit, error) {
	rows, cols := m.Dims()
	if rows != 1 || cols != 2 {
		return Qubit{}, qerr.NewShapeError("qubit.FromVector", shapeOf(rows, cols), "1x2")
	}
	alpha, beta := m.At(0, 0), m.At(0, 1)
	if err := checkNorm("qubit.FromVector", alpha, beta); err != nil {
		return Qubit{}, err
	}
	return Qubit{alpha: alpha, beta: beta}, nil
}

// FromGraph builds a Qubit from a lazy graph's root, reading the two
// amplitudes element-by-element rather than materialising the graph.
func FromGraph(g *lazy.Graph) (Qubit, error) {
	rows, cols := g.Dims()
	if rows != 1 || cols != 2 {
		return Qubit{}, qerr.NewShapeError("qubit.FromGraph", shapeOf(rows, cols), "1x2")
	}
	alpha, beta := g.Get(0, 0), g.Get(0, 1)
	if err := checkNorm("qubit.FromGraph", alpha, beta); err != nil {
		return Qubit{}, err
	}
	return Qubit{alpha: alpha, beta: beta}, nil
}

// Alpha returns the |0> amplitude.
func (q Qubit) Alpha() complex64 { return q.alpha }

// Beta returns the |1> amplitude.
func (q Qubit) Beta() complex64 { return q.beta }

// ToMatrix returns q's vector form as a materialised 1x2 row vector, the
// shape every gate in package gate operates on.
func (q Qubit) ToMatrix() dvm.Matrix {
	m, _ := dvm.New(1, 2, []complex64{q.alpha, q.beta})
	return m
}

func shapeOf(rows, cols int) string {
	return fmt.Sprintf("%dx%d", rows, cols)
}
