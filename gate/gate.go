// Package gate implements the single- and two-qubit gate layer on top of
// package engine: Hadamard, phase shifts, the generic controlled-U
// construction, and the partial trace used to read a two-qubit entangled
// state back down to a single qubit. This is the thin contract layer the
// algebra engine exists to serve; circuit-level assembly (QFT, inverse QFT,
// phase estimation) lives in circuit.go.
package gate

import (
	"fmt"
	"math"

	"github.com/LorenzoFritzsch/hilbert-qusim/dvm"
	"github.com/LorenzoFritzsch/hilbert-qusim/engine"
	"github.com/LorenzoFritzsch/hilbert-qusim/lazy"
	"github.com/LorenzoFritzsch/hilbert-qusim/qerr"
	"github.com/LorenzoFritzsch/hilbert-qusim/qubit"
)

// ApplyGate applies gate G to state vector psi: matrix_vector_product(G, psi).
func ApplyGate(g, psi dvm.Matrix) (*lazy.Graph, error) {
	return engine.MatrixVectorProduct(g, psi)
}

// Hadamard applies H2 to q's vector form and re-wraps the result as a qubit.
func Hadamard(q qubit.Qubit) (qubit.Qubit, error) {
	graph, err := ApplyGate(dvm.Hadamard2(), q.ToMatrix())
	if err != nil {
		return qubit.Qubit{}, err
	}
	return qubit.FromVector(graph.Materialise())
}

// PhaseShift returns diag(1, e^{i theta}).
func PhaseShift(theta float64) dvm.Matrix {
	phase := complex(float32(math.Cos(theta)), float32(math.Sin(theta)))
	m, _ := dvm.New(2, 2, []complex64{1, 0, 0, phase})
	return m
}

// Rk returns the QFT rotation gate R_k = phase_shift(2*pi/2^k), or its
// inverse phase_shift(-2*pi/2^k) when inverse is true.
func Rk(k int, inverse bool) dvm.Matrix {
	theta := 2 * math.Pi / math.Pow(2, float64(k))
	if inverse {
		theta = -theta
	}
	return PhaseShift(theta)
}

// MakeControlledU builds the controlled-U matrix as P0⊗I2 + P1⊗U: the
// identity block when the control is |0>, U applied to the target when the
// control is |1>. U must be a 2x2 matrix.
func MakeControlledU(u dvm.Matrix) (*lazy.Graph, error) {
	rows, cols := u.Dims()
	if rows != 2 || cols != 2 {
		return nil, qerr.NewShapeError("gate.MakeControlledU", shapeOf(rows, cols), "2x2")
	}
	identityBlock := engine.TensorProduct(dvm.Projector0(), dvm.Identity2())
	uBlock := engine.TensorProduct(dvm.Projector1(), u)
	return engine.MatSumGraphGraph(identityBlock, uBlock)
}

// reducedDensityMatrixControl builds the 2x2 reduced density matrix of the
// first (control) tensor factor of a 1x4 two-qubit state, tracing out the
// second (target) factor: rho[i][j] = sum_t s[i,t] * conj(s[j,t]).
func reducedDensityMatrixControl(s *lazy.Graph) [2][2]complex64 {
	alpha, beta := s.Get(0, 0), s.Get(0, 1)
	gamma, delta := s.Get(0, 2), s.Get(0, 3)
	return [2][2]complex64{
		{alpha*cmplx64Conj(alpha) + beta*cmplx64Conj(beta), alpha*cmplx64Conj(gamma) + beta*cmplx64Conj(delta)},
		{gamma*cmplx64Conj(alpha) + delta*cmplx64Conj(beta), gamma*cmplx64Conj(gamma) + delta*cmplx64Conj(delta)},
	}
}

func cmplx64Conj(c complex64) complex64 {
	return complex(real(c), -imag(c))
}

// trout traces a rank-1 (pure-state) 2x2 density matrix back down to its
// eigenvector for eigenvalue 1: solve (rho - I)x = 0 using whichever row is
// non-degenerate, then normalise. rho is treated as pure: a mixed reduced
// state (as an entangling U, e.g. X with a superposed control, produces) is
// not detected, and the returned pair is then not a faithful single-qubit
// description of it.
func trout(rho [2][2]complex64) (complex64, complex64) {
	alpha := rho[0][0] - 1
	beta := rho[0][1]
	if approxZero(alpha) && approxZero(beta) {
		alpha = rho[1][0]
		beta = rho[1][1] - 1
	}

	switch {
	case approxZero(alpha):
		return 1, 0
	case approxZero(beta):
		return 0, 1
	default:
		beta = -alpha / beta
		alpha = 1
		n := float32(math.Sqrt(float64(real(alpha)*real(alpha) + imag(alpha)*imag(alpha) +
			real(beta)*real(beta) + imag(beta)*imag(beta))))
		return alpha / complex(n, 0), beta / complex(n, 0)
	}
}

func approxZero(c complex64) bool {
	return dvm.ApproxEqual(c, 0, dvm.DefaultTolerance)
}

// partialTrace extracts the control qubit back out of a 1x4 two-qubit state
// vector: the reduced density matrix of the first tensor factor, traced
// down to a pure state via trout. Grounded on
// reduced_density_matrix_control + trout in the source engine's gate layer,
// not the simpler (and incorrect for superposed/entangled inputs)
// amplitude-squared shortcut.
func partialTrace(s *lazy.Graph) (qubit.Qubit, error) {
	rows, cols := s.Dims()
	if rows != 1 || cols != 4 {
		return qubit.Qubit{}, qerr.NewShapeError("gate.partialTrace", shapeOf(rows, cols), "1x4")
	}
	rho := reducedDensityMatrixControl(s)
	alpha, beta := trout(rho)
	return qubit.New(alpha, beta)
}

// ControlledU builds |c>⊗|t>, applies the controlled-U gate, partial-traces
// the result and returns the remaining qubit. U must be 2x2 and unitary.
func ControlledU(control, target qubit.Qubit, u dvm.Matrix) (qubit.Qubit, error) {
	if !engine.IsUnitary(u) {
		return qubit.Qubit{}, qerr.NewShapeError("gate.ControlledU", "non-unitary U", "unitary U")
	}
	cu, err := MakeControlledU(u)
	if err != nil {
		return qubit.Qubit{}, err
	}
	state := engine.TensorProduct(control.ToMatrix(), target.ToMatrix())
	transformed, err := engine.MatrixVectorProductGraphGraph(cu, state)
	if err != nil {
		return qubit.Qubit{}, err
	}
	return partialTrace(transformed)
}

func shapeOf(rows, cols int) string {
	return fmt.Sprintf("%dx%d", rows, cols)
}

// matrixExpMaterialised returns m^k as a materialised matrix, used wherever
// a gate needs to consume the power directly (controlled-U construction
// needs a concrete 2x2 matrix, not a lazily deferred one).
func matrixExpMaterialised(m dvm.Matrix, k int) (dvm.Matrix, error) {
	g, err := engine.MatrixExp(m, k)
	if err != nil {
		return dvm.Matrix{}, err
	}
	return g.Materialise(), nil
}
