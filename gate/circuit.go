package gate

import (
	"github.com/LorenzoFritzsch/hilbert-qusim/dvm"
	"github.com/LorenzoFritzsch/hilbert-qusim/qubit"
)

// QFT runs the iterative quantum Fourier transform over a qubit-backed
// state vector: for each qubit i, apply a Hadamard, then a descending chain
// of controlled R_k rotations keyed on every qubit after it, and place the
// result at the bit-reversed output position.
func QFT(sv *qubit.StateVector) (*qubit.StateVector, error) {
	n := sv.Len()
	result := make([]qubit.Qubit, n)
	for i := 0; i < n; i++ {
		qi, err := sv.Qubit(i)
		if err != nil {
			return nil, err
		}
		jk, err := Hadamard(qi)
		if err != nil {
			return nil, err
		}
		for kNext := i + 1; kNext < n; kNext++ {
			qNext, err := sv.Qubit(kNext)
			if err != nil {
				return nil, err
			}
			jk, err = ControlledU(jk, qNext, Rk(kNext+1, false))
			if err != nil {
				return nil, err
			}
		}
		result[n-1-i] = jk
	}
	return qubit.NewFromQubits(result...)
}

// InverseQFT runs the inverse of QFT: it first undoes QFT's bit reversal,
// then chains controlled inverse-R_k rotations and a final Hadamard in the
// reverse construction order.
func InverseQFT(sv *qubit.StateVector) (*qubit.StateVector, error) {
	n := sv.Len()
	swapped := make([]qubit.Qubit, n)
	for i := 0; i < n; i++ {
		q, err := sv.Qubit(i)
		if err != nil {
			return nil, err
		}
		swapped[n-1-i] = q
	}

	result := make([]qubit.Qubit, n)
	lastIndex := n - 1
	for i := lastIndex; i >= 0; i-- {
		ki := swapped[i]
		for j := lastIndex; j > i; j-- {
			updated, err := ControlledU(ki, result[j], Rk(j+1, true))
			if err != nil {
				return nil, err
			}
			ki = updated
		}
		hi, err := Hadamard(ki)
		if err != nil {
			return nil, err
		}
		result[i] = hi
	}
	return qubit.NewFromQubits(result...)
}

// QuantumPhaseEstimation estimates the phase phi of an eigenvalue e^{2*pi*i*phi}
// of unitary u, given an eigenstate of u, using precisionQubits ancilla
// qubits. Each ancilla starts at |0>, is put into superposition by a
// Hadamard, and controls an application of u raised to a power of two onto
// the eigenstate; the ancillas are then run through the inverse QFT and
// read out by nearest-basis-state rounding (this engine has no projective
// measurement model, so the read-out is deterministic rather than
// probabilistic).
func QuantumPhaseEstimation(u dvm.Matrix, eigenstate qubit.Qubit, precisionQubits int) (float32, error) {
	controls := make([]qubit.Qubit, precisionQubits)
	for i := 0; i < precisionQubits; i++ {
		zero, err := qubit.New(1, 0)
		if err != nil {
			return 0, err
		}
		control, err := Hadamard(zero)
		if err != nil {
			return 0, err
		}
		uPow, err := matrixExpMaterialised(u, 1<<uint(i))
		if err != nil {
			return 0, err
		}
		controls[i], err = ControlledU(control, eigenstate, uPow)
		if err != nil {
			return 0, err
		}
	}

	sv, err := qubit.NewFromQubits(controls...)
	if err != nil {
		return 0, err
	}
	estimated, err := InverseQFT(sv)
	if err != nil {
		return 0, err
	}

	var phase float32
	for i := 0; i < precisionQubits; i++ {
		q, err := estimated.Qubit(i)
		if err != nil {
			return 0, err
		}
		bit := float32(0)
		alphaMag := real(q.Alpha())*real(q.Alpha()) + imag(q.Alpha())*imag(q.Alpha())
		betaMag := real(q.Beta())*real(q.Beta()) + imag(q.Beta())*imag(q.Beta())
		if betaMag > alphaMag {
			bit = 1
		}
		weight := float32(1)
		for j := 0; j <= i; j++ {
			weight /= 2
		}
		phase += bit * weight
	}
	return phase, nil
}
