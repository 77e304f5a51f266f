package gate

import (
	"testing"

	"github.com/LorenzoFritzsch/hilbert-qusim/dvm"
	"github.com/LorenzoFritzsch/hilbert-qusim/qubit"
)

func TestQFTSingleQubitIsHadamard(t *testing.T) {
	zero, _ := qubit.New(1, 0)
	sv, err := qubit.NewFromQubits(zero)
	if err != nil {
		t.Fatal(err)
	}
	out, err := QFT(sv)
	if err != nil {
		t.Fatal(err)
	}
	q, err := out.Qubit(0)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := qubit.FromVector(dvm.Plus())
	if !dvm.ApproxEqual(q.Alpha(), want.Alpha(), dvm.DefaultTolerance) ||
		!dvm.ApproxEqual(q.Beta(), want.Beta(), dvm.DefaultTolerance) {
		t.Errorf("QFT(|0>) = %+v, want %+v", q, want)
	}
}

func TestQFTThenInverseQFTRoundTripSingleQubit(t *testing.T) {
	zero, _ := qubit.New(1, 0)
	sv, err := qubit.NewFromQubits(zero)
	if err != nil {
		t.Fatal(err)
	}
	transformed, err := QFT(sv)
	if err != nil {
		t.Fatal(err)
	}
	back, err := InverseQFT(transformed)
	if err != nil {
		t.Fatal(err)
	}
	q, err := back.Qubit(0)
	if err != nil {
		t.Fatal(err)
	}
	if !dvm.ApproxEqual(q.Alpha(), 1, dvm.DefaultTolerance) || !dvm.ApproxEqual(q.Beta(), 0, dvm.DefaultTolerance) {
		t.Errorf("inverse_qft(qft(|0>)) = %+v, want |0>", q)
	}
}

func TestQFTTwoQubitPreservesLength(t *testing.T) {
	zero, _ := qubit.New(1, 0)
	sv, err := qubit.NewFromQubits(zero, zero)
	if err != nil {
		t.Fatal(err)
	}
	out, err := QFT(sv)
	if err != nil {
		t.Fatal(err)
	}
	if out.Len() != 2 {
		t.Errorf("QFT output length = %d, want 2", out.Len())
	}
}

func TestQFTOnZeroZeroGivesEachQubitPlus(t *testing.T) {
	zero, _ := qubit.New(1, 0)
	sv, err := qubit.NewFromQubits(zero, zero)
	if err != nil {
		t.Fatal(err)
	}
	out, err := QFT(sv)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := qubit.FromVector(dvm.Plus())
	for i := 0; i < 2; i++ {
		q, err := out.Qubit(i)
		if err != nil {
			t.Fatal(err)
		}
		if !dvm.ApproxEqual(q.Alpha(), want.Alpha(), dvm.DefaultTolerance) ||
			!dvm.ApproxEqual(q.Beta(), want.Beta(), dvm.DefaultTolerance) {
			t.Errorf("QFT(|00>) qubit %d = %+v, want %+v", i, q, want)
		}
	}
}

func TestQFTThenInverseQFTRoundTripFiveQubits(t *testing.T) {
	bits := []complex64{0, 1, 0, 0, 1} // |01001>
	qubits := make([]qubit.Qubit, len(bits))
	for i, bit := range bits {
		var q qubit.Qubit
		var err error
		if bit == 0 {
			q, err = qubit.New(1, 0)
		} else {
			q, err = qubit.New(0, 1)
		}
		if err != nil {
			t.Fatal(err)
		}
		qubits[i] = q
	}
	sv, err := qubit.NewFromQubits(qubits...)
	if err != nil {
		t.Fatal(err)
	}
	transformed, err := QFT(sv)
	if err != nil {
		t.Fatal(err)
	}
	back, err := InverseQFT(transformed)
	if err != nil {
		t.Fatal(err)
	}
	for i, bit := range bits {
		q, err := back.Qubit(i)
		if err != nil {
			t.Fatal(err)
		}
		wantAlpha, wantBeta := complex64(1), complex64(0)
		if bit == 1 {
			wantAlpha, wantBeta = 0, 1
		}
		if !dvm.ApproxEqual(q.Alpha(), wantAlpha, dvm.DefaultTolerance) ||
			!dvm.ApproxEqual(q.Beta(), wantBeta, dvm.DefaultTolerance) {
			t.Errorf("inverse_qft(qft(|01001>)) qubit %d = %+v, want (%v,%v)", i, q, wantAlpha, wantBeta)
		}
	}
}

func TestQuantumPhaseEstimationOnEigenstate(t *testing.T) {
	eigenstate, _ := qubit.New(1, 0)
	phase, err := QuantumPhaseEstimation(dvm.PauliZ(), eigenstate, 2)
	if err != nil {
		t.Fatal(err)
	}
	if phase < 0 || phase >= 1 {
		t.Errorf("phase = %v, want a value in [0,1)", phase)
	}
}
