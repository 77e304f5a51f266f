package qubit

import (
	"testing"

	"github.com/LorenzoFritzsch/hilbert-qusim/dvm"
	"github.com/LorenzoFritzsch/hilbert-qusim/lazy"
)

func TestNewRejectsBadNorm(t *testing.T) {
	if _, err := New(2, 0); err == nil {
		t.Error("New with norm 4 should error")
	}
}

func TestNewAcceptsZeroAndOne(t *testing.T) {
	if _, err := New(1, 0); err != nil {
		t.Errorf("New(1,0) = %v, want nil error", err)
	}
	if _, err := New(0, 1); err != nil {
		t.Errorf("New(0,1) = %v, want nil error", err)
	}
}

func TestFromVectorShapeMismatch(t *testing.T) {
	m, _ := dvm.New(1, 3, []complex64{1, 0, 0})
	if _, err := FromVector(m); err == nil {
		t.Error("FromVector with 1x3 should error")
	}
}

func TestFromVectorRoundTrip(t *testing.T) {
	q, err := New(1, 0)
	if err != nil {
		t.Fatal(err)
	}
	back, err := FromVector(q.ToMatrix())
	if err != nil {
		t.Fatal(err)
	}
	if back.Alpha() != q.Alpha() || back.Beta() != q.Beta() {
		t.Errorf("round trip = %+v, want %+v", back, q)
	}
}

func TestFromGraph(t *testing.T) {
	g := lazy.NewWrap(dvm.Zero())
	q, err := FromGraph(g)
	if err != nil {
		t.Fatal(err)
	}
	if q.Alpha() != 1 || q.Beta() != 0 {
		t.Errorf("FromGraph = %+v, want (1,0)", q)
	}
}

func TestStateVectorToVectorTwoQubits(t *testing.T) {
	zero, _ := New(1, 0)
	one, _ := New(0, 1)
	sv, err := NewFromQubits(zero, one)
	if err != nil {
		t.Fatal(err)
	}
	g := sv.ToVector()
	rows, cols := g.Dims()
	if rows != 1 || cols != 4 {
		t.Fatalf("Dims = (%d,%d), want (1,4)", rows, cols)
	}
	want, _ := dvm.New(1, 4, []complex64{0, 1, 0, 0})
	if !g.Materialise().Equal(want) {
		t.Errorf("|0>|1> = %+v, want %+v", g.Materialise(), want)
	}
}

func TestStateVectorRejectsEmpty(t *testing.T) {
	if _, err := NewFromQubits(); err == nil {
		t.Error("NewFromQubits() with no qubits should error")
	}
}

func TestStateVectorReplaceWithGraphPromotes(t *testing.T) {
	zero, _ := New(1, 0)
	one, _ := New(0, 1)
	sv, err := NewFromQubits(zero, one)
	if err != nil {
		t.Fatal(err)
	}
	if err := sv.ReplaceWithGraph(0, lazy.NewWrap(dvm.One())); err != nil {
		t.Fatal(err)
	}
	if !sv.IsGraphBacked() {
		t.Error("ReplaceWithGraph should promote a qubit-backed state vector")
	}
	g := sv.ToVector()
	want, _ := dvm.New(1, 4, []complex64{0, 0, 0, 1})
	if !g.Materialise().Equal(want) {
		t.Errorf("after replace = %+v, want %+v", g.Materialise(), want)
	}
}
