package engine

import (
	"testing"

	"github.com/LorenzoFritzsch/hilbert-qusim/dvm"
)

func TestConjugateTransposeInvolution(t *testing.T) {
	a, _ := dvm.New(1, 2, []complex64{complex(1, 2), complex(3, -4)})
	once := ConjugateTranspose(a).Materialise()
	twice := ConjugateTranspose(once).Materialise()
	if !twice.Equal(a) {
		t.Errorf("(A+)+ = %+v, want %+v", twice, a)
	}
}

func TestInnerProductShapeMismatch(t *testing.T) {
	u, _ := dvm.New(1, 2, []complex64{1, 0})
	v, _ := dvm.New(1, 3, []complex64{1, 0, 0})
	if _, err := InnerProduct(u, v); err == nil {
		t.Error("InnerProduct with mismatched lengths should error")
	}
}

func TestInnerProductOrthonormal(t *testing.T) {
	zero := dvm.Zero()
	one := dvm.One()
	g, err := InnerProduct(zero, one)
	if err != nil {
		t.Fatal(err)
	}
	if g.Get(0, 0) != 0 {
		t.Errorf("<0|1> = %v, want 0", g.Get(0, 0))
	}
	g, err = InnerProduct(zero, zero)
	if err != nil {
		t.Fatal(err)
	}
	if g.Get(0, 0) != 1 {
		t.Errorf("<0|0> = %v, want 1", g.Get(0, 0))
	}
}

func TestMatrixMultiplicationIdentity(t *testing.T) {
	h := dvm.Hadamard2()
	g, err := MatrixMultiplication(dvm.Identity2(), h)
	if err != nil {
		t.Fatal(err)
	}
	m := g.Materialise()
	if !m.Equal(h) {
		t.Errorf("I*H = %+v, want %+v", m, h)
	}
}

func TestHadamardSquaredIsIdentity(t *testing.T) {
	h := dvm.Hadamard2()
	g, err := MatrixMultiplication(h, h)
	if err != nil {
		t.Fatal(err)
	}
	m := g.Materialise()
	if !m.Equal(dvm.Identity2()) {
		t.Errorf("H*H = %+v, want I2", m)
	}
}

func TestMatrixExpZeroIsIdentity(t *testing.T) {
	h := dvm.Hadamard2()
	g, err := MatrixExp(h, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !g.Materialise().Equal(dvm.Identity2()) {
		t.Error("H^0 should be I2")
	}
}

func TestMatrixExpSquare(t *testing.T) {
	h := dvm.Hadamard2()
	g, err := MatrixExp(h, 2)
	if err != nil {
		t.Fatal(err)
	}
	if !g.Materialise().Equal(dvm.Identity2()) {
		t.Error("H^2 should be I2")
	}
}

func TestMatrixExpRejectsNonSquare(t *testing.T) {
	m, _ := dvm.New(1, 2, []complex64{1, 0})
	if _, err := MatrixExp(m, 2); err == nil {
		t.Error("MatrixExp on non-square matrix should error")
	}
}

func TestMatrixVectorProductHadamardOnZero(t *testing.T) {
	g, err := MatrixVectorProduct(dvm.Hadamard2(), dvm.Zero())
	if err != nil {
		t.Fatal(err)
	}
	plus := dvm.Plus()
	if !g.Materialise().Equal(plus) {
		t.Errorf("H|0> = %+v, want %+v", g.Materialise(), plus)
	}
}

func TestMatrixVectorProductIdentityIsNoop(t *testing.T) {
	v := dvm.Plus()
	g, err := MatrixVectorProduct(dvm.Identity2(), v)
	if err != nil {
		t.Fatal(err)
	}
	if !g.Materialise().Equal(v) {
		t.Errorf("I*v = %+v, want %+v", g.Materialise(), v)
	}
}

func TestOuterProductShape(t *testing.T) {
	zero := dvm.Zero()
	g, err := OuterProduct(zero, zero)
	if err != nil {
		t.Fatal(err)
	}
	m := g.Materialise()
	if !m.Equal(dvm.Projector0()) {
		t.Errorf("|0><0| = %+v, want %+v", m, dvm.Projector0())
	}
}

func TestScalarProduct(t *testing.T) {
	m, _ := dvm.New(1, 2, []complex64{1, 2})
	g := ScalarProduct(m, 3)
	out := g.Materialise()
	want, _ := dvm.New(1, 2, []complex64{3, 6})
	if !out.Equal(want) {
		t.Errorf("3*m = %+v, want %+v", out, want)
	}
}

func TestMatSumRejectsMismatch(t *testing.T) {
	a, _ := dvm.New(1, 2, []complex64{1, 2})
	b, _ := dvm.New(2, 1, []complex64{1, 2})
	if _, err := MatSum(a, b); err == nil {
		t.Error("MatSum with mismatched shapes should error")
	}
}

func TestMatSumGraphGraph(t *testing.T) {
	a, _ := dvm.New(1, 2, []complex64{1, 2})
	b, _ := dvm.New(1, 2, []complex64{10, 20})
	c, _ := dvm.New(1, 2, []complex64{100, 200})
	g1, err := MatSum(a, b)
	if err != nil {
		t.Fatal(err)
	}
	g2, err := MatSum(b, c)
	if err != nil {
		t.Fatal(err)
	}
	g3, err := MatSumGraphGraph(g1, g2)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := dvm.New(1, 2, []complex64{121, 242})
	if !g3.Materialise().Equal(want) {
		t.Errorf("MatSumGraphGraph = %+v, want %+v", g3.Materialise(), want)
	}
	if g1.Get(0, 0) != 11 {
		t.Error("MatSumGraphGraph mutated g1")
	}
}

func TestTensorProductPauliXSelf(t *testing.T) {
	x := dvm.PauliX()
	g := TensorProduct(x, x)
	rows, cols := g.Dims()
	if rows != 4 || cols != 4 {
		t.Fatalf("Dims = (%d,%d), want (4,4)", rows, cols)
	}
	if g.Get(0, 3) != 1 {
		t.Errorf("(X⊗X)[0,3] = %v, want 1", g.Get(0, 3))
	}
}

func TestTensorPowerIdentityIsIdentity(t *testing.T) {
	g, err := TensorPower(dvm.Identity2(), 2)
	if err != nil {
		t.Fatal(err)
	}
	if !g.Materialise().Equal(dvm.Identity(4)) {
		t.Error("I2^(x)2 should be I4")
	}
}

func TestTensorPowerRejectsNonPositive(t *testing.T) {
	if _, err := TensorPower(dvm.Identity2(), 0); err == nil {
		t.Error("TensorPower(n=0) should error")
	}
}

func TestIsUnitaryIdentityAndHadamard(t *testing.T) {
	if !IsUnitary(dvm.Identity2()) {
		t.Error("I2 should be unitary")
	}
	if !IsUnitary(dvm.Hadamard2()) {
		t.Error("Hadamard should be unitary")
	}
	if !IsUnitary(dvm.PauliX()) {
		t.Error("Pauli-X should be unitary")
	}
}

func TestIsUnitaryRejectsNonSquare(t *testing.T) {
	m, _ := dvm.New(1, 2, []complex64{1, 0})
	if IsUnitary(m) {
		t.Error("non-square matrix should not be unitary")
	}
}

func TestIsUnitaryRejectsNonUnitary(t *testing.T) {
	m, _ := dvm.New(2, 2, []complex64{1, 1, 0, 1})
	if IsUnitary(m) {
		t.Error("non-unitary matrix incorrectly reported as unitary")
	}
}
