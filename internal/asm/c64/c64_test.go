package c64

import "testing"

func naiveMul(x, y []complex64) []complex64 {
	out := make([]complex64, len(x))
	for i := range x {
		out[i] = x[i] * y[i]
	}
	return out
}

func approxEqual(a, b []complex64, tol float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		dr := real(a[i]) - real(b[i])
		di := imag(a[i]) - imag(b[i])
		if dr < 0 {
			dr = -dr
		}
		if di < 0 {
			di = -di
		}
		if dr > tol || di > tol {
			return false
		}
	}
	return true
}

func sample(n int, seed float32) []complex64 {
	out := make([]complex64, n)
	for i := range out {
		out[i] = complex(seed*float32(i+1)-0.5, seed-float32(i)*0.1)
	}
	return out
}

func TestMulTo(t *testing.T) {
	for _, n := range []int{0, 1, 2, 5, 16, 17} {
		x, y := sample(n, 0.3), sample(n, -0.6)
		dst := make([]complex64, n)
		got := MulTo(dst, x, y)
		want := naiveMul(x, y)
		if !approxEqual(got, want, 1e-4) {
			t.Errorf("MulTo(n=%d) = %v, want %v", n, got, want)
		}
	}
}

func TestScaleTo(t *testing.T) {
	x := sample(4, 1.0)
	dst := make([]complex64, len(x))
	alpha := complex64(complex(2, -1))
	got := ScaleTo(dst, alpha, x)
	for i, v := range x {
		want := alpha * v
		if !approxEqual([]complex64{got[i]}, []complex64{want}, 1e-4) {
			t.Errorf("ScaleTo[%d] = %v, want %v", i, got[i], want)
		}
	}
}

func TestSum(t *testing.T) {
	x := sample(5, 0.5)
	var want complex64
	for _, v := range x {
		want += v
	}
	got := Sum(x)
	if !approxEqual([]complex64{got}, []complex64{want}, 1e-4) {
		t.Errorf("Sum = %v, want %v", got, want)
	}
}

func TestMulToPanicsOnMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on length mismatch")
		}
	}()
	MulTo(make([]complex64, 2), make([]complex64, 3), make([]complex64, 2))
}
