//go:build !amd64 || noasm

package c64

import "gonum.org/v1/gonum/cmplxs"

// Vendor backend: upcasts to complex128 and delegates to
// gonum.org/v1/gonum/cmplxs, which already implements the four-multiply
// identity (and a horizontal sum via cmplxs.Sum) for complex128 vectors.

// MulTo computes dst[i] = x[i] * y[i] element-wise and returns dst.
func MulTo(dst, x, y []complex64) []complex64 {
	mustEqualLen2(dst, x)
	mustEqualLen2(dst, y)
	xd, yd := widen(x), widen(y)
	cmplxs.MulTo(xd, xd, yd)
	narrowInto(dst, xd)
	return dst
}

// ScaleTo computes dst[i] = alpha * x[i] and returns dst.
func ScaleTo(dst []complex64, alpha complex64, x []complex64) []complex64 {
	mustEqualLen2(dst, x)
	xd := widen(x)
	cmplxs.Scale(complex128(alpha), xd)
	narrowInto(dst, xd)
	return dst
}

// Sum returns the horizontal sum of x's elements.
func Sum(x []complex64) complex64 {
	return complex64(cmplxs.Sum(widen(x)))
}

func widen(x []complex64) []complex128 {
	out := make([]complex128, len(x))
	for i, v := range x {
		out[i] = complex128(v)
	}
	return out
}

func narrowInto(dst []complex64, src []complex128) {
	for i, v := range src {
		dst[i] = complex64(v)
	}
}
