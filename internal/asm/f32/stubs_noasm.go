//go:build !amd64 || noasm

package f32

import "gonum.org/v1/gonum/floats"

// This file is the vendor backend: it upcasts to float64 and delegates the
// arithmetic to gonum.org/v1/gonum/floats, which is the correctness-focused
// path taken on architectures (or builds) for which no hand-rolled unrolled
// loop has been written. It trades the extra cast for reuse of a
// well-exercised vector library.

// AddTo computes dst[i] = x[i] + y[i] for all i and returns dst.
func AddTo(dst, x, y []float32) []float32 {
	mustEqualLen3(dst, x, y)
	xd, yd := widen(x), widen(y)
	floats.AddTo(xd, xd, yd)
	narrowInto(dst, xd)
	return dst
}

// SubTo computes dst[i] = x[i] - y[i] for all i and returns dst.
func SubTo(dst, x, y []float32) []float32 {
	mustEqualLen3(dst, x, y)
	xd, yd := widen(x), widen(y)
	floats.SubTo(xd, xd, yd)
	narrowInto(dst, xd)
	return dst
}

// MulTo computes dst[i] = x[i] * y[i] for all i and returns dst.
func MulTo(dst, x, y []float32) []float32 {
	mustEqualLen3(dst, x, y)
	xd, yd := widen(x), widen(y)
	floats.MulTo(xd, xd, yd)
	narrowInto(dst, xd)
	return dst
}

// ScaleTo computes dst[i] = alpha * x[i] for all i and returns dst.
func ScaleTo(dst []float32, alpha float32, x []float32) []float32 {
	mustEqualLen2(dst, x)
	xd := widen(x)
	floats.Scale(float64(alpha), xd)
	narrowInto(dst, xd)
	return dst
}

// Sum returns the horizontal sum of x's elements.
func Sum(x []float32) float32 {
	return float32(floats.Sum(widen(x)))
}

func widen(x []float32) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = float64(v)
	}
	return out
}

func narrowInto(dst []float32, src []float64) {
	for i, v := range src {
		dst[i] = float32(v)
	}
}
