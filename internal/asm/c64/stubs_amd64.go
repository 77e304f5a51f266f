//go:build amd64 && !noasm

package c64

// Hand-written backend. Complex multiplication is expanded into the
// four-multiply / one-sub / one-add identity on the split real/imaginary
// lanes rather than using Go's built-in complex64 multiply, matching the
// real-SIMD-kernel shape described in spec: (a+bi)(c+di) = (ac-bd)+(ad+bc)i.

// MulTo computes dst[i] = x[i] * y[i] element-wise and returns dst.
func MulTo(dst, x, y []complex64) []complex64 {
	mustEqualLen2(dst, x)
	mustEqualLen2(dst, y)
	for i := range x {
		a, b := real(x[i]), imag(x[i])
		c, d := real(y[i]), imag(y[i])
		dst[i] = complex(a*c-b*d, a*d+b*c)
	}
	return dst
}

// ScaleTo computes dst[i] = alpha * x[i] and returns dst.
func ScaleTo(dst []complex64, alpha complex64, x []complex64) []complex64 {
	mustEqualLen2(dst, x)
	a, b := real(alpha), imag(alpha)
	for i := range x {
		c, d := real(x[i]), imag(x[i])
		dst[i] = complex(a*c-b*d, a*d+b*c)
	}
	return dst
}

// Sum returns the horizontal sum of x's elements, summing the real and
// imaginary lanes independently before recombining.
func Sum(x []complex64) complex64 {
	var re, im float32
	for _, v := range x {
		re += real(v)
		im += imag(v)
	}
	return complex(re, im)
}
