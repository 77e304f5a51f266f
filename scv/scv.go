// Package scv implements the split complex vector: a pair of equal-length
// real slices holding the real and imaginary parts of a complex vector.
// The real-lane kernels in internal/asm/f32 consume this layout's Re and Im
// halves so real and imaginary lanes can be processed independently; the
// complex kernels in internal/asm/c64 do not take a Vector and operate on
// the interleaved []complex64 form returned by Complex.
package scv

import (
	"fmt"

	"github.com/LorenzoFritzsch/hilbert-qusim/qerr"
)

// Vector is a split complex vector: Re[i] and Im[i] together hold the i-th
// complex element. The two slices always have equal length.
type Vector struct {
	Re []float32
	Im []float32
}

// New builds a Vector from separate real and imaginary slices. It returns a
// *qerr.ShapeError if the slices have different lengths.
func New(re, im []float32) (Vector, error) {
	if len(re) != len(im) {
		return Vector{}, qerr.NewShapeError("scv.New",
			fmt.Sprintf("re=%d im=%d", len(re), len(im)), "equal-length re/im")
	}
	return Vector{Re: re, Im: im}, nil
}

// FromComplex builds a Vector from a sequence of complex values.
func FromComplex(cs []complex64) Vector {
	re := make([]float32, len(cs))
	im := make([]float32, len(cs))
	for i, c := range cs {
		re[i] = real(c)
		im[i] = imag(c)
	}
	return Vector{Re: re, Im: im}
}

// Len returns the number of complex elements held by v.
func (v Vector) Len() int {
	return len(v.Re)
}

// At returns the i-th complex element.
func (v Vector) At(i int) complex64 {
	return complex(v.Re[i], v.Im[i])
}

// Push appends c to v, growing the real and imaginary slices together so
// that they never become unequal length even under a failed append.
func (v *Vector) Push(c complex64) {
	re := append(v.Re, real(c))
	im := append(v.Im, imag(c))
	v.Re, v.Im = re, im
}

// Complex returns v's elements as a plain complex64 slice.
func (v Vector) Complex() []complex64 {
	out := make([]complex64, v.Len())
	for i := range out {
		out[i] = v.At(i)
	}
	return out
}

// Conjugate returns a new Vector with the imaginary part negated. The
// returned Vector never aliases v's storage, so v may continue to be read
// concurrently by other goroutines (e.g. other row workers during
// materialisation) while the conjugate is in use.
func (v Vector) Conjugate() Vector {
	re := make([]float32, v.Len())
	im := make([]float32, v.Len())
	copy(re, v.Re)
	for i, x := range v.Im {
		im[i] = -x
	}
	return Vector{Re: re, Im: im}
}
