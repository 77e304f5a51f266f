// Package c64 provides the complex-aware wrappers of the SIMD kernel: MulTo
// (element-wise complex multiply via the four-multiply / one-sub / one-add
// identity), ScaleTo (complex scalar times complex vector, same identity)
// and Sum (horizontal sum of both real and imaginary halves). Like package
// f32, two backends implement the contract, selected by build tag.
package c64

func mustEqualLen2(a, b []complex64) {
	if len(a) != len(b) {
		panic("c64: length mismatch")
	}
}
