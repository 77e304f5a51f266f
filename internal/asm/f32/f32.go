// Package f32 provides the real-valued primitives of the SIMD kernel: AddTo,
// SubTo, MulTo, ScaleTo and Sum over []float32. Two backends implement this
// same contract: stubs_amd64.go (a hand-written, manually unrolled
// "intrinsics" path) and stubs_noasm.go (a vendor-library path built on
// gonum.org/v1/gonum/floats). Both must agree on every input modulo
// floating-point reordering; build tags select between them, never a
// runtime switch.
package f32

func mustEqualLen2(a, b []float32) {
	if len(a) != len(b) {
		panic("f32: length mismatch")
	}
}

func mustEqualLen3(a, b, c []float32) {
	if len(a) != len(b) || len(b) != len(c) {
		panic("f32: length mismatch")
	}
}
