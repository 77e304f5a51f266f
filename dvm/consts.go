package dvm

import "math"

var invSqrt2 = float32(1 / math.Sqrt2)

// Zero returns the computational-basis ket |0> as a 1x2 row vector.
func Zero() Matrix {
	m, _ := New(1, 2, []complex64{1, 0})
	return m
}

// One returns the computational-basis ket |1> as a 1x2 row vector.
func One() Matrix {
	m, _ := New(1, 2, []complex64{0, 1})
	return m
}

// Plus returns the |+> = (|0>+|1>)/sqrt(2) state as a 1x2 row vector.
func Plus() Matrix {
	m, _ := New(1, 2, []complex64{complex(invSqrt2, 0), complex(invSqrt2, 0)})
	return m
}

// Minus returns the |-> = (|0>-|1>)/sqrt(2) state as a 1x2 row vector.
func Minus() Matrix {
	m, _ := New(1, 2, []complex64{complex(invSqrt2, 0), complex(-invSqrt2, 0)})
	return m
}

// Identity returns the n x n identity matrix. It panics if n <= 0.
func Identity(n int) Matrix {
	if n <= 0 {
		panic("dvm: identity size must be positive")
	}
	data := make([]complex64, n*n)
	for i := 0; i < n; i++ {
		data[i*n+i] = 1
	}
	m, _ := New(n, n, data)
	return m
}

// Identity2 returns the 2x2 identity matrix I2.
func Identity2() Matrix {
	return Identity(2)
}

// Hadamard2 returns the single-qubit Hadamard gate.
func Hadamard2() Matrix {
	c := complex(invSqrt2, 0)
	m, _ := New(2, 2, []complex64{c, c, c, -c})
	return m
}

// PauliX returns the Pauli-X (bit-flip) gate.
func PauliX() Matrix {
	m, _ := New(2, 2, []complex64{0, 1, 1, 0})
	return m
}

// PauliY returns the Pauli-Y gate.
func PauliY() Matrix {
	m, _ := New(2, 2, []complex64{0, complex(0, -1), complex(0, 1), 0})
	return m
}

// PauliZ returns the Pauli-Z (phase-flip) gate.
func PauliZ() Matrix {
	m, _ := New(2, 2, []complex64{1, 0, 0, -1})
	return m
}

// Projector0 returns the outer projector P0 = |0><0|.
func Projector0() Matrix {
	m, _ := New(2, 2, []complex64{1, 0, 0, 0})
	return m
}

// Projector1 returns the outer projector P1 = |1><1|.
func Projector1() Matrix {
	m, _ := New(2, 2, []complex64{0, 0, 0, 1})
	return m
}
