package canvas

import "math"

// Matrix is a 2D affine transform stored as a 2x3 matrix in row-major
// order:
//
//	| A  B  C |
//	| D  E  F |
//
// mapping (x, y) to (A*x + B*y + C, D*x + E*y + F).
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

func translation(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

func scaling(x, y float64) Matrix {
	return Matrix{A: x, E: y}
}

// Multiply returns m * other. The combined transform applies other first,
// then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// Apply transforms a point.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.B*y + m.C, m.D*x + m.E*y + m.F
}

// scale returns the mean absolute scale factor, used to convert user-space
// stroke widths and dash lengths to device pixels.
func (m Matrix) scale() float64 {
	sx := math.Hypot(m.A, m.D)
	sy := math.Hypot(m.B, m.E)
	return (sx + sy) / 2
}
