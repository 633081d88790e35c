// Package math3d is the transform math core: vectors, 4x4 matrices,
// quaternions, planes and view-frustum culling.
//
// Matrices are row-major and use the row-vector convention: a point p is
// transformed as p·M, rows 0-2 of an affine matrix hold the X/Y/Z basis
// axes and row 3 holds the translation. Angles taken by constructors are
// in degrees.
package math3d

const (
	// Pi as a float32.
	Pi = float32(3.1415926535897932)

	// Epsilon is added to lengths before taking a reciprocal so that
	// normalizing a zero vector yields zero instead of a fault.
	Epsilon = float32(1.192092896e-07)

	DegToRad = Pi / 180
	RadToDeg = 180 / Pi

	// SlerpDelta is how close to 1 the cosine between two quaternions may
	// get before Slerp falls back to a normalized lerp.
	SlerpDelta = float32(0.001)
)

func radians(degrees float32) float32 { return degrees * DegToRad }

func degrees(radians float32) float32 { return radians * RadToDeg }
