package math3d

import "github.com/go-gl/mathgl/mgl32"

// Mgl returns m as an mgl32 matrix. The floats are copied in order: mgl32
// is column-major with column vectors, so the result applied to a column
// vector is the same transform as m applied to a row vector, and it can be
// uploaded to GL without transposing.
func (m Matrix4) Mgl() mgl32.Mat4 {
	var r mgl32.Mat4
	for i := 0; i < 4; i++ {
		copy(r[i*4:i*4+4], m[i][:])
	}
	return r
}

// Matrix4FromMgl is the inverse of Matrix4.Mgl.
func Matrix4FromMgl(g mgl32.Mat4) Matrix4 {
	var m Matrix4
	for i := 0; i < 4; i++ {
		copy(m[i][:], g[i*4:i*4+4])
	}
	return m
}

// Mgl returns q as an mgl32 quaternion.
func (q Quaternion) Mgl() mgl32.Quat {
	return mgl32.Quat{W: q.W, V: mgl32.Vec3{q.X, q.Y, q.Z}}
}

func QuaternionFromMgl(g mgl32.Quat) Quaternion {
	return Quaternion{g.V[0], g.V[1], g.V[2], g.W}
}
