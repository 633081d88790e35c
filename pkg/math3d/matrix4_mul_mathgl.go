//go:build mathgl

package math3d

import "github.com/go-gl/mathgl/mgl32"

// Built with -tags mathgl, products go through mgl32. Its column-major
// storage reads our row-major floats as the transpose, so m·o becomes
// oᵀ·mᵀ on the mgl32 side and v·m becomes mᵀ·v.

func (m Matrix4) Mul(o Matrix4) Matrix4 {
	return Matrix4FromMgl(o.Mgl().Mul4(m.Mgl()))
}

func (m Matrix4) MulVector4(v Vector4) Vector4 {
	r := m.Mgl().Mul4x1(mgl32.Vec4{v.X, v.Y, v.Z, v.W})
	return Vector4{r[0], r[1], r[2], r[3]}
}
