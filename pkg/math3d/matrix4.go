package math3d

import "github.com/chewxy/math32"

// Matrix4 is a 4x4 matrix addressed as m[row][col]. Nothing about it is
// enforced: it may be singular or carry scale and shear. Which properties
// hold depends on the constructor that produced it.
type Matrix4 [4][4]float32

// Identity returns the identity matrix.
func Identity() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// NewMatrix4 builds a matrix from its sixteen entries in row order.
func NewMatrix4(
	n00, n01, n02, n03,
	n10, n11, n12, n13,
	n20, n21, n22, n23,
	n30, n31, n32, n33 float32,
) Matrix4 {
	return Matrix4{
		{n00, n01, n02, n03},
		{n10, n11, n12, n13},
		{n20, n21, n22, n23},
		{n30, n31, n32, n33},
	}
}

// NewMatrix4FromRows builds a matrix whose rows are a, b, c and d.
func NewMatrix4FromRows(a, b, c, d Vector4) Matrix4 {
	var m Matrix4
	m.SetRow(0, a)
	m.SetRow(1, b)
	m.SetRow(2, c)
	m.SetRow(3, d)
	return m
}

// Row returns a copy of row i. Rows 0-2 of an affine transform are its
// X/Y/Z axes and row 3 its translation.
func (m Matrix4) Row(i int) Vector4 {
	return Vector4{m[i][0], m[i][1], m[i][2], m[i][3]}
}

func (m *Matrix4) SetRow(i int, v Vector4) {
	m[i] = [4]float32{v.X, v.Y, v.Z, v.W}
}

// Right, Up, Forward and Position read the basis rows of an affine
// transform.
func (m Matrix4) Right() Vector3    { return m.Row(0).ToVector3() }
func (m Matrix4) Up() Vector3       { return m.Row(1).ToVector3() }
func (m Matrix4) Forward() Vector3  { return m.Row(2).ToVector3() }
func (m Matrix4) Position() Vector3 { return m.Row(3).ToVector3() }

func (m Matrix4) Transpose() Matrix4 {
	return Matrix4{
		{m[0][0], m[1][0], m[2][0], m[3][0]},
		{m[0][1], m[1][1], m[2][1], m[3][1]},
		{m[0][2], m[1][2], m[2][2], m[3][2]},
		{m[0][3], m[1][3], m[2][3], m[3][3]},
	}
}

// TransformPoint returns p·m with w = 1, without a perspective divide.
func (m Matrix4) TransformPoint(p Vector3) Vector3 {
	return m.MulVector4(Point(p)).ToVector3()
}

// TransformDirection returns d·m with w = 0, so translation is ignored.
func (m Matrix4) TransformDirection(d Vector3) Vector3 {
	return m.MulVector4(Direction(d)).ToVector3()
}

// RotationX returns a rotation of degrees about the X axis. Rotations
// compose left to right: RotationX(a).Mul(RotationY(b)) applies a first.
func RotationX(degrees float32) Matrix4 {
	s, c := math32.Sincos(radians(degrees))
	return Matrix4{
		{1, 0, 0, 0},
		{0, c, s, 0},
		{0, -s, c, 0},
		{0, 0, 0, 1},
	}
}

// RotationY returns a rotation of degrees about the Y axis.
func RotationY(degrees float32) Matrix4 {
	s, c := math32.Sincos(radians(degrees))
	return Matrix4{
		{c, 0, -s, 0},
		{0, 1, 0, 0},
		{s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

// RotationZ returns a rotation of degrees about the Z axis.
func RotationZ(degrees float32) Matrix4 {
	s, c := math32.Sincos(radians(degrees))
	return Matrix4{
		{c, s, 0, 0},
		{-s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

func Translation(v Vector3) Matrix4 {
	m := Identity()
	m.SetTranslation(v)
	return m
}

func Scaling(v Vector3) Matrix4 {
	return Matrix4{
		{v.X, 0, 0, 0},
		{0, v.Y, 0, 0},
		{0, 0, v.Z, 0},
		{0, 0, 0, 1},
	}
}

// LookAt returns the world transform of an object at eye whose Z axis
// points at target. The result is not inverted; see LookAtLH for a view
// matrix.
func LookAt(eye, target, up Vector3) Matrix4 {
	z := target.Sub(eye).Normalized()
	x := up.Cross(z).Normalized()
	y := z.Cross(x)

	return NewMatrix4FromRows(
		Direction(x),
		Direction(y),
		Direction(z),
		Point(eye),
	)
}

// LookAtLH returns a left-handed view matrix, the inverse of
// LookAt(eye, target, up).
func LookAtLH(eye, target, up Vector3) Matrix4 {
	z := target.Sub(eye).Normalized()
	x := up.Cross(z).Normalized()
	y := z.Cross(x)

	return Matrix4{
		{x.X, y.X, z.X, 0},
		{x.Y, y.Y, z.Y, 0},
		{x.Z, y.Z, z.Z, 0},
		{-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1},
	}
}

// OrthoNormalize rebuilds the basis of m around its Z axis using world up
// (0,1,0), keeping the translation row.
func OrthoNormalize(m Matrix4) Matrix4 {
	z := m.Forward().Normalized()
	x := Vector3{0, 1, 0}.Cross(z).Normalized()
	y := z.Cross(x).Normalized()

	return NewMatrix4FromRows(Direction(x), Direction(y), Direction(z), m.Row(3))
}

// TurnTo rotates m a step toward looking at target. The step is
// proportional to deltaTime*speed and to how far off-axis the target is,
// so repeated calls ease the Z axis onto the target instead of snapping.
func TurnTo(deltaTime, speed float32, target Vector3, m Matrix4) Matrix4 {
	toTarget := target.Sub(m.Position()).Normalized()

	yaw := toTarget.Dot(m.Right())
	pitch := toTarget.Dot(m.Up())

	rotX := RotationX(degrees(-pitch) * deltaTime * speed)
	rotY := RotationY(degrees(yaw) * deltaTime * speed)

	return OrthoNormalize(rotY.Mul(rotX).Mul(m))
}

func (m *Matrix4) SetIdentity() { *m = Identity() }

// SetTranslation overwrites the translation row.
func (m *Matrix4) SetTranslation(v Vector3) {
	m[3][0] = v.X
	m[3][1] = v.Y
	m[3][2] = v.Z
}

// Translate offsets the translation row by v.
func (m *Matrix4) Translate(v Vector3) {
	m[3][0] += v.X
	m[3][1] += v.Y
	m[3][2] += v.Z
}

// Scale scales the X, Y and Z basis rows by the components of v.
func (m *Matrix4) Scale(v Vector3) {
	for c := 0; c < 4; c++ {
		m[0][c] *= v.X
		m[1][c] *= v.Y
		m[2][c] *= v.Z
	}
}

// LocalScale returns the diagonal of the upper 3x3. It is only the scale
// of an unrotated transform.
func (m Matrix4) LocalScale() Vector3 {
	return Vector3{m[0][0], m[1][1], m[2][2]}
}

// EulerAngles returns (x, y, z) in radians such that
// RotationX(x)*RotationY(y)*RotationZ(z) reproduces the rotation of m,
// with y in [-Pi/2, Pi/2].
func (m Matrix4) EulerAngles() Vector3 {
	return Vector3{
		X: math32.Atan2(m[1][2], m[2][2]),
		Y: math32.Atan2(-m[0][2], math32.Sqrt(m[1][2]*m[1][2]+m[2][2]*m[2][2])),
		Z: math32.Atan2(m[0][1], m[0][0]),
	}
}

// ToQuaternion extracts the rotation of the upper 3x3 as a quaternion.
func (m Matrix4) ToQuaternion() Quaternion {
	return QuaternionFromMatrix4(m)
}
