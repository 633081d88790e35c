package math3d

import "github.com/chewxy/math32"

// Quaternion is X, Y, Z for the vector part and W for the scalar part.
// A unit quaternion rotates by 2·acos(W) about (X, Y, Z)/sin(angle/2).
// Nothing normalizes automatically; only Normalize and the constructors
// documented as such return unit length.
type Quaternion struct {
	X, Y, Z, W float32
}

func NewQuaternion(x, y, z, w float32) Quaternion {
	return Quaternion{X: x, Y: y, Z: z, W: w}
}

// IdentityQuaternion is the rotation by zero.
func IdentityQuaternion() Quaternion {
	return Quaternion{0, 0, 0, 1}
}

// QuaternionFromAxisAngle returns the rotation of degrees about axis. The
// result is unit length when axis is.
func QuaternionFromAxisAngle(axis Vector3, degrees float32) Quaternion {
	s, c := math32.Sincos(radians(degrees * 0.5))
	return Quaternion{axis.X * s, axis.Y * s, axis.Z * s, c}
}

// QuaternionFromEuler returns the rotation that applies roll about Z,
// then pitch about X, then yaw about Y. All angles are in degrees. It is
// the quaternion of RotationX(pitch)*RotationY(yaw)*RotationZ(roll).
func QuaternionFromEuler(pitch, yaw, roll float32) Quaternion {
	qx := QuaternionFromAxisAngle(Vector3{1, 0, 0}, pitch)
	qy := QuaternionFromAxisAngle(Vector3{0, 1, 0}, yaw)
	qz := QuaternionFromAxisAngle(Vector3{0, 0, 1}, roll)
	return qz.Mul(qy).Mul(qx)
}

// next is the cyclic successor of each axis index.
var next = [3]int{1, 2, 0}

// QuaternionFromMatrix4 extracts the rotation of the upper 3x3 of m.
//
// With a positive trace the direct formula is used. Otherwise the largest
// diagonal entry picks the pivot axis so the square root is taken of the
// largest available quantity. If that root is still exactly zero its
// reciprocal is replaced by zero, and the other three components come out
// as zero.
func QuaternionFromMatrix4(m Matrix4) Quaternion {
	trace := m[0][0] + m[1][1] + m[2][2]

	if trace > 0 {
		s := math32.Sqrt(trace + 1)
		t := 0.5 / s
		return Quaternion{
			X: (m[1][2] - m[2][1]) * t,
			Y: (m[2][0] - m[0][2]) * t,
			Z: (m[0][1] - m[1][0]) * t,
			W: s * 0.5,
		}
	}

	i := 0
	if m[1][1] > m[0][0] {
		i = 1
	}
	if m[2][2] > m[i][i] {
		i = 2
	}
	j := next[i]
	k := next[j]

	var q [4]float32
	s := math32.Sqrt(m[i][i] - (m[j][j] + m[k][k]) + 1)
	q[i] = s * 0.5

	t := halfReciprocal(s)
	q[3] = (m[j][k] - m[k][j]) * t
	q[j] = (m[i][j] + m[j][i]) * t
	q[k] = (m[i][k] + m[k][i]) * t

	return Quaternion{q[0], q[1], q[2], q[3]}
}

// halfReciprocal returns 0.5/s, or s itself when s is zero.
func halfReciprocal(s float32) float32 {
	if s == 0 {
		return s
	}
	return 0.5 / s
}

func (q Quaternion) Add(o Quaternion) Quaternion {
	return Quaternion{q.X + o.X, q.Y + o.Y, q.Z + o.Z, q.W + o.W}
}

func (q Quaternion) Sub(o Quaternion) Quaternion {
	return Quaternion{q.X - o.X, q.Y - o.Y, q.Z - o.Z, q.W - o.W}
}

func (q Quaternion) Neg() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, -q.W}
}

func (q Quaternion) Scale(s float32) Quaternion {
	return Quaternion{q.X * s, q.Y * s, q.Z * s, q.W * s}
}

// Mul returns the Hamilton product q·o, the rotation o followed by q.
// It uses eight multiplications instead of sixteen.
func (q Quaternion) Mul(o Quaternion) Quaternion {
	a := (q.W + q.X) * (o.W + o.X)
	b := (q.Z - q.Y) * (o.Y - o.Z)
	c := (q.W - q.X) * (o.Y + o.Z)
	d := (q.Y + q.Z) * (o.W - o.X)
	e := (q.X + q.Z) * (o.X + o.Y)
	f := (q.X - q.Z) * (o.X - o.Y)
	g := (q.W + q.Y) * (o.W - o.Z)
	h := (q.W - q.Y) * (o.W + o.Z)

	return Quaternion{
		X: a - (e+f+g+h)*0.5,
		Y: c + (e-f+g-h)*0.5,
		Z: d + (e-f-g+h)*0.5,
		W: b + (-e-f+g+h)*0.5,
	}
}

// MulAssign sets q to q·o using the direct sixteen-multiply form.
func (q *Quaternion) MulAssign(o Quaternion) {
	*q = Quaternion{
		X: q.W*o.X + o.W*q.X + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y + o.W*q.Y + q.Z*o.X - q.X*o.Z,
		Z: q.W*o.Z + o.W*q.Z + q.X*o.Y - q.Y*o.X,
		W: q.W*o.W - (q.X*o.X + q.Y*o.Y + q.Z*o.Z),
	}
}

func (q Quaternion) Dot(o Quaternion) float32 {
	return q.X*o.X + q.Y*o.Y + q.Z*o.Z + q.W*o.W
}

func (q *Quaternion) SetIdentity() { *q = IdentityQuaternion() }

func (q Quaternion) Length() float32        { return math32.Sqrt(q.LengthSquared()) }
func (q Quaternion) LengthSquared() float32 { return q.Dot(q) }

// Normalized returns q scaled by 1/(|q|+Epsilon). A zero quaternion
// stays zero.
func (q Quaternion) Normalized() Quaternion {
	return q.Scale(1 / (q.Length() + Epsilon))
}

// Normalize normalizes q in place and returns the result.
func (q *Quaternion) Normalize() Quaternion {
	*q = q.Normalized()
	return *q
}

// Conjugate negates the vector part. For a unit quaternion it equals the
// inverse.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, q.W}
}

// Inverse returns conjugate/|q|². The zero quaternion has none.
func (q Quaternion) Inverse() Quaternion {
	return q.Conjugate().Scale(1 / q.LengthSquared())
}

// RotateVector returns q·(v,0)·q*. It is only a rotation when q is unit
// length.
func (q Quaternion) RotateVector(v Vector3) Vector3 {
	return q.sandwich(v, q.Conjugate())
}

// RotateVectorSlow is RotateVector with the true inverse in place of the
// conjugate, which makes it correct for any non-zero q.
func (q Quaternion) RotateVectorSlow(v Vector3) Vector3 {
	return q.sandwich(v, q.Inverse())
}

func (q Quaternion) sandwich(v Vector3, inv Quaternion) Vector3 {
	r := q.Mul(Quaternion{v.X, v.Y, v.Z, 0}).Mul(inv)
	return Vector3{r.X, r.Y, r.Z}
}

// ToMatrix4 returns the rotation matrix of a unit q, laid out so that
// v·q.ToMatrix4() equals q.RotateVector(v).
func (q Quaternion) ToMatrix4() Matrix4 {
	x2, y2, z2 := q.X+q.X, q.Y+q.Y, q.Z+q.Z

	xx, xy, xz := q.X*x2, q.X*y2, q.X*z2
	yy, yz := q.Y*y2, q.Y*z2
	zz := q.Z * z2
	wx, wy, wz := q.W*x2, q.W*y2, q.W*z2

	return Matrix4{
		{1 - (yy + zz), xy + wz, xz - wy, 0},
		{xy - wz, 1 - (xx + zz), yz + wx, 0},
		{xz + wy, yz - wx, 1 - (xx + yy), 0},
		{0, 0, 0, 1},
	}
}

// Slerp interpolates along the shorter arc from q to target. When the two
// are nearly parallel it falls back to Lerp, since sin(theta) is too close
// to zero to divide by.
func (q Quaternion) Slerp(target Quaternion, t float32) Quaternion {
	cos := q.Dot(target)
	if cos < 0 {
		cos = -cos
		target = target.Neg()
	}

	if cos > 1-SlerpDelta {
		return q.Lerp(target, t)
	}

	theta := math32.Acos(cos)
	sinTheta := math32.Sin(theta)
	s0 := math32.Sin((1-t)*theta) / sinTheta
	s1 := math32.Sin(t*theta) / sinTheta

	return q.Scale(s0).Add(target.Scale(s1))
}

// Lerp blends q toward target component-wise and normalizes the result.
func (q Quaternion) Lerp(target Quaternion, t float32) Quaternion {
	return q.Scale(1 - t).Add(target.Scale(t)).Normalized()
}
