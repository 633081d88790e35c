package math3d

import "github.com/chewxy/math32"

// Vector4 is a homogeneous row vector. W is 1 for points and 0 for
// directions.
type Vector4 struct {
	X, Y, Z, W float32
}

func NewVector4(x, y, z, w float32) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// Point returns p as a homogeneous point (w = 1).
func Point(p Vector3) Vector4 { return p.ToVector4(1) }

// Direction returns d as a homogeneous direction (w = 0).
func Direction(d Vector3) Vector4 { return d.ToVector4(0) }

func (v Vector4) Add(o Vector4) Vector4 { return Vector4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W} }
func (v Vector4) Sub(o Vector4) Vector4 { return Vector4{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W} }
func (v Vector4) Neg() Vector4          { return Vector4{-v.X, -v.Y, -v.Z, -v.W} }

func (v Vector4) Scale(s float32) Vector4 {
	return Vector4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

func (v Vector4) Div(s float32) Vector4 {
	r := 1 / s
	return Vector4{v.X * r, v.Y * r, v.Z * r, v.W * r}
}

func (v Vector4) MulComponents(o Vector4) Vector4 {
	return Vector4{v.X * o.X, v.Y * o.Y, v.Z * o.Z, v.W * o.W}
}

func (v Vector4) DivComponents(o Vector4) Vector4 {
	return Vector4{v.X / o.X, v.Y / o.Y, v.Z / o.Z, v.W / o.W}
}

func (v Vector4) Dot(o Vector4) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W
}

func (v Vector4) Length() float32        { return math32.Sqrt(v.LengthSquared()) }
func (v Vector4) LengthSquared() float32 { return v.Dot(v) }

func (v Vector4) Lerp(o Vector4, t float32) Vector4 {
	return v.Add(o.Sub(v).Scale(t))
}

// Normalize scales v in place by 1/(|v|+Epsilon), w included.
func (v *Vector4) Normalize() {
	*v = v.Scale(1 / (v.Length() + Epsilon))
}

// ToVector3 drops w.
func (v Vector4) ToVector3() Vector3 { return Vector3{v.X, v.Y, v.Z} }
