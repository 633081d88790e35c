package math3d

import "github.com/chewxy/math32"

// Vector3 is a row vector of three components.
type Vector3 struct {
	X, Y, Z float32
}

// NewVector3 creates a new 3D vector with the given components
func NewVector3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Splat3 returns a vector with every component set to s.
func Splat3(s float32) Vector3 { return Vector3{s, s, s} }

func (v Vector3) Add(o Vector3) Vector3 { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vector3) Sub(o Vector3) Vector3 { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vector3) Neg() Vector3          { return Vector3{-v.X, -v.Y, -v.Z} }
func (v Vector3) Scale(s float32) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Div divides every component by s. A zero s is the caller's problem.
func (v Vector3) Div(s float32) Vector3 {
	r := 1 / s
	return Vector3{v.X * r, v.Y * r, v.Z * r}
}

// MulComponents returns the component-wise product.
func (v Vector3) MulComponents(o Vector3) Vector3 {
	return Vector3{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

// DivComponents returns the component-wise quotient.
func (v Vector3) DivComponents(o Vector3) Vector3 {
	return Vector3{v.X / o.X, v.Y / o.Y, v.Z / o.Z}
}

func (v Vector3) Dot(o Vector3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vector3) Length() float32        { return math32.Sqrt(v.LengthSquared()) }
func (v Vector3) LengthSquared() float32 { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }

// Lerp moves from v toward o by ratio t.
func (v Vector3) Lerp(o Vector3, t float32) Vector3 {
	return v.Add(o.Sub(v).Scale(t))
}

// Abs returns the component-wise absolute value.
func (v Vector3) Abs() Vector3 {
	return Vector3{math32.Abs(v.X), math32.Abs(v.Y), math32.Abs(v.Z)}
}

// Normalized returns v scaled by 1/(|v|+Epsilon). The zero vector stays zero.
func (v Vector3) Normalized() Vector3 {
	return v.Scale(1 / (v.Length() + Epsilon))
}

// Normalize normalizes v in place and returns the result.
func (v *Vector3) Normalize() Vector3 {
	*v = v.Normalized()
	return *v
}

// ToVector4 extends v with the homogeneous coordinate w.
func (v Vector3) ToVector4(w float32) Vector4 {
	return Vector4{v.X, v.Y, v.Z, w}
}
