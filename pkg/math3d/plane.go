package math3d

import "fmt"

// Classification is the side of a plane (or frustum) a volume lies on.
type Classification int

const (
	Back         Classification = -1
	Intersection Classification = 0 // straddling
	Front        Classification = 1
)

func (c Classification) String() string {
	switch c {
	case Back:
		return "back"
	case Intersection:
		return "intersection"
	case Front:
		return "front"
	}
	return fmt.Sprintf("Classification(%d)", int(c))
}

// Plane holds a normal (X, Y, Z) and the distance along it from the
// origin, so that normal·p == Distance for every point p on the plane.
// Classification assumes the normal is unit length.
type Plane struct {
	X, Y, Z  float32
	Distance float32
}

func NewPlane(normal Vector3, distance float32) Plane {
	return Plane{normal.X, normal.Y, normal.Z, distance}
}

// PlaneFromPoints builds the plane through a, b and c. The normal is
// (b-a)×(c-b), so the winding of the points picks the side it faces.
func PlaneFromPoints(a, b, c Vector3) Plane {
	n := b.Sub(a).Cross(c.Sub(b)).Normalized()
	return NewPlane(n, n.Dot(a))
}

func (p Plane) Normal() Vector3 { return Vector3{p.X, p.Y, p.Z} }

func (p Plane) AbsNormal() Vector3 { return p.Normal().Abs() }

// Dot returns normal·v. With a unit normal this is the length of the
// projection of v onto the normal.
func (p Plane) Dot(v Vector3) float32 {
	return p.X*v.X + p.Y*v.Y + p.Z*v.Z
}

// SignedDistance is positive on the side the normal points to.
func (p Plane) SignedDistance(point Vector3) float32 {
	return p.Dot(point) - p.Distance
}

// Normalize rescales the plane in place so its normal is unit length.
func (p *Plane) Normalize() {
	r := 1 / (p.Normal().Length() + Epsilon)
	p.X *= r
	p.Y *= r
	p.Z *= r
	p.Distance *= r
}

// ClassifySphere reports which side of the plane the sphere is on.
func (p Plane) ClassifySphere(center Vector3, radius float32) Classification {
	d := p.SignedDistance(center)
	switch {
	case d < -radius:
		return Back
	case d > radius:
		return Front
	}
	return Intersection
}

// ClassifyAABB classifies a box given by its center and half extents. The
// extents are projected onto the absolute normal to get the radius of a
// conservative bounding sphere for the test.
func (p Plane) ClassifyAABB(center, extents Vector3) Classification {
	return p.ClassifySphere(center, p.AbsNormal().Dot(extents))
}
