package math3d

// Ray is a half-line from Origin along Direction.
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// DefaultRay starts at the origin and points down +Z.
func DefaultRay() Ray {
	return Ray{Direction: Vector3{0, 0, 1}}
}

// NewRay normalizes direction unless the caller says it already is.
func NewRay(origin, direction Vector3, normalized bool) Ray {
	if !normalized {
		direction.Normalize()
	}
	return Ray{Origin: origin, Direction: direction}
}

// PointAt returns the point at distance t along the ray.
func (r Ray) PointAt(t float32) Vector3 {
	return r.Origin.Add(r.Direction.Scale(t))
}
