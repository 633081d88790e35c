// Package scene holds the spinning cube grid shared by the window and the
// snapshot renderer, and decides which cubes a camera can see.
package scene

import (
	"github.com/chewxy/math32"

	"xform3d/pkg/math3d"
)

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max math3d.Vector3
}

func (b Box) Center() math3d.Vector3  { return b.Min.Add(b.Max).Scale(0.5) }
func (b Box) Extents() math3d.Vector3 { return b.Max.Sub(b.Min).Scale(0.5) }

// Contains reports whether p lies inside b or on its faces.
func (b Box) Contains(p math3d.Vector3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Object is a cube of edge Size at Center that spins about Axis at Rate
// degrees per second.
type Object struct {
	Center      math3d.Vector3
	Size        float32
	Axis        math3d.Vector3
	Rate        float32
	Orientation math3d.Quaternion
}

// Bounds encloses the cube in every orientation, so it never needs
// recomputing as the cube spins.
func (o Object) Bounds() Box {
	r := math3d.Splat3(o.Size * math32.Sqrt(3) * 0.5)
	return Box{Min: o.Center.Sub(r), Max: o.Center.Add(r)}
}

// Model maps the unit cube centered at the origin onto the object.
func (o Object) Model() math3d.Matrix4 {
	return math3d.Scaling(math3d.Splat3(o.Size)).
		Mul(o.Orientation.ToMatrix4()).
		Mul(math3d.Translation(o.Center))
}

// Spin advances the orientation by dt seconds.
func (o *Object) Spin(dt float32) {
	o.Orientation.MulAssign(math3d.QuaternionFromAxisAngle(o.Axis, o.Rate*dt))
	// Renormalize so rounding does not accumulate into a scale.
	o.Orientation.Normalize()
}

type Scene struct {
	Objects []Object
}

// Grid builds an n×n×n lattice of cubes of edge size, spacing apart and
// centered on the origin.
func Grid(n int, spacing, size float32) *Scene {
	s := &Scene{Objects: make([]Object, 0, n*n*n)}
	offset := float32(n-1) * 0.5
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				s.Objects = append(s.Objects, Object{
					Center: math3d.Vector3{
						X: (float32(i) - offset) * spacing,
						Y: (float32(j) - offset) * spacing,
						Z: (float32(k) - offset) * spacing,
					},
					Size:        size,
					Axis:        math3d.Vector3{X: float32(i + 1), Y: float32(j + 1), Z: float32(k + 1)}.Normalized(),
					Rate:        30 + 15*float32((i+j+k)%4),
					Orientation: math3d.IdentityQuaternion(),
				})
			}
		}
	}
	return s
}

// Update spins every object by dt seconds.
func (s *Scene) Update(dt float32) {
	for i := range s.Objects {
		s.Objects[i].Spin(dt)
	}
}

// Visible returns the indices of the objects whose bounds are not
// entirely outside f, in order.
func (s *Scene) Visible(f *math3d.Frustum) []int {
	var visible []int
	for i := range s.Objects {
		b := s.Objects[i].Bounds()
		if f.TestAABB(b.Min, b.Max) != math3d.Back {
			visible = append(visible, i)
		}
	}
	return visible
}
