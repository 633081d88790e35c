package scene

import (
	"github.com/chewxy/math32"

	"xform3d/pkg/math3d"
)

// Camera circles the origin and eases its view onto it with TurnTo, so it
// lags slightly behind the orbit instead of snapping.
type Camera struct {
	Radius, Height float32
	// OrbitRate is in degrees per second.
	OrbitRate float32
	TurnSpeed float32

	angle float32
	world math3d.Matrix4
}

func NewCamera(radius, height float32) *Camera {
	c := &Camera{Radius: radius, Height: height, OrbitRate: 20, TurnSpeed: 5}
	c.world = math3d.LookAt(c.Eye(), math3d.Vector3{}, math3d.Vector3{Y: 1})
	return c
}

// Eye is the current position on the orbit.
func (c *Camera) Eye() math3d.Vector3 {
	s, co := math32.Sincos(c.angle * math3d.DegToRad)
	return math3d.Vector3{X: c.Radius * s, Y: c.Height, Z: -c.Radius * co}
}

// Update moves along the orbit by dt seconds and turns toward the origin.
func (c *Camera) Update(dt float32) {
	c.angle += c.OrbitRate * dt
	if c.angle >= 360 {
		c.angle -= 360
	}
	c.world.SetTranslation(c.Eye())
	c.world = math3d.TurnTo(dt, c.TurnSpeed, math3d.Vector3{}, c.world)
}

// World is the camera's world transform, the input to Frustum.Create.
func (c *Camera) World() math3d.Matrix4 { return c.world }

// View maps world space into camera space.
func (c *Camera) View() math3d.Matrix4 { return c.world.OrthogonalInverse() }
