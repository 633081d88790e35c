package math3d

import "github.com/chewxy/math32"

// Frustum plane indices.
const (
	FrustumTop = iota
	FrustumBottom
	FrustumLeft
	FrustumRight
	FrustumNear
	FrustumFar
)

// Corner indices into Frustum.Corners.
const (
	NearTopLeft = iota
	NearTopRight
	NearBottomLeft
	NearBottomRight
	FarTopLeft
	FarTopRight
	FarBottomLeft
	FarBottomRight
)

// Frustum is the view volume of a camera, six planes whose normals point
// inward. The planes are only as fresh as the last call to Create; the
// frustum does not notice when the camera moves.
type Frustum struct {
	Planes [6]Plane

	// Corners of the near and far rectangles from the last Create.
	Corners [8]Vector3

	AspectRatio float32
	// WidthMultiplier divides the plane distances to get the rectangle
	// heights: height = dist / WidthMultiplier.
	WidthMultiplier float32
	NearPlaneDist   float32
	FarPlaneDist    float32

	NearPlaneHeight, NearPlaneWidth float32
	FarPlaneHeight, FarPlaneWidth   float32

	widthMultiplierRecip float32
}

func NewFrustum(aspectRatio, widthMultiplier, nearPlaneDist, farPlaneDist float32) Frustum {
	var f Frustum
	f.SetInternals(aspectRatio, widthMultiplier, nearPlaneDist, farPlaneDist)
	return f
}

// NewPerspectiveFrustum sizes the frustum to match a perspective
// projection with the given vertical field of view in degrees.
func NewPerspectiveFrustum(aspectRatio, verticalFovDegrees, nearPlaneDist, farPlaneDist float32) Frustum {
	widthMultiplier := 1 / (2 * math32.Tan(radians(verticalFovDegrees*0.5)))
	return NewFrustum(aspectRatio, widthMultiplier, nearPlaneDist, farPlaneDist)
}

// SetInternals replaces the frustum parameters and recomputes the near
// and far rectangle sizes. Planes are left alone until the next Create.
func (f *Frustum) SetInternals(aspectRatio, widthMultiplier, nearPlaneDist, farPlaneDist float32) {
	f.AspectRatio = aspectRatio
	f.WidthMultiplier = widthMultiplier
	f.widthMultiplierRecip = 1 / widthMultiplier
	f.NearPlaneDist = nearPlaneDist
	f.FarPlaneDist = farPlaneDist

	f.NearPlaneHeight = f.NearPlaneDist * f.widthMultiplierRecip
	f.NearPlaneWidth = f.NearPlaneHeight * f.AspectRatio
	f.FarPlaneHeight = f.FarPlaneDist * f.widthMultiplierRecip
	f.FarPlaneWidth = f.FarPlaneHeight * f.AspectRatio
}

// Create builds the six planes from a camera world transform: row 3 is
// the position and rows 0, 1, 2 the right, up and forward axes.
func (f *Frustum) Create(camera Matrix4) {
	pos := camera.Position()
	right := camera.Right()
	up := camera.Up()
	forward := camera.Forward()

	farCenter := pos.Add(forward.Scale(f.FarPlaneDist))
	nearCenter := pos.Add(forward.Scale(f.NearPlaneDist))

	farUp := up.Scale(f.FarPlaneHeight * 0.5)
	farRight := right.Scale(f.FarPlaneWidth * 0.5)
	nearUp := up.Scale(f.NearPlaneHeight * 0.5)
	nearRight := right.Scale(f.NearPlaneWidth * 0.5)

	ftl := farCenter.Add(farUp).Sub(farRight)
	ftr := farCenter.Add(farUp).Add(farRight)
	fbl := farCenter.Sub(farUp).Sub(farRight)
	fbr := farCenter.Sub(farUp).Add(farRight)

	ntl := nearCenter.Add(nearUp).Sub(nearRight)
	ntr := nearCenter.Add(nearUp).Add(nearRight)
	nbl := nearCenter.Sub(nearUp).Sub(nearRight)
	nbr := nearCenter.Sub(nearUp).Add(nearRight)

	f.Corners = [8]Vector3{ntl, ntr, nbl, nbr, ftl, ftr, fbl, fbr}

	// The winding of each triple makes the normal face inward.
	f.Planes[FrustumFar] = PlaneFromPoints(fbl, ftl, ftr)
	f.Planes[FrustumNear] = PlaneFromPoints(ntr, ntl, nbl)
	f.Planes[FrustumTop] = PlaneFromPoints(ftr, ftl, ntl)
	f.Planes[FrustumBottom] = PlaneFromPoints(nbl, fbl, fbr)
	f.Planes[FrustumLeft] = PlaneFromPoints(nbl, ftl, fbl)
	f.Planes[FrustumRight] = PlaneFromPoints(fbr, ftr, ntr)
}

// TestAABB returns Back as soon as the box lies fully behind one plane and
// Front otherwise. A box that only partly overlaps the frustum, or that
// straddles two planes outside a corner, is still reported Front: the test
// never culls a visible box but may keep an invisible one.
func (f *Frustum) TestAABB(aabbMin, aabbMax Vector3) Classification {
	center := aabbMin.Add(aabbMax).Scale(0.5)
	extents := aabbMax.Sub(center)

	for i := range f.Planes {
		if f.Planes[i].ClassifyAABB(center, extents) == Back {
			return Back
		}
	}
	return Front
}

// TestSphere is TestAABB for a bounding sphere.
func (f *Frustum) TestSphere(center Vector3, radius float32) Classification {
	for i := range f.Planes {
		if f.Planes[i].ClassifySphere(center, radius) == Back {
			return Back
		}
	}
	return Front
}
