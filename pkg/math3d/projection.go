package math3d

import "github.com/chewxy/math32"

// PerspectiveDirectXLH returns a left-handed perspective projection with
// depth mapped to [0, 1], increasing with distance.
func PerspectiveDirectXLH(aspectRatio, verticalFovDegrees, nearZ, farZ float32) Matrix4 {
	h := focalHeight(verticalFovDegrees)
	farRange := farZ / (farZ - nearZ)

	return Matrix4{
		{h / aspectRatio, 0, 0, 0},
		{0, h, 0, 0},
		{0, 0, farRange, 1},
		{0, 0, -nearZ * farRange, 0},
	}
}

// PerspectiveDirectXRH is the right-handed variant: the camera looks down
// -Z and w takes -z.
func PerspectiveDirectXRH(aspectRatio, verticalFovDegrees, nearZ, farZ float32) Matrix4 {
	h := focalHeight(verticalFovDegrees)
	farRange := farZ / (nearZ - farZ)

	return Matrix4{
		{h / aspectRatio, 0, 0, 0},
		{0, h, 0, 0},
		{0, 0, farRange, -1},
		{0, 0, nearZ * farRange, 0},
	}
}

// PerspectiveVulkanLH is PerspectiveDirectXLH with Y flipped, since
// Vulkan clip space has Y pointing down.
func PerspectiveVulkanLH(aspectRatio, verticalFovDegrees, nearZ, farZ float32) Matrix4 {
	m := PerspectiveDirectXLH(aspectRatio, verticalFovDegrees, nearZ, farZ)
	m[1][1] = -m[1][1]
	return m
}

// focalHeight is cot(fov/2).
func focalHeight(verticalFovDegrees float32) float32 {
	return 1 / math32.Tan(radians(verticalFovDegrees*0.5))
}
