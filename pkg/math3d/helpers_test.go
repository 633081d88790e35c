package math3d

import (
	"testing"

	"github.com/chewxy/math32"
)

const tolerance = 1e-5

func near(a, b, eps float32) bool {
	return math32.Abs(a-b) <= eps
}

func assertNear(t *testing.T, what string, got, want, eps float32) {
	t.Helper()
	if !near(got, want, eps) {
		t.Fatalf("%s: got %v, want %v (eps %g)", what, got, want, eps)
	}
}

func assertVec3(t *testing.T, what string, got, want Vector3, eps float32) {
	t.Helper()
	if !near(got.X, want.X, eps) || !near(got.Y, want.Y, eps) || !near(got.Z, want.Z, eps) {
		t.Fatalf("%s: got %+v, want %+v (eps %g)", what, got, want, eps)
	}
}

func assertQuat(t *testing.T, what string, got, want Quaternion, eps float32) {
	t.Helper()
	if !near(got.X, want.X, eps) || !near(got.Y, want.Y, eps) ||
		!near(got.Z, want.Z, eps) || !near(got.W, want.W, eps) {
		t.Fatalf("%s: got %+v, want %+v (eps %g)", what, got, want, eps)
	}
}

// assertSameRotation accepts q or -q, which encode the same rotation.
func assertSameRotation(t *testing.T, what string, got, want Quaternion, eps float32) {
	t.Helper()
	if got.Dot(want) < 0 {
		got = got.Neg()
	}
	assertQuat(t, what, got, want, eps)
}

func maxDiff(a, b Matrix4) float32 {
	var worst float32
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if d := math32.Abs(a[i][j] - b[i][j]); d > worst {
				worst = d
			}
		}
	}
	return worst
}

func assertMatrix(t *testing.T, what string, got, want Matrix4, eps float32) {
	t.Helper()
	if d := maxDiff(got, want); d > eps {
		t.Fatalf("%s: max element error %g > %g\ngot  %v\nwant %v", what, d, eps, got, want)
	}
}
