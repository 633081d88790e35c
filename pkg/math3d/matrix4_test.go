package math3d

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
)

var pinned = NewMatrix4(
	1, 1, 1, 1,
	2, 3, 1, 1,
	4, 5, 1, 1,
	6, 3, 5, 1,
)

func TestDeterminant(t *testing.T) {
	if got := Identity().Determinant(); got != 1 {
		t.Fatalf("det(I) = %v", got)
	}
	// Direct cofactor expansion of the pinned matrix along row 0 gives 8.
	if got := pinned.Determinant(); got != 8 {
		t.Fatalf("det(pinned) = %v, want 8", got)
	}
	if got := Scaling(Vector3{2, 3, 4}).Determinant(); got != 24 {
		t.Fatalf("det(scale 2,3,4) = %v, want 24", got)
	}
	assertNear(t, "det(rotation)", RotationX(33).Mul(RotationZ(-71)).Determinant(), 1, tolerance)
}

func TestDeterminantRowSwap(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 0; n < 20; n++ {
		m := randomMatrix(rng)
		swapped := m
		swapped[0], swapped[2] = m[2], m[0]

		det := m.Determinant()
		assertNear(t, "det after row swap", swapped.Determinant(), -det, 1e-3*(1+math32.Abs(det)))
	}
}

func TestDeterminantMatchesMgl(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for n := 0; n < 20; n++ {
		m := randomMatrix(rng)
		want := m.Mgl().Det()
		assertNear(t, "det vs mgl32", m.Determinant(), want, 1e-3*(1+math32.Abs(want)))
	}
}

func TestInversePinned(t *testing.T) {
	want := NewMatrix4(
		1, -2, 1, 0,
		-1, 1.5, -0.5, 0,
		-1, 1.75, -1, 0.25,
		2, -1.25, 0.5, -0.25,
	)
	assertMatrix(t, "inverse", pinned.Inverse(), want, tolerance)
	assertMatrix(t, "m * m^-1", pinned.Mul(pinned.Inverse()), Identity(), 1e-4)
	assertMatrix(t, "m^-1 * m", pinned.Inverse().Mul(pinned), Identity(), 1e-4)
}

func TestInverseProducesIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for n := 0; n < 50; n++ {
		m := randomMatrix(rng)
		assertMatrix(t, "m * m^-1", m.Mul(m.Inverse()), Identity(), 1e-4)
		assertMatrix(t, "inverse vs mgl32", m.Inverse(), Matrix4FromMgl(m.Mgl().Inv()), 1e-4)
	}

	affine := Scaling(Vector3{2, 0.5, 3}).Mul(RotationY(40)).Mul(Translation(Vector3{-3, 7, 1}))
	assertMatrix(t, "affine m * m^-1", affine.Mul(affine.Inverse()), Identity(), 1e-4)
}

func TestInverseSingularReturnsInput(t *testing.T) {
	singular := NewMatrix4(
		1, 2, 3, 4,
		1, 2, 3, 4,
		0, 1, 0, 1,
		5, 0, 2, 1,
	)
	if det := singular.Determinant(); det != 0 {
		t.Fatalf("expected an exactly singular matrix, det = %v", det)
	}
	if got := singular.Inverse(); got != singular {
		t.Fatalf("singular Inverse() = %v, want the input unchanged", got)
	}
}

func TestOrthogonalInverse(t *testing.T) {
	rigid := RotationY(30).Mul(RotationX(15)).Mul(Translation(Vector3{1, 2, 3}))
	inv := rigid.OrthogonalInverse()
	assertMatrix(t, "matches general inverse", inv, rigid.Inverse(), 1e-5)
	assertMatrix(t, "m * m^-1", rigid.Mul(inv), Identity(), 1e-5)

	p := Vector3{4, -5, 6}
	assertVec3(t, "round trip", inv.TransformPoint(rigid.TransformPoint(p)), p, 1e-4)
}

func TestAxisRotations(t *testing.T) {
	x, y, z := Vector3{1, 0, 0}, Vector3{0, 1, 0}, Vector3{0, 0, 1}
	assertVec3(t, "RotationX(90) y", RotationX(90).TransformDirection(y), z, tolerance)
	assertVec3(t, "RotationY(90) z", RotationY(90).TransformDirection(z), x, tolerance)
	assertVec3(t, "RotationZ(90) x", RotationZ(90).TransformDirection(x), y, tolerance)

	// Row vectors compose left to right: X first, then Y.
	composed := RotationX(90).Mul(RotationY(90))
	assertVec3(t, "RotX*RotY y", composed.TransformDirection(y), x, tolerance)

	r := RotationX(25).Mul(RotationY(-60)).Mul(RotationZ(110))
	assertMatrix(t, "rotation is orthogonal", r.Mul(r.Transpose()), Identity(), tolerance)
}

func TestMulVector4(t *testing.T) {
	m := Translation(Vector3{1, 2, 3})
	if got := m.MulVector4(Vector4{1, 1, 1, 1}); got != (Vector4{2, 3, 4, 1}) {
		t.Fatalf("point = %v", got)
	}
	if got := m.MulVector4(Vector4{1, 1, 1, 0}); got != (Vector4{1, 1, 1, 0}) {
		t.Fatalf("direction = %v", got)
	}
	if got := pinned.MulVector4(Vector4{1, 0, 0, 0}); got != pinned.Row(0) {
		t.Fatalf("unit x picks row 0, got %v", got)
	}
}

func TestMulMatchesMgl(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for n := 0; n < 20; n++ {
		a, b := randomMatrix(rng), randomMatrix(rng)
		want := Matrix4FromMgl(b.Mgl().Mul4(a.Mgl()))
		assertMatrix(t, "a*b vs mgl32", a.Mul(b), want, 1e-4)
	}
}

func TestRows(t *testing.T) {
	m := NewMatrix4FromRows(
		Vector4{1, 2, 3, 4},
		Vector4{5, 6, 7, 8},
		Vector4{9, 10, 11, 12},
		Vector4{13, 14, 15, 16},
	)
	if m[2][1] != 10 {
		t.Fatalf("m[2][1] = %v", m[2][1])
	}
	if m.Row(3) != (Vector4{13, 14, 15, 16}) {
		t.Fatalf("Row(3) = %v", m.Row(3))
	}
	m.SetRow(0, Vector4{0, 0, 0, 1})
	if m[0] != [4]float32{0, 0, 0, 1} {
		t.Fatalf("SetRow left %v", m[0])
	}
	if m.Transpose()[1][3] != 14 {
		t.Fatalf("transpose [1][3] = %v", m.Transpose()[1][3])
	}
	if m.Position() != (Vector3{13, 14, 15}) || m.Up() != (Vector3{5, 6, 7}) {
		t.Fatalf("basis accessors: up %v pos %v", m.Up(), m.Position())
	}
}

func TestTranslationOps(t *testing.T) {
	m := RotationZ(90)
	m.SetTranslation(Vector3{1, 2, 3})
	m.Translate(Vector3{1, 1, 1})
	if m.Position() != (Vector3{2, 3, 4}) {
		t.Fatalf("position = %v", m.Position())
	}
	assertVec3(t, "rotate then translate", m.TransformPoint(Vector3{1, 0, 0}), Vector3{2, 4, 4}, tolerance)

	m.SetIdentity()
	if m != Identity() {
		t.Fatalf("SetIdentity left %v", m)
	}
	if Translation(Vector3{7, 8, 9}).TransformPoint(Vector3{}) != (Vector3{7, 8, 9}) {
		t.Fatalf("Translation does not move the origin")
	}
}

func TestScale(t *testing.T) {
	m := Identity()
	m.SetTranslation(Vector3{5, 5, 5})
	m.Scale(Vector3{2, 3, 4})
	if m.LocalScale() != (Vector3{2, 3, 4}) {
		t.Fatalf("LocalScale = %v", m.LocalScale())
	}
	if m.Position() != (Vector3{5, 5, 5}) {
		t.Fatalf("Scale touched the translation: %v", m.Position())
	}
	if m.TransformPoint(Vector3{1, 1, 1}) != (Vector3{7, 8, 9}) {
		t.Fatalf("scaled point = %v", m.TransformPoint(Vector3{1, 1, 1}))
	}
	if Scaling(Vector3{2, 3, 4}).LocalScale() != (Vector3{2, 3, 4}) {
		t.Fatalf("Scaling diagonal wrong")
	}
}

func TestEulerAngles(t *testing.T) {
	m := RotationX(20).Mul(RotationY(30)).Mul(RotationZ(40))
	assertVec3(t, "euler", m.EulerAngles(), Vector3{radians(20), radians(30), radians(40)}, 1e-5)

	m = RotationX(-75).Mul(RotationY(10)).Mul(RotationZ(170))
	assertVec3(t, "euler", m.EulerAngles(), Vector3{radians(-75), radians(10), radians(170)}, 1e-5)

	if got := Identity().EulerAngles(); got != (Vector3{}) {
		t.Fatalf("identity euler = %v", got)
	}
}

func TestLookAt(t *testing.T) {
	eye := Vector3{1, 2, 3}
	m := LookAt(eye, Vector3{1, 2, 10}, Vector3{0, 1, 0})
	assertVec3(t, "right", m.Right(), Vector3{1, 0, 0}, tolerance)
	assertVec3(t, "up", m.Up(), Vector3{0, 1, 0}, tolerance)
	assertVec3(t, "forward", m.Forward(), Vector3{0, 0, 1}, tolerance)
	if m.Position() != eye {
		t.Fatalf("position = %v", m.Position())
	}

	target := Vector3{-4, 0, 8}
	world := LookAt(eye, target, Vector3{0, 1, 0})
	view := LookAtLH(eye, target, Vector3{0, 1, 0})
	assertMatrix(t, "view is the inverse of world", view, world.OrthogonalInverse(), 1e-5)
	assertMatrix(t, "view is the inverse of world", view, world.Inverse(), 1e-4)

	// In view space the target sits straight ahead on +Z.
	p := view.TransformPoint(target)
	assertNear(t, "view x", p.X, 0, 1e-5)
	assertNear(t, "view y", p.Y, 0, 1e-5)
	assertNear(t, "view z", p.Z, target.Sub(eye).Length(), 1e-4)
}

func TestOrthoNormalize(t *testing.T) {
	skewed := NewMatrix4(
		3, 0.2, 0, 0,
		0.4, 0.5, 0.1, 0,
		0, 0, 2, 0,
		7, 8, 9, 1,
	)
	m := OrthoNormalize(skewed)
	assertVec3(t, "x", m.Right(), Vector3{1, 0, 0}, tolerance)
	assertVec3(t, "y", m.Up(), Vector3{0, 1, 0}, tolerance)
	assertVec3(t, "z", m.Forward(), Vector3{0, 0, 1}, tolerance)
	if m.Row(3) != skewed.Row(3) {
		t.Fatalf("translation row changed: %v", m.Row(3))
	}
}

func TestTurnTo(t *testing.T) {
	targets := []Vector3{
		{5, 0, 0},
		{0, 3, 5},
		{-4, -2, 1},
	}
	for _, target := range targets {
		m := Identity()
		for i := 0; i < 600; i++ {
			m = TurnTo(1.0/60, 5, target, m)
		}
		assertVec3(t, "forward converges on target", m.Forward(), target.Normalized(), 1e-3)
		assertMatrix(t, "stays orthonormal", m.Mul(m.Transpose()).withoutTranslation(), Identity(), 1e-4)
	}
}

func TestTurnToIsIncremental(t *testing.T) {
	m := Identity()
	target := Vector3{10, 0, 0}
	step := TurnTo(1.0/60, 1, target, m)

	// One short step turns a little, not all the way.
	cos := step.Forward().Dot(Vector3{0, 0, 1})
	if cos > 0.9999 || cos < 0.99 {
		t.Fatalf("one step turned to cos %v", cos)
	}
	if step.Forward().X <= 0 {
		t.Fatalf("turned away from the target: %v", step.Forward())
	}

	ahead := TurnTo(1, 1, Vector3{0, 0, 10}, m)
	assertMatrix(t, "target straight ahead", ahead, m, 1e-5)
}

// withoutTranslation clears row 3 and column 3 back to identity.
func (m Matrix4) withoutTranslation() Matrix4 {
	m[3] = [4]float32{0, 0, 0, 1}
	m[0][3], m[1][3], m[2][3] = 0, 0, 0
	return m
}

// randomMatrix returns a well-conditioned matrix: entries in [-1, 1) with
// a diagonal boost.
func randomMatrix(rng *rand.Rand) Matrix4 {
	var m Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m[i][j] = rng.Float32()*2 - 1
		}
		m[i][i] += 4
	}
	return m
}
