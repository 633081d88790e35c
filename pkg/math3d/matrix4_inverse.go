package math3d

// minors holds the six 2x2 determinants of rows 0-1 (x) and the six of
// rows 2-3 (m) that a Laplace expansion along the first two rows needs.
type minors struct {
	x0, x1, x2, x3, x4, x5 float32
	m0, m1, m2, m3, m4, m5 float32
}

func (m *Matrix4) minors() minors {
	return minors{
		x0: m[0][0]*m[1][1] - m[0][1]*m[1][0],
		x1: m[0][0]*m[1][2] - m[0][2]*m[1][0],
		x2: m[0][0]*m[1][3] - m[0][3]*m[1][0],
		x3: m[0][1]*m[1][2] - m[0][2]*m[1][1],
		x4: m[0][1]*m[1][3] - m[0][3]*m[1][1],
		x5: m[0][2]*m[1][3] - m[0][3]*m[1][2],

		m0: m[2][2]*m[3][3] - m[2][3]*m[3][2],
		m1: m[2][1]*m[3][3] - m[2][3]*m[3][1],
		m2: m[2][1]*m[3][2] - m[2][2]*m[3][1],
		m3: m[2][0]*m[3][3] - m[2][3]*m[3][0],
		m4: m[2][0]*m[3][2] - m[2][2]*m[3][0],
		m5: m[2][0]*m[3][1] - m[2][1]*m[3][0],
	}
}

func (k minors) determinant() float32 {
	return k.x0*k.m0 - k.x1*k.m1 + k.x2*k.m2 + k.x3*k.m3 - k.x4*k.m4 + k.x5*k.m5
}

func (m Matrix4) Determinant() float32 {
	return m.minors().determinant()
}

// Inverse returns the adjugate of m divided by its determinant.
//
// A singular matrix (determinant exactly zero) is returned unchanged. That
// value is not an inverse; callers that can meet singular input must check
// Determinant first.
func (m Matrix4) Inverse() Matrix4 {
	k := m.minors()
	det := k.determinant()
	if det == 0 {
		return m
	}
	r := 1 / det

	return Matrix4{
		{
			r * (m[1][1]*k.m0 - m[1][2]*k.m1 + m[1][3]*k.m2),
			r * (-m[0][1]*k.m0 + m[0][2]*k.m1 - m[0][3]*k.m2),
			r * (m[3][1]*k.x5 - m[3][2]*k.x4 + m[3][3]*k.x3),
			r * (-m[2][1]*k.x5 + m[2][2]*k.x4 - m[2][3]*k.x3),
		},
		{
			r * (-m[1][0]*k.m0 + m[1][2]*k.m3 - m[1][3]*k.m4),
			r * (m[0][0]*k.m0 - m[0][2]*k.m3 + m[0][3]*k.m4),
			r * (-m[3][0]*k.x5 + m[3][2]*k.x2 - m[3][3]*k.x1),
			r * (m[2][0]*k.x5 - m[2][2]*k.x2 + m[2][3]*k.x1),
		},
		{
			r * (m[1][0]*k.m1 - m[1][1]*k.m3 + m[1][3]*k.m5),
			r * (-m[0][0]*k.m1 + m[0][1]*k.m3 - m[0][3]*k.m5),
			r * (m[3][0]*k.x4 - m[3][1]*k.x2 + m[3][3]*k.x0),
			r * (-m[2][0]*k.x4 + m[2][1]*k.x2 - m[2][3]*k.x0),
		},
		{
			r * (-m[1][0]*k.m2 + m[1][1]*k.m4 - m[1][2]*k.m5),
			r * (m[0][0]*k.m2 - m[0][1]*k.m4 + m[0][2]*k.m5),
			r * (-m[3][0]*k.x3 + m[3][1]*k.x1 - m[3][2]*k.x0),
			r * (m[2][0]*k.x3 - m[2][1]*k.x1 + m[2][2]*k.x0),
		},
	}
}

// OrthogonalInverse inverts a rigid transform by transposing the upper
// 3x3 and rotating the negated translation into it. The upper 3x3 must be
// a pure rotation; with scale or shear the result is silently wrong.
func (m Matrix4) OrthogonalInverse() Matrix4 {
	inv := Matrix4{
		{m[0][0], m[1][0], m[2][0], 0},
		{m[0][1], m[1][1], m[2][1], 0},
		{m[0][2], m[1][2], m[2][2], 0},
		{0, 0, 0, m[3][3]},
	}
	t := inv.TransformDirection(m.Position()).Neg()
	inv.SetTranslation(t)
	return inv
}
