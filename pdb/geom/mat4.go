// 14 Oct 2026

package geom

import (
	"fmt"
	"math"

	"github.com/andrew-torda/xtal_iface/pdb/cmmn"
)

// Mat4 is a 4x4 affine transform acting on column vectors. Row 3 is
// always 0 0 0 1, so only 12 entries carry information.
type Mat4 [4][4]float64

var Identity = Mat4{
	{1, 0, 0, 0},
	{0, 1, 0, 0},
	{0, 0, 1, 0},
	{0, 0, 0, 1},
}

const errSingular = Error("singular matrix")

// NewMat4 builds an affine matrix from a 3x3 rotation given row by row
// and a translation.
func NewMat4(rot [9]float64, t cmmn.Xyz) Mat4 {
	return Mat4{
		{rot[0], rot[1], rot[2], t.X},
		{rot[3], rot[4], rot[5], t.Y},
		{rot[6], rot[7], rot[8], t.Z},
		{0, 0, 0, 1},
	}
}

// Mul returns m * o.
func (m Mat4) Mul(o Mat4) (r Mat4) {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j] + m[i][3]*o[3][j]
		}
	}
	return r
}

// Apply transforms a point.
func (m Mat4) Apply(x cmmn.Xyz) cmmn.Xyz {
	return cmmn.Xyz{
		X: m[0][0]*x.X + m[0][1]*x.Y + m[0][2]*x.Z + m[0][3],
		Y: m[1][0]*x.X + m[1][1]*x.Y + m[1][2]*x.Z + m[1][3],
		Z: m[2][0]*x.X + m[2][1]*x.Y + m[2][2]*x.Z + m[2][3],
	}
}

// ApplyVec transforms a direction, ignoring the translation column.
func (m Mat4) ApplyVec(x cmmn.Xyz) cmmn.Xyz {
	return cmmn.Xyz{
		X: m[0][0]*x.X + m[0][1]*x.Y + m[0][2]*x.Z,
		Y: m[1][0]*x.X + m[1][1]*x.Y + m[1][2]*x.Z,
		Z: m[2][0]*x.X + m[2][1]*x.Y + m[2][2]*x.Z,
	}
}

// Translate returns a copy of m with v added to the translation column.
func (m Mat4) Translate(v cmmn.Xyz) Mat4 {
	m[0][3] += v.X
	m[1][3] += v.Y
	m[2][3] += v.Z
	return m
}

// Trans is the translation column.
func (m Mat4) Trans() cmmn.Xyz { return cmmn.Xyz{X: m[0][3], Y: m[1][3], Z: m[2][3]} }

// Rot returns m with the translation zeroed.
func (m Mat4) Rot() Mat4 {
	m[0][3], m[1][3], m[2][3] = 0, 0, 0
	return m
}

// ApproxEqual compares the 12 meaningful entries with an absolute
// tolerance.
func (m Mat4) ApproxEqual(o Mat4, eps float64) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			if math.Abs(m[i][j]-o[i][j]) > eps {
				return false
			}
		}
	}
	return true
}

// Trace3 is the trace of the rotation part.
func (m Mat4) Trace3() float64 { return m[0][0] + m[1][1] + m[2][2] }

// Det3 is the determinant of the rotation part.
func (m Mat4) Det3() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Inverse returns the inverse of an affine matrix. The rotation part is
// inverted by its adjugate, so it need not be orthogonal.
func (m Mat4) Inverse() (Mat4, error) {
	det := m.Det3()
	if math.Abs(det) < 1e-12 {
		return Mat4{}, errSingular
	}
	var r Mat4
	r[0][0] = (m[1][1]*m[2][2] - m[1][2]*m[2][1]) / det
	r[0][1] = (m[0][2]*m[2][1] - m[0][1]*m[2][2]) / det
	r[0][2] = (m[0][1]*m[1][2] - m[0][2]*m[1][1]) / det
	r[1][0] = (m[1][2]*m[2][0] - m[1][0]*m[2][2]) / det
	r[1][1] = (m[0][0]*m[2][2] - m[0][2]*m[2][0]) / det
	r[1][2] = (m[0][2]*m[1][0] - m[0][0]*m[1][2]) / det
	r[2][0] = (m[1][0]*m[2][1] - m[1][1]*m[2][0]) / det
	r[2][1] = (m[0][1]*m[2][0] - m[0][0]*m[2][1]) / det
	r[2][2] = (m[0][0]*m[1][1] - m[0][1]*m[1][0]) / det
	r[3][3] = 1
	t := r.ApplyVec(m.Trans())
	r[0][3], r[1][3], r[2][3] = -t.X, -t.Y, -t.Z
	return r, nil
}

// String prints the three informative rows, for debugging.
func (m Mat4) String() (s string) {
	for i := 0; i < 3; i++ {
		s += fmt.Sprintf("%8.4f %8.4f %8.4f %10.4f\n", m[i][0], m[i][1], m[i][2], m[i][3])
	}
	return s
}
