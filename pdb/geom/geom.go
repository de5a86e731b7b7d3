// Calculate some geometries, mainly distances between atoms.

package geom

import (
	"math"

	"github.com/andrew-torda/xtal_iface/pdb/cmmn"
)

type Error string

func (e Error) Error() string { return string(e) }

const errTooFar = Error("too far")

// axisHelper makes the code below a bit more compact. Returns distance
// squared in one dimension or an error if it is already bigger than
// our limit.
func axisHelper(r1, r2, lim2 float64) (float64, error) {
	r := r1 - r2
	r = r * r
	if r > lim2 {
		return r, errTooFar
	}
	return r, nil
}

// Dist2 is the distance squared between two points.
func Dist2(x1, x2 cmmn.Xyz) float64 {
	dx, dy, dz := x1.X-x2.X, x1.Y-x2.Y, x1.Z-x2.Z
	return dx*dx + dy*dy + dz*dz
}

// Dist is the distance between two points.
func Dist(x1, x2 cmmn.Xyz) float64 { return math.Sqrt(Dist2(x1, x2)) }

// Within says whether two points are no further apart than cutoff and,
// if so, returns the distance. It gives up as soon as one axis is too far,
// which is most of the time for atoms in different chains.
func Within(x1, x2 cmmn.Xyz, cutoff float64) (float64, bool) {
	lim2 := cutoff * cutoff
	var xd, yd, zd float64
	var err error
	if xd, err = axisHelper(x1.X, x2.X, lim2); err != nil {
		return 0, false
	}
	if yd, err = axisHelper(x1.Y, x2.Y, lim2); err != nil {
		return 0, false
	}
	if zd, err = axisHelper(x1.Z, x2.Z, lim2); err != nil {
		return 0, false
	}
	r := xd + yd + zd
	if r > lim2 {
		return 0, false
	}
	return math.Sqrt(r), true
}

// Scale multiplies a vector by s
func Scale(v cmmn.Xyz, s float64) cmmn.Xyz { return cmmn.Xyz{X: v.X * s, Y: v.Y * s, Z: v.Z * s} }

// sclrProd returns the dot / scalar product of two vectors
func sclrProd(u, v cmmn.Xyz) float64 { return u.X*v.X + u.Y*v.Y + u.Z*v.Z }

// Len returns the vector length
func Len(v cmmn.Xyz) float64 { return math.Sqrt(sclrProd(v, v)) }
