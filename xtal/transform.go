// 14 Oct 2026

package xtal

import (
	"fmt"
	"math"

	"github.com/andrew-torda/xtal_iface/crystal"
	"github.com/andrew-torda/xtal_iface/pdb/cmmn"
	"github.com/andrew-torda/xtal_iface/pdb/geom"
)

// EquivTol is the tolerance on each matrix element when we ask if two
// transforms are inverses. The test is done on fractional matrices whose
// elements are small rationals (0, ±1, ±1/2, ±1/3 ...) plus integers, so
// the only error is float rounding, many orders of magnitude below this.
const EquivTol = 1e-6

// Key identifies a transform: operator index and cell translation. Two
// transforms with the same key are the same transform.
type Key struct {
	Op, A, B, C int
}

// Less orders keys by operator, then a, b, c.
func (k Key) Less(o Key) bool {
	switch {
	case k.Op != o.Op:
		return k.Op < o.Op
	case k.A != o.A:
		return k.A < o.A
	case k.B != o.B:
		return k.B < o.B
	}
	return k.C < o.C
}

func (k Key) String() string { return fmt.Sprintf("[%d-(%d,%d,%d)]", k.Op, k.A, k.B, k.C) }

// Transform is a crystal operator plus a whole cell translation. Frac
// acts on fractional coordinates, Orth on orthonormal ones.
type Transform struct {
	Key
	Frac geom.Mat4
	Orth geom.Mat4
}

// IdentityTransform is operator 0 in the origin cell.
func IdentityTransform() Transform {
	return Transform{Frac: geom.Identity, Orth: geom.Identity}
}

// NewTransform builds operator op of info's space group, moved to cell
// (a,b,c).
func NewTransform(info *crystal.Info, op, a, b, c int) Transform {
	cell := cmmn.Xyz{X: float64(a), Y: float64(b), Z: float64(c)}
	frac := info.SG.Transformation(op)
	return Transform{
		Key:  Key{Op: op, A: a, B: b, C: c},
		Frac: frac.Translate(cell),
		Orth: info.Cell.TransfToOrthonormal(frac).Translate(info.Cell.FracToOrth(cell)),
	}
}

// Equivalent says whether t and o are each other's inverse, so the
// product of their matrices is the identity.
func (t *Transform) Equivalent(o *Transform) bool {
	return t.Frac.Mul(o.Frac).ApproxEqual(geom.Identity, EquivTol)
}

// SelfEquivalent is true for transforms which are their own inverse.
func (t *Transform) SelfEquivalent() bool { return t.Equivalent(t) }

// IsIdentity is true only for operator 0 in the origin cell.
func (t *Transform) IsIdentity() bool { return t.Frac.ApproxEqual(geom.Identity, EquivTol) }

// IsPureTranslation is true when there is no rotation, but the transform
// moves things: whole cells or a centring vector.
func (t *Transform) IsPureTranslation() bool {
	return t.Frac.Rot().ApproxEqual(geom.Identity, EquivTol) && !t.IsIdentity()
}

// Fold is the order of the rotation, 1, 2, 3, 4 or 6. It is negative
// for improper operators: -1 is an inversion centre, -2 a mirror.
// It returns 0 if the matrix is not a crystallographic operator.
func (t *Transform) Fold() int {
	tr := int(math.Round(t.Frac.Trace3()))
	if t.Frac.Det3() > 0 {
		switch tr {
		case 3:
			return 1
		case -1:
			return 2
		case 0:
			return 3
		case 1:
			return 4
		case 2:
			return 6
		}
		return 0
	}
	switch tr {
	case -3:
		return -1
	case 1:
		return -2
	case 0:
		return -3
	case -1:
		return -4
	case -2:
		return -6
	}
	return 0
}

// IsScrew says if the transform is a proper rotation with a translation
// along its axis. Applying it fold times gives a pure translation, so
// copies related by it go on forever.
func (t *Transform) IsScrew() bool {
	n := t.Fold()
	if n < 2 {
		return false
	}
	// sum of R^k t over one turn is fold times the part of t along the axis
	var sum cmmn.Xyz
	rk := geom.Identity
	tr := t.Frac.Trans()
	for k := 0; k < n; k++ {
		sum = sum.Add(rk.ApplyVec(tr))
		rk = rk.Mul(t.Frac.Rot())
	}
	return geom.Len(sum) > EquivTol
}

// IsInfinite is true if copies of a chain related by t make an endless
// fibre rather than a closed assembly.
func (t *Transform) IsInfinite() bool { return t.IsPureTranslation() || t.IsScrew() }

// Apply returns a transformed copy of atoms. The input is not touched,
// so one chain can be used by many transforms at once.
func (t *Transform) Apply(atoms []cmmn.Atom) []cmmn.Atom {
	out := make([]cmmn.Atom, len(atoms))
	copy(out, atoms)
	for i := range out {
		if out[i].Xyz.Ok() {
			out[i].Xyz = t.Orth.Apply(out[i].Xyz)
		}
	}
	return out
}

func (t Transform) String() string { return t.Key.String() }
