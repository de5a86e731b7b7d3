// 14 Oct 2026

// Package crystal has the unit cell, space group operator tables and
// the conversion between fractional and orthonormal coordinates.
// Orthonormalisation follows the PDB convention: a along x, b in the
// xy plane, c wherever that leaves it.
package crystal

import (
	"fmt"
	"math"

	"github.com/andrew-torda/xtal_iface/pdb/cmmn"
	"github.com/andrew-torda/xtal_iface/pdb/geom"
)

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrBadCell    = Error("bad unit cell")
	ErrSymop      = Error("cannot parse symmetry operator")
	ErrSpaceGroup = Error("unknown space group")
	ErrIncomplete = Error("crystal info needs a cell and a space group")
	deg2rad       = math.Pi / 180
)

// Cell is a unit cell. Lengths in angstrom, angles in degrees.
type Cell struct {
	A, B, C            float64
	Alpha, Beta, Gamma float64

	m, mInv geom.Mat4 // set by init
	ready   bool
}

// NewCell checks the parameters and returns a cell ready for use.
func NewCell(a, b, c, alpha, beta, gamma float64) (*Cell, error) {
	cell := &Cell{A: a, B: b, C: c, Alpha: alpha, Beta: beta, Gamma: gamma}
	if err := cell.init(); err != nil {
		return nil, err
	}
	return cell, nil
}

// volTerm is the bit under the square root in the cell volume.
func (cell *Cell) volTerm() float64 {
	ca := math.Cos(cell.Alpha * deg2rad)
	cb := math.Cos(cell.Beta * deg2rad)
	cg := math.Cos(cell.Gamma * deg2rad)
	return 1 - ca*ca - cb*cb - cg*cg + 2*ca*cb*cg
}

// Validate says whether the cell describes a real parallelepiped.
func (cell *Cell) Validate() error {
	for _, l := range []float64{cell.A, cell.B, cell.C} {
		if !(l > 0) || math.IsInf(l, 0) {
			return fmt.Errorf("%w: edge %g", ErrBadCell, l)
		}
	}
	for _, ang := range []float64{cell.Alpha, cell.Beta, cell.Gamma} {
		if !(ang > 0 && ang < 180) {
			return fmt.Errorf("%w: angle %g", ErrBadCell, ang)
		}
	}
	if cell.volTerm() <= 0 {
		return fmt.Errorf("%w: angles %g %g %g do not close", ErrBadCell,
			cell.Alpha, cell.Beta, cell.Gamma)
	}
	return nil
}

// init fills in the orthonormalisation matrix and its inverse.
func (cell *Cell) init() error {
	if cell.ready {
		return nil
	}
	if err := cell.Validate(); err != nil {
		return err
	}
	cb := math.Cos(cell.Beta * deg2rad)
	cg, sg := math.Cos(cell.Gamma*deg2rad), math.Sin(cell.Gamma*deg2rad)
	ca := math.Cos(cell.Alpha * deg2rad)
	v := cell.A * cell.B * cell.C * math.Sqrt(cell.volTerm())
	cell.m = geom.NewMat4([9]float64{
		cell.A, cell.B * cg, cell.C * cb,
		0, cell.B * sg, cell.C * (ca - cb*cg) / sg,
		0, 0, v / (cell.A * cell.B * sg),
	}, cmmn.Xyz{})
	var err error
	if cell.mInv, err = cell.m.Inverse(); err != nil {
		return fmt.Errorf("%w: %v", ErrBadCell, err)
	}
	cell.ready = true
	return nil
}

// mustInit is for the methods below. A Cell built by hand rather than by
// NewCell gets its matrices on first use.
func (cell *Cell) mustInit() {
	if err := cell.init(); err != nil {
		panic(err)
	}
}

// Volume in cubic angstrom
func (cell *Cell) Volume() float64 {
	return cell.A * cell.B * cell.C * math.Sqrt(cell.volTerm())
}

// FracToOrth converts fractional coordinates (or a lattice vector) to
// orthonormal ones.
func (cell *Cell) FracToOrth(x cmmn.Xyz) cmmn.Xyz {
	cell.mustInit()
	return cell.m.ApplyVec(x)
}

// OrthToFrac is the inverse of FracToOrth.
func (cell *Cell) OrthToFrac(x cmmn.Xyz) cmmn.Xyz {
	cell.mustInit()
	return cell.mInv.ApplyVec(x)
}

// TransfToOrthonormal takes an operator acting on fractional coordinates
// and gives the same operator acting on orthonormal ones, M * F * M^-1.
func (cell *Cell) TransfToOrthonormal(frac geom.Mat4) geom.Mat4 {
	cell.mustInit()
	return cell.m.Mul(frac).Mul(cell.mInv)
}

func (cell *Cell) String() string {
	return fmt.Sprintf("%.3f %.3f %.3f %.2f %.2f %.2f",
		cell.A, cell.B, cell.C, cell.Alpha, cell.Beta, cell.Gamma)
}
