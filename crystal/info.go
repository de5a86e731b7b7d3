// 14 Oct 2026

package crystal

import (
	"github.com/andrew-torda/xtal_iface/pdb/geom"
)

// Info is what a structure says about its crystal.
type Info struct {
	Cell *Cell
	SG   *SpaceGroup
}

// NewInfo puts together a cell and a space group found by name.
func NewInfo(sgName string, a, b, c, alpha, beta, gamma float64) (*Info, error) {
	sg, err := Lookup(sgName)
	if err != nil {
		return nil, err
	}
	cell, err := NewCell(a, b, c, alpha, beta, gamma)
	if err != nil {
		return nil, err
	}
	return &Info{Cell: cell, SG: sg}, nil
}

// Validate checks we have both halves and that the cell is usable. After
// it succeeds, the cell's matrices are set and Info may be shared between
// goroutines.
func (info *Info) Validate() error {
	if info == nil || info.Cell == nil || info.SG == nil || info.SG.Multiplicity() == 0 {
		return ErrIncomplete
	}
	return info.Cell.init()
}

// TransformationsOrthonormal gives every operator of the space group in
// orthonormal coordinates.
func (info *Info) TransformationsOrthonormal() []geom.Mat4 {
	ops := info.SG.Transformations()
	for i := range ops {
		ops[i] = info.Cell.TransfToOrthonormal(ops[i])
	}
	return ops
}
