// 14 Oct 2026

package xtal

import (
	"math"

	"github.com/andrew-torda/xtal_iface/pdb/cmmn"
	"github.com/andrew-torda/xtal_iface/pdb/geom"
)

// Box is an axis aligned bounding box in orthonormal coordinates. A box
// with Min > Max is empty and overlaps nothing.
type Box struct {
	Min, Max cmmn.Xyz
}

// EmptyBox is where we start before adding points.
var EmptyBox = Box{
	Min: cmmn.Xyz{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)},
	Max: cmmn.Xyz{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)},
}

func (b Box) Empty() bool { return b.Min.X > b.Max.X }

func (b *Box) addPoint(x cmmn.Xyz) {
	b.Min.X, b.Max.X = math.Min(b.Min.X, x.X), math.Max(b.Max.X, x.X)
	b.Min.Y, b.Max.Y = math.Min(b.Min.Y, x.Y), math.Max(b.Max.Y, x.Y)
	b.Min.Z, b.Max.Z = math.Min(b.Min.Z, x.Z), math.Max(b.Max.Z, x.Z)
}

// Union is the smallest box holding b and o.
func (b Box) Union(o Box) Box {
	if o.Empty() {
		return b
	}
	b.addPoint(o.Min)
	b.addPoint(o.Max)
	return b
}

// Translate moves the box. Empty boxes stay empty.
func (b Box) Translate(v cmmn.Xyz) Box {
	if b.Empty() {
		return b
	}
	return Box{Min: b.Min.Add(v), Max: b.Max.Add(v)}
}

// Pad grows the box by p in every direction.
func (b Box) Pad(p float64) Box {
	if b.Empty() || p == 0 {
		return b
	}
	d := cmmn.Xyz{X: p, Y: p, Z: p}
	return Box{Min: b.Min.Sub(d), Max: b.Max.Add(d)}
}

// Overlaps says whether the boxes come within cutoff of each other on
// all three axes. Two atoms within cutoff are within cutoff along every
// axis, so a false here means no contacts are possible.
func (b Box) Overlaps(o Box, cutoff float64) bool {
	if b.Empty() || o.Empty() {
		return false
	}
	return b.Min.X-cutoff <= o.Max.X && o.Min.X-cutoff <= b.Max.X &&
		b.Min.Y-cutoff <= o.Max.Y && o.Min.Y-cutoff <= b.Max.Y &&
		b.Min.Z-cutoff <= o.Max.Z && o.Min.Z-cutoff <= b.Max.Z
}

// BoxGrid has the bounding box of every chain of the unit under every
// operator, plus one box per operator for the whole unit. It is built
// once for the origin cell; other cells get a Translated copy.
type BoxGrid struct {
	chain [][]Box // [operator][chain]
	au    []Box   // [operator]
}

// NewBoxGrid transforms each chain by each operator and boxes it. Only
// usable atoms count. pad is added all round.
func NewBoxGrid(chains cmmn.ChnSl, ops []geom.Mat4, hetero bool, pad float64) *BoxGrid {
	g := &BoxGrid{
		chain: make([][]Box, len(ops)),
		au:    make([]Box, len(ops)),
	}
	for n, op := range ops {
		g.chain[n] = make([]Box, len(chains))
		au := EmptyBox
		for i := range chains {
			bx := EmptyBox
			for _, a := range chains[i].Atoms {
				if a.Usable(hetero) {
					bx.addPoint(op.Apply(a.Xyz))
				}
			}
			bx = bx.Pad(pad)
			g.chain[n][i] = bx
			au = au.Union(bx)
		}
		g.au[n] = au
	}
	return g
}

// Translated returns a new grid with every box moved by v. No atoms are
// looked at.
func (g *BoxGrid) Translated(v cmmn.Xyz) *BoxGrid {
	t := &BoxGrid{
		chain: make([][]Box, len(g.chain)),
		au:    make([]Box, len(g.au)),
	}
	for n := range g.chain {
		t.chain[n] = make([]Box, len(g.chain[n]))
		for i, bx := range g.chain[n] {
			t.chain[n][i] = bx.Translate(v)
		}
		t.au[n] = g.au[n].Translate(v)
	}
	return t
}

// ChainBox is the box of chain i under operator n.
func (g *BoxGrid) ChainBox(n, i int) Box { return g.chain[n][i] }

// AUBox is the box of the whole unit under operator n.
func (g *BoxGrid) AUBox(n int) Box { return g.au[n] }

// NumOps is the number of operators in the grid.
func (g *BoxGrid) NumOps() int { return len(g.au) }
