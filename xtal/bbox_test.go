package xtal_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/andrew-torda/xtal_iface/pdb/cmmn"
	"github.com/andrew-torda/xtal_iface/pdb/geom"
	"github.com/andrew-torda/xtal_iface/xtal"
)

// TestOverlapsConservative puts two points within cutoff in two boxes.
// The boxes must never be said to miss each other.
func TestOverlapsConservative(t *testing.T) {
	rnd := rand.New(rand.NewSource(99))
	for i := 0; i < 10000; i++ {
		cutoff := 0.5 + rnd.Float64()*6
		x1 := cmmn.Xyz{X: rnd.Float64() * 50, Y: rnd.Float64() * 50, Z: rnd.Float64() * 50}
		dir := cmmn.Xyz{X: rnd.NormFloat64(), Y: rnd.NormFloat64(), Z: rnd.NormFloat64()}
		x2 := x1.Add(geom.Scale(dir, cutoff*rnd.Float64()/geom.Len(dir)))
		b1 := xtal.Box{Min: x1, Max: x1.Add(cmmn.Xyz{X: rnd.Float64() * 5, Y: 1, Z: 2})}
		b2 := xtal.Box{Min: x2.Sub(cmmn.Xyz{X: 1, Y: rnd.Float64() * 3}), Max: x2}
		if !b1.Overlaps(b2, cutoff) || !b2.Overlaps(b1, cutoff) {
			t.Fatalf("points %.3f apart, cutoff %.3f, boxes %v %v do not overlap",
				geom.Dist(x1, x2), cutoff, b1, b2)
		}
	}
}

func TestOverlapsEdges(t *testing.T) {
	unit := xtal.Box{Max: cmmn.Xyz{X: 1, Y: 1, Z: 1}}
	type tcase struct {
		name   string
		b      xtal.Box
		cutoff float64
		want   bool
	}
	tests := []tcase{
		{"same", unit, 0.1, true},
		{"empty", xtal.EmptyBox, 100, false},
		{"just in x", unit.Translate(cmmn.Xyz{X: 3}), 2, true},
		{"just out x", unit.Translate(cmmn.Xyz{X: 3}), 1.99, false},
		{"out in z only", unit.Translate(cmmn.Xyz{Z: -5}), 3, false},
		{"diagonal", unit.Translate(cmmn.Xyz{X: 2, Y: 2, Z: 2}), 1, true},
		{"padded", unit.Translate(cmmn.Xyz{Y: 4}).Pad(2), 1, true},
		{"under padded", unit.Translate(cmmn.Xyz{Y: 4}).Pad(1), 1, false},
	}
	for _, tc := range tests {
		if got := unit.Overlaps(tc.b, tc.cutoff); got != tc.want {
			t.Errorf("%s: got %v want %v", tc.name, got, tc.want)
		}
	}
	if xtal.EmptyBox.Overlaps(xtal.EmptyBox, math.MaxFloat64) {
		t.Error("empty boxes overlap")
	}
	if u := xtal.EmptyBox.Union(unit); u != unit {
		t.Error("union with empty", u)
	}
}

// TestTranslated checks moving a grid gives the same boxes as building
// one from moved atoms.
func TestTranslated(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	chns := cmmn.ChnSl{
		blob(rnd, "A", 30, cmmn.Xyz{X: 3}, 8),
		blob(rnd, "B", 30, cmmn.Xyz{Y: 9}, 8),
		{ChainID: "W"}, // no atoms
	}
	chns[1].Atoms[2].Elem = "H"
	chns[1].Atoms[3].Xyz = cmmn.BrokenXyz
	v := cmmn.Xyz{X: -31.5, Y: 12.25, Z: 40}
	ops := []geom.Mat4{geom.Identity}
	g := xtal.NewBoxGrid(chns, ops, true, 0.5).Translated(v)

	moved := make(cmmn.ChnSl, len(chns))
	for i := range chns {
		moved[i] = cmmn.Chain{ChainID: chns[i].ChainID}
		for _, a := range chns[i].Atoms {
			if a.Xyz.Ok() {
				a.Xyz = a.Xyz.Add(v)
			}
			moved[i].Atoms = append(moved[i].Atoms, a)
		}
	}
	want := xtal.NewBoxGrid(moved, ops, true, 0.5)
	approx := cmpopts.EquateApprox(0, 1e-9)
	for i := range chns {
		if diff := cmp.Diff(want.ChainBox(0, i), g.ChainBox(0, i), approx); diff != "" {
			t.Errorf("chain %d (-want +got):\n%s", i, diff)
		}
	}
	if diff := cmp.Diff(want.AUBox(0), g.AUBox(0), approx); diff != "" {
		t.Errorf("unit box (-want +got):\n%s", diff)
	}
	if !g.ChainBox(0, 2).Empty() {
		t.Error("chain with no atoms has a box")
	}
}

// TestBoxesHoldAtoms checks every usable atom, under every operator, is
// inside its chain's box.
func TestBoxesHoldAtoms(t *testing.T) {
	au := randXtal(t, 3, 3)
	ops := au.Info.TransformationsOrthonormal()
	g := xtal.NewBoxGrid(au.Chains, ops, true, 0)
	if g.NumOps() != 4 {
		t.Fatal("P 21 21 21 should have 4 operators, got", g.NumOps())
	}
	const eps = 1e-9
	for n, op := range ops {
		for i, c := range au.Chains {
			bx := g.ChainBox(n, i)
			for _, a := range c.Atoms {
				x := op.Apply(a.Xyz)
				if x.X < bx.Min.X-eps || x.X > bx.Max.X+eps ||
					x.Y < bx.Min.Y-eps || x.Y > bx.Max.Y+eps ||
					x.Z < bx.Min.Z-eps || x.Z > bx.Max.Z+eps {
					t.Fatalf("op %d chain %d atom %v outside %v", n, i, x, bx)
				}
			}
		}
	}
}
