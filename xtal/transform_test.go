package xtal_test

import (
	"testing"

	"github.com/andrew-torda/xtal_iface/pdb/cmmn"
	"github.com/andrew-torda/xtal_iface/pdb/geom"
	"github.com/andrew-torda/xtal_iface/xtal"
)

func TestClassify(t *testing.T) {
	type tcase struct {
		sg              string
		op, a, b, c     int
		fold            int
		screw, infinite bool
		selfEq          bool
	}
	tests := []tcase{
		{sg: "P 1", fold: 1, selfEq: true},
		{sg: "P 1", a: 1, fold: 1, infinite: true},
		{sg: "P 1", b: -2, c: 1, fold: 1, infinite: true},
		{sg: "P -1", op: 1, fold: -1, selfEq: true},
		{sg: "P -1", op: 1, a: 1, c: -1, fold: -1, selfEq: true},
		{sg: "P 2", op: 1, fold: 2, selfEq: true},
		{sg: "P 2", op: 1, a: 1, fold: 2, selfEq: true},
		{sg: "P 2", op: 1, b: 1, fold: 2, screw: true, infinite: true},
		{sg: "P 21", op: 1, fold: 2, screw: true, infinite: true},
		{sg: "P 21 21 21", op: 1, fold: 2, screw: true, infinite: true},
		{sg: "P 21 21 21", op: 3, c: 1, fold: 2, screw: true, infinite: true},
		{sg: "P 3", op: 1, fold: 3},
		{sg: "P 31", op: 1, fold: 3, screw: true, infinite: true},
		{sg: "P 31", op: 2, c: -1, fold: 3, screw: true, infinite: true},
		{sg: "P 4", op: 2, fold: 4},
		{sg: "P 41", op: 2, fold: 4, screw: true, infinite: true},
		{sg: "P 6", op: 4, fold: 6},
		{sg: "C 2", op: 2, fold: 1, infinite: true},
	}
	for _, tc := range tests {
		info := mustInfo(t, tc.sg, 40, 50, 60, 90, 90, 120)
		if tc.sg == "P 2" || tc.sg == "P 21" || tc.sg == "C 2" {
			info = mustInfo(t, tc.sg, 40, 50, 60, 90, 105, 90)
		}
		tr := xtal.NewTransform(info, tc.op, tc.a, tc.b, tc.c)
		if f := tr.Fold(); f != tc.fold {
			t.Errorf("%s %s fold got %d want %d", tc.sg, tr, f, tc.fold)
		}
		if s := tr.IsScrew(); s != tc.screw {
			t.Errorf("%s %s screw got %v want %v", tc.sg, tr, s, tc.screw)
		}
		if inf := tr.IsInfinite(); inf != tc.infinite {
			t.Errorf("%s %s infinite got %v want %v", tc.sg, tr, inf, tc.infinite)
		}
		if s := tr.SelfEquivalent(); s != tc.selfEq {
			t.Errorf("%s %s self equivalent got %v want %v", tc.sg, tr, s, tc.selfEq)
		}
	}
}

// TestEquivalent checks the pairs of inverses we can work out by hand.
func TestEquivalent(t *testing.T) {
	info := mustInfo(t, "P 21", 40, 50, 60, 90, 105, 90)
	t1 := xtal.NewTransform(info, 1, 0, 0, 0)
	t2 := xtal.NewTransform(info, 1, 0, -1, 0)
	t3 := xtal.NewTransform(info, 1, 0, 1, 0)
	if !t1.Equivalent(&t2) || !t2.Equivalent(&t1) {
		t.Error(t1, "and", t2, "should be inverses")
	}
	if t1.Equivalent(&t3) {
		t.Error(t1, "and", t3, "are not inverses")
	}
	id := xtal.IdentityTransform()
	if !id.IsIdentity() || !id.SelfEquivalent() || id.IsInfinite() {
		t.Error("identity misclassified")
	}

	info = mustInfo(t, "P 31", 50, 50, 70, 90, 90, 120)
	a := xtal.NewTransform(info, 1, 1, 0, 0)
	for n := 0; n < 3; n++ {
		for x := -2; x <= 2; x++ {
			for y := -2; y <= 2; y++ {
				for z := -2; z <= 2; z++ {
					b := xtal.NewTransform(info, n, x, y, z)
					prod := a.Orth.Mul(b.Orth)
					orth := prod.ApproxEqual(geom.Identity, 1e-6)
					if orth != a.Equivalent(&b) {
						t.Errorf("%s %s fractional and orthonormal tests disagree", a, b)
					}
				}
			}
		}
	}
}

// TestApply checks a transformed chain lands where the operator says and
// the original is left alone.
func TestApply(t *testing.T) {
	info := mustInfo(t, "P 21 21 21", 30, 34, 38, 90, 90, 90)
	tr := xtal.NewTransform(info, 1, 1, 0, -1)
	frac := cmmn.Xyz{X: 0.1, Y: 0.2, Z: 0.3}
	c := chain("A", info.Cell.FracToOrth(frac))
	c.Atoms = append(c.Atoms, cmmn.Atom{Name: "CB", Elem: "C", Xyz: cmmn.BrokenXyz})
	moved := tr.Apply(c.Atoms)

	// -x+1/2+1, -y, z+1/2-1
	want := info.Cell.FracToOrth(cmmn.Xyz{X: 1.4, Y: -0.2, Z: -0.2})
	if d := geom.Dist(moved[0].Xyz, want); d > 1e-9 {
		t.Errorf("moved atom %v want %v", moved[0].Xyz, want)
	}
	if moved[1].Xyz != cmmn.BrokenXyz {
		t.Error("broken coordinates were moved")
	}
	if geom.Dist(c.Atoms[0].Xyz, info.Cell.FracToOrth(frac)) > 1e-12 {
		t.Error("Apply changed its input")
	}
}

func TestKeyLess(t *testing.T) {
	keys := []xtal.Key{{}, {C: 1}, {B: 1, C: -1}, {A: 1, B: -3}, {Op: 1, A: -5}}
	for i := range keys {
		for j := range keys {
			if got := keys[i].Less(keys[j]); got != (i < j) {
				t.Errorf("%v < %v got %v", keys[i], keys[j], got)
			}
		}
	}
	if s := (xtal.Key{Op: 2, A: -1, B: 0, C: 1}).String(); s != "[2-(-1,0,1)]" {
		t.Error("key string", s)
	}
}
