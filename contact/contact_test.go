package contact_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/andrew-torda/xtal_iface/contact"
	"github.com/andrew-torda/xtal_iface/pdb/cmmn"
	"github.com/andrew-torda/xtal_iface/pdb/geom"
)

// cloud makes n random carbon atoms in a box of the given width,
// starting at origin.
func cloud(rnd *rand.Rand, n int, origin cmmn.Xyz, width float64) []cmmn.Atom {
	atoms := make([]cmmn.Atom, n)
	for i := range atoms {
		atoms[i] = cmmn.Atom{Name: "C", Elem: "C", Xyz: cmmn.Xyz{
			X: origin.X + rnd.Float64()*width,
			Y: origin.Y + rnd.Float64()*width,
			Z: origin.Z + rnd.Float64()*width,
		}}
	}
	return atoms
}

// brute is the obvious all against all answer.
func brute(a, b []cmmn.Atom, cutoff float64, hetero bool) (s contact.Set) {
	for i := range a {
		for j := range b {
			if !a[i].Usable(hetero) || !b[j].Usable(hetero) {
				continue
			}
			if d := geom.Dist(a[i].Xyz, b[j].Xyz); d <= cutoff {
				s = append(s, contact.Pair{I: i, J: j, Dist: d})
			}
		}
	}
	return s
}

var floatCmp = cmpopts.EquateApprox(0, 1e-9)

func TestDetectorsAgree(t *testing.T) {
	rnd := rand.New(rand.NewSource(1637))
	for trial := 0; trial < 20; trial++ {
		a := cloud(rnd, 300, cmmn.Xyz{}, 20)
		b := cloud(rnd, 300, cmmn.Xyz{X: 15, Y: -3, Z: 2}, 20)
		b[7].Het = true
		b[8].Elem = "H"
		a[3].Xyz = cmmn.BrokenXyz
		cutoff := 1 + rnd.Float64()*4
		for _, hetero := range []bool{true, false} {
			want := brute(a, b, cutoff, hetero)
			for _, name := range []string{"grid", "rtree"} {
				got := contact.New(name).Contacts(a, b, cutoff, hetero)
				if diff := cmp.Diff(want, got, floatCmp, cmpopts.EquateEmpty()); diff != "" {
					t.Fatalf("%s trial %d cutoff %.2f hetero %v (-want +got):\n%s",
						name, trial, cutoff, hetero, diff)
				}
			}
		}
	}
}

var edgetests = []struct {
	name   string
	sep    float64
	cutoff float64
	n      int
}{
	{"inside", 2.0, 3.0, 1},
	{"outside", 2.0, 1.0, 0},
	{"on the cutoff", 3.0, 3.0, 1},
	{"zero cutoff", 0.5, 0, 0},
}

func TestEdges(t *testing.T) {
	for _, test := range edgetests {
		a := []cmmn.Atom{{Name: "CA", Elem: "C", Xyz: cmmn.Xyz{X: -1, Y: 1, Z: 1}}}
		b := []cmmn.Atom{{Name: "CA", Elem: "C", Xyz: cmmn.Xyz{X: -1 + test.sep, Y: 1, Z: 1}}}
		for _, det := range []contact.Detector{contact.Grid{}, contact.RTree{}} {
			s := det.Contacts(a, b, test.cutoff, true)
			if len(s) != test.n {
				t.Errorf("%s %T: got %d contacts want %d", test.name, det, len(s), test.n)
			}
			if test.n == 1 && s.MinDist() != test.sep {
				t.Errorf("%s %T: distance %g", test.name, det, s.MinDist())
			}
		}
	}
	if contact.New("octree") != nil {
		t.Error("unknown detector name should give nil")
	}
	if s := (contact.Grid{}).Contacts(nil, []cmmn.Atom{{Elem: "C"}}, 4, true); len(s) != 0 {
		t.Error("empty chain should give no contacts")
	}
}
