package xtal_test

import (
	"math/rand"
	"testing"

	"github.com/andrew-torda/xtal_iface/crystal"
	"github.com/andrew-torda/xtal_iface/pdb/cmmn"
	"github.com/andrew-torda/xtal_iface/xtal"
)

// chain makes a chain of carbons, one per point.
func chain(id string, pts ...cmmn.Xyz) cmmn.Chain {
	c := cmmn.Chain{ChainID: id}
	for i, x := range pts {
		c.Atoms = append(c.Atoms, cmmn.Atom{Name: "CA", ResName: "GLY", ResNum: i + 1, Elem: "C", Xyz: x})
	}
	return c
}

// blob is a chain of n atoms scattered within width of centre.
func blob(rnd *rand.Rand, id string, n int, centre cmmn.Xyz, width float64) cmmn.Chain {
	pts := make([]cmmn.Xyz, n)
	for i := range pts {
		pts[i] = cmmn.Xyz{
			X: centre.X + (rnd.Float64()-0.5)*width,
			Y: centre.Y + (rnd.Float64()-0.5)*width,
			Z: centre.Z + (rnd.Float64()-0.5)*width,
		}
	}
	return chain(id, pts...)
}

func mustInfo(t *testing.T, sg string, a, b, c, al, be, ga float64) *crystal.Info {
	t.Helper()
	info, err := crystal.NewInfo(sg, a, b, c, al, be, ga)
	if err != nil {
		t.Fatal("making crystal info", err)
	}
	return info
}

// randXtal is a few chains sitting in an orthorhombic cell, close enough
// to their neighbours to make some interfaces.
func randXtal(t *testing.T, seed int64, nChain int) xtal.AsymUnit {
	rnd := rand.New(rand.NewSource(seed))
	info := mustInfo(t, "P 21 21 21", 30, 34, 38, 90, 90, 90)
	var chns cmmn.ChnSl
	for i := 0; i < nChain; i++ {
		ctr := cmmn.Xyz{X: 4 + rnd.Float64()*22, Y: 4 + rnd.Float64()*26, Z: 4 + rnd.Float64()*30}
		chns = append(chns, blob(rnd, string(rune('A'+i)), 40, ctr, 14))
	}
	return xtal.AsymUnit{Chains: chns, Xtal: true, Info: info}
}

func search(t *testing.T, au xtal.AsymUnit, opts xtal.Options, cutoff float64) (*xtal.InterfaceSet, xtal.Stats) {
	t.Helper()
	b, err := xtal.NewBuilder(au, opts)
	if err != nil {
		t.Fatal("NewBuilder", err)
	}
	set, err := b.UniqueInterfaces(cutoff)
	if err != nil {
		t.Fatal("UniqueInterfaces", err)
	}
	return set, b.Stats()
}

// summary is what should not change between runs.
type summary struct {
	ID       int
	Chains   [2]int
	Key      xtal.Key
	Contacts int
	MinDist  float64
}

func summarise(set *xtal.InterfaceSet) (ret []summary) {
	for _, f := range set.Sorted() {
		ret = append(ret, summary{ID: f.ID, Chains: f.Chains, Key: f.Transforms[1].Key,
			Contacts: f.NContacts(), MinDist: f.Contacts.MinDist()})
	}
	return ret
}
