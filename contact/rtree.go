// 14 Oct 2026

package contact

import (
	"github.com/dhconnelly/rtreego"

	"github.com/andrew-torda/xtal_iface/pdb/cmmn"
	"github.com/andrew-torda/xtal_iface/pdb/geom"
)

// RTree bulk loads the second chain into an R-tree and queries it with a
// cube of half width cutoff around each atom of the first. It is slower
// than Grid for protein sized chains, but does not care how the atoms are
// spread out.
type RTree struct{}

const (
	pointTol = 1e-3 // atoms are stored as tiny boxes
	minChild = 25
	maxChild = 50
)

type atomBox struct {
	j int
	r rtreego.Rect
}

func (ab *atomBox) Bounds() rtreego.Rect { return ab.r }

func toPoint(x cmmn.Xyz) rtreego.Point { return rtreego.Point{x.X, x.Y, x.Z} }

// Contacts satisfies Detector.
func (RTree) Contacts(a, b []cmmn.Atom, cutoff float64, hetero bool) Set {
	if !(cutoff > 0) {
		return nil
	}
	na, nb := usable(a, hetero), usable(b, hetero)
	if len(na) == 0 || len(nb) == 0 {
		return nil
	}
	objs := make([]rtreego.Spatial, len(nb))
	for k, j := range nb {
		objs[k] = &atomBox{j: j, r: toPoint(b[j].Xyz).ToRect(pointTol)}
	}
	tree := rtreego.NewTree(3, minChild, maxChild, objs...)
	var s Set
	for _, i := range na {
		q := toPoint(a[i].Xyz).ToRect(cutoff)
		for _, sp := range tree.SearchIntersect(q) {
			j := sp.(*atomBox).j
			if d, ok := geom.Within(a[i].Xyz, b[j].Xyz, cutoff); ok {
				s = append(s, Pair{I: i, J: j, Dist: d})
			}
		}
	}
	return finish(s)
}
