// 14 Oct 2026

// Package contact finds pairs of atoms, one from each of two chains,
// that are no further apart than a cutoff. There are two detectors, a
// hashed grid and an R-tree, which must give identical answers.
package contact

import (
	"sort"

	"github.com/andrew-torda/xtal_iface/pdb/cmmn"
)

// Pair is one contact. I indexes the first atom slice, J the second.
type Pair struct {
	I, J int
	Dist float64
}

// Set is a list of contacts, sorted by I then J.
type Set []Pair

// Len, Less, Swap let us sort a Set
func (s Set) Len() int      { return len(s) }
func (s Set) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
func (s Set) Less(i, j int) bool {
	if s[i].I != s[j].I {
		return s[i].I < s[j].I
	}
	return s[i].J < s[j].J
}

// MinDist is the closest contact, 0 for an empty set.
func (s Set) MinDist() (d float64) {
	for i, p := range s {
		if i == 0 || p.Dist < d {
			d = p.Dist
		}
	}
	return d
}

// Detector is anything that can find contacts between two atom slices.
// Hydrogens and broken coordinates are ignored, hetero atoms only
// count if hetero is set. Implementations must be safe to call from
// several goroutines.
type Detector interface {
	Contacts(a, b []cmmn.Atom, cutoff float64, hetero bool) Set
}

// New returns a detector by name, "grid" or "rtree". Anything else gets
// nil.
func New(name string) Detector {
	switch name {
	case "", "grid":
		return Grid{}
	case "rtree":
		return RTree{}
	}
	return nil
}

// usable returns the indices of atoms we should look at.
func usable(atoms []cmmn.Atom, hetero bool) []int {
	ndx := make([]int, 0, len(atoms))
	for i := range atoms {
		if atoms[i].Usable(hetero) {
			ndx = append(ndx, i)
		}
	}
	return ndx
}

func finish(s Set) Set {
	sort.Sort(s)
	return s
}
