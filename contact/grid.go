// 14 Oct 2026

package contact

import (
	"math"

	"github.com/andrew-torda/xtal_iface/pdb/cmmn"
	"github.com/andrew-torda/xtal_iface/pdb/geom"
)

// Grid hashes the second chain into cubes whose edge is the cutoff, so
// each atom of the first chain only looks at its own cube and the 26
// around it.
type Grid struct{}

type cube [3]int

func cubeOf(x cmmn.Xyz, edge float64) cube {
	return cube{
		int(math.Floor(x.X / edge)),
		int(math.Floor(x.Y / edge)),
		int(math.Floor(x.Z / edge)),
	}
}

// Contacts satisfies Detector.
func (Grid) Contacts(a, b []cmmn.Atom, cutoff float64, hetero bool) Set {
	if !(cutoff > 0) {
		return nil
	}
	na, nb := usable(a, hetero), usable(b, hetero)
	if len(na) == 0 || len(nb) == 0 {
		return nil
	}
	cells := make(map[cube][]int, len(nb))
	for _, j := range nb {
		c := cubeOf(b[j].Xyz, cutoff)
		cells[c] = append(cells[c], j)
	}
	var s Set
	for _, i := range na {
		c := cubeOf(a[i].Xyz, cutoff)
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				for dz := -1; dz <= 1; dz++ {
					for _, j := range cells[cube{c[0] + dx, c[1] + dy, c[2] + dz}] {
						if d, ok := geom.Within(a[i].Xyz, b[j].Xyz, cutoff); ok {
							s = append(s, Pair{I: i, J: j, Dist: d})
						}
					}
				}
			}
		}
	}
	return finish(s)
}
