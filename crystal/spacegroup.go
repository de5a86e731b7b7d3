// 14 Oct 2026

package crystal

import (
	"fmt"
	"strings"

	"github.com/andrew-torda/xtal_iface/pdb/geom"
)

// SpaceGroup is a numbered space group and its operators in fractional
// coordinates. Operator 0 is always the identity.
type SpaceGroup struct {
	Num     int
	Name    string // Hermann-Mauguin, full form as in a CRYST1 record
	Alt     []string
	symops  []string
	fracOps []geom.Mat4
}

// sgTable has the space groups seen most often for proteins plus the
// simplest centrosymmetric one. Rhombohedral groups come twice: H for
// hexagonal axes, as in PDB files, and R for rhombohedral ones. Operators are the general positions of
// the International Tables, centring translations already expanded.
var sgTable = []SpaceGroup{
	{Num: 1, Name: "P 1", symops: []string{"x,y,z"}},
	{Num: 2, Name: "P -1", symops: []string{"x,y,z", "-x,-y,-z"}},
	{Num: 3, Name: "P 1 2 1", Alt: []string{"P 2"},
		symops: []string{"x,y,z", "-x,y,-z"}},
	{Num: 4, Name: "P 1 21 1", Alt: []string{"P 21"},
		symops: []string{"x,y,z", "-x,y+1/2,-z"}},
	{Num: 5, Name: "C 1 2 1", Alt: []string{"C 2"},
		symops: []string{"x,y,z", "-x,y,-z", "x+1/2,y+1/2,z", "-x+1/2,y+1/2,-z"}},
	{Num: 16, Name: "P 2 2 2",
		symops: []string{"x,y,z", "-x,-y,z", "-x,y,-z", "x,-y,-z"}},
	{Num: 17, Name: "P 2 2 21",
		symops: []string{"x,y,z", "-x,-y,z+1/2", "-x,y,-z+1/2", "x,-y,-z"}},
	{Num: 18, Name: "P 21 21 2",
		symops: []string{"x,y,z", "-x,-y,z", "-x+1/2,y+1/2,-z", "x+1/2,-y+1/2,-z"}},
	{Num: 19, Name: "P 21 21 21",
		symops: []string{"x,y,z", "-x+1/2,-y,z+1/2", "-x,y+1/2,-z+1/2", "x+1/2,-y+1/2,-z"}},
	{Num: 20, Name: "C 2 2 21",
		symops: []string{"x,y,z", "-x,-y,z+1/2", "-x,y,-z+1/2", "x,-y,-z",
			"x+1/2,y+1/2,z", "-x+1/2,-y+1/2,z+1/2", "-x+1/2,y+1/2,-z+1/2", "x+1/2,-y+1/2,-z"}},
	{Num: 23, Name: "I 2 2 2",
		symops: []string{"x,y,z", "-x,-y,z", "-x,y,-z", "x,-y,-z",
			"x+1/2,y+1/2,z+1/2", "-x+1/2,-y+1/2,z+1/2", "-x+1/2,y+1/2,-z+1/2", "x+1/2,-y+1/2,-z+1/2"}},
	{Num: 24, Name: "I 21 21 21",
		symops: []string{"x,y,z", "-x+1/2,-y,z+1/2", "-x,y+1/2,-z+1/2", "x+1/2,-y+1/2,-z",
			"x+1/2,y+1/2,z+1/2", "-x,-y+1/2,z", "-x+1/2,y,-z", "x,-y,-z+1/2"}},
	{Num: 75, Name: "P 4",
		symops: []string{"x,y,z", "-x,-y,z", "-y,x,z", "y,-x,z"}},
	{Num: 76, Name: "P 41",
		symops: []string{"x,y,z", "-x,-y,z+1/2", "-y,x,z+1/4", "y,-x,z+3/4"}},
	{Num: 78, Name: "P 43",
		symops: []string{"x,y,z", "-x,-y,z+1/2", "-y,x,z+3/4", "y,-x,z+1/4"}},
	{Num: 92, Name: "P 41 21 2",
		symops: []string{"x,y,z", "-x,-y,z+1/2", "-y+1/2,x+1/2,z+1/4", "y+1/2,-x+1/2,z+3/4",
			"-x+1/2,y+1/2,-z+1/4", "x+1/2,-y+1/2,-z+3/4", "y,x,-z", "-y,-x,-z+1/2"}},
	{Num: 96, Name: "P 43 21 2",
		symops: []string{"x,y,z", "-x,-y,z+1/2", "-y+1/2,x+1/2,z+3/4", "y+1/2,-x+1/2,z+1/4",
			"-x+1/2,y+1/2,-z+3/4", "x+1/2,-y+1/2,-z+1/4", "y,x,-z", "-y,-x,-z+1/2"}},
	{Num: 143, Name: "P 3",
		symops: []string{"x,y,z", "-y,x-y,z", "-x+y,-x,z"}},
	{Num: 144, Name: "P 31",
		symops: []string{"x,y,z", "-y,x-y,z+1/3", "-x+y,-x,z+2/3"}},
	{Num: 145, Name: "P 32",
		symops: []string{"x,y,z", "-y,x-y,z+2/3", "-x+y,-x,z+1/3"}},
	{Num: 146, Name: "H 3", Alt: []string{"R 3 H"},
		symops: []string{"x,y,z", "-y,x-y,z", "-x+y,-x,z",
			"x+2/3,y+1/3,z+1/3", "-y+2/3,x-y+1/3,z+1/3", "-x+y+2/3,-x+1/3,z+1/3",
			"x+1/3,y+2/3,z+2/3", "-y+1/3,x-y+2/3,z+2/3", "-x+y+1/3,-x+2/3,z+2/3"}},
	{Num: 146, Name: "R 3", Alt: []string{"R 3 R"},
		symops: []string{"x,y,z", "z,x,y", "y,z,x"}},
	{Num: 152, Name: "P 31 2 1",
		symops: []string{"x,y,z", "-y,x-y,z+1/3", "-x+y,-x,z+2/3",
			"y,x,-z", "x-y,-y,-z+2/3", "-x,-x+y,-z+1/3"}},
	{Num: 154, Name: "P 32 2 1",
		symops: []string{"x,y,z", "-y,x-y,z+2/3", "-x+y,-x,z+1/3",
			"y,x,-z", "x-y,-y,-z+1/3", "-x,-x+y,-z+2/3"}},
	{Num: 155, Name: "H 3 2", Alt: []string{"R 3 2 H"},
		symops: []string{"x,y,z", "-y,x-y,z", "-x+y,-x,z", "y,x,-z", "x-y,-y,-z", "-x,-x+y,-z",
			"x+2/3,y+1/3,z+1/3", "-y+2/3,x-y+1/3,z+1/3", "-x+y+2/3,-x+1/3,z+1/3",
			"y+2/3,x+1/3,-z+1/3", "x-y+2/3,-y+1/3,-z+1/3", "-x+2/3,-x+y+1/3,-z+1/3",
			"x+1/3,y+2/3,z+2/3", "-y+1/3,x-y+2/3,z+2/3", "-x+y+1/3,-x+2/3,z+2/3",
			"y+1/3,x+2/3,-z+2/3", "x-y+1/3,-y+2/3,-z+2/3", "-x+1/3,-x+y+2/3,-z+2/3"}},
	{Num: 168, Name: "P 6",
		symops: []string{"x,y,z", "-y,x-y,z", "-x+y,-x,z", "-x,-y,z", "y,-x+y,z", "x-y,x,z"}},
	{Num: 169, Name: "P 61",
		symops: []string{"x,y,z", "-y,x-y,z+1/3", "-x+y,-x,z+2/3", "-x,-y,z+1/2",
			"y,-x+y,z+5/6", "x-y,x,z+1/6"}},
	{Num: 170, Name: "P 65",
		symops: []string{"x,y,z", "-y,x-y,z+2/3", "-x+y,-x,z+1/3", "-x,-y,z+1/2",
			"y,-x+y,z+1/6", "x-y,x,z+5/6"}},
	{Num: 178, Name: "P 61 2 2",
		symops: []string{"x,y,z", "-y,x-y,z+1/3", "-x+y,-x,z+2/3", "-x,-y,z+1/2",
			"y,-x+y,z+5/6", "x-y,x,z+1/6", "y,x,-z+1/3", "x-y,-y,-z",
			"-x,-x+y,-z+2/3", "-y,-x,-z+5/6", "-x+y,y,-z+1/2", "x,x-y,-z+1/6"}},
	{Num: 179, Name: "P 65 2 2",
		symops: []string{"x,y,z", "-y,x-y,z+2/3", "-x+y,-x,z+1/3", "-x,-y,z+1/2",
			"y,-x+y,z+1/6", "x-y,x,z+5/6", "y,x,-z+2/3", "x-y,-y,-z",
			"-x,-x+y,-z+1/3", "-y,-x,-z+1/6", "-x+y,y,-z+1/2", "x,x-y,-z+5/6"}},
}

// squash takes out blanks and case, so "P 21 21 21" and "p212121" match.
func squash(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), ""))
}

// Lookup finds a space group by name. It returns a fresh copy with
// parsed operators, so callers may not disturb each other.
func Lookup(name string) (*SpaceGroup, error) {
	want := squash(name)
	for i := range sgTable {
		sg := &sgTable[i]
		match := squash(sg.Name) == want
		for _, a := range sg.Alt {
			match = match || squash(a) == want
		}
		if match {
			return NewSpaceGroup(sg.Num, sg.Name, sg.symops)
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrSpaceGroup, name)
}

// LookupNum finds a space group by its International Tables number.
func LookupNum(num int) (*SpaceGroup, error) {
	for i := range sgTable {
		if sgTable[i].Num == num {
			return NewSpaceGroup(num, sgTable[i].Name, sgTable[i].symops)
		}
	}
	return nil, fmt.Errorf("%w: number %d", ErrSpaceGroup, num)
}

// NewSpaceGroup builds a space group from operator strings. The first
// must be the identity.
func NewSpaceGroup(num int, name string, symops []string) (*SpaceGroup, error) {
	sg := &SpaceGroup{Num: num, Name: name, symops: symops}
	if len(symops) == 0 {
		return nil, fmt.Errorf("%w: %s has no operators", ErrSpaceGroup, name)
	}
	for _, s := range symops {
		m, err := ParseSymop(s)
		if err != nil {
			return nil, err
		}
		sg.fracOps = append(sg.fracOps, m)
	}
	if !sg.fracOps[0].ApproxEqual(geom.Identity, 0) {
		return nil, fmt.Errorf("%w: first operator of %s is %q, not the identity",
			ErrSpaceGroup, name, symops[0])
	}
	return sg, nil
}

// Multiplicity is the number of operators.
func (sg *SpaceGroup) Multiplicity() int { return len(sg.fracOps) }

// Transformation returns operator n in fractional coordinates.
func (sg *SpaceGroup) Transformation(n int) geom.Mat4 { return sg.fracOps[n] }

// Transformations returns a copy of all the operators, fractional.
func (sg *SpaceGroup) Transformations() []geom.Mat4 {
	return append([]geom.Mat4(nil), sg.fracOps...)
}

// Symop is the text of operator n.
func (sg *SpaceGroup) Symop(n int) string { return sg.symops[n] }

func (sg *SpaceGroup) String() string { return fmt.Sprintf("%s (%d)", sg.Name, sg.Num) }

// Names lists the space groups in the table.
func Names() (ret []string) {
	for _, sg := range sgTable {
		ret = append(ret, sg.Name)
	}
	return ret
}
