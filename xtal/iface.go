// 14 Oct 2026

package xtal

import (
	"fmt"
	"sort"

	"github.com/andrew-torda/xtal_iface/contact"
	"github.com/andrew-torda/xtal_iface/pdb/cmmn"
)

// Interface is a pair of chains in contact. The first is chain
// Chains[0] of the unit, where it sits. The second is chain Chains[1]
// moved by Transforms[1].
type Interface struct {
	ID         int // 1 based, set by InterfaceSet.Sorted
	Chains     [2]int
	Names      [2]string
	Atoms      [2][]cmmn.Atom
	Transforms [2]Transform
	Contacts   contact.Set
}

// ifaceKey identifies an interface within one search.
type ifaceKey struct {
	i, j int
	t    Key
}

func (f *Interface) key() ifaceKey {
	return ifaceKey{i: f.Chains[0], j: f.Chains[1], t: f.Transforms[1].Key}
}

// IsInfinite is true if the transform makes an endless fibre of copies.
func (f *Interface) IsInfinite() bool { return f.Transforms[1].IsInfinite() }

// NContacts is the number of atom pairs within the cutoff.
func (f *Interface) NContacts() int { return len(f.Contacts) }

func (f *Interface) String() string {
	inf := ""
	if f.IsInfinite() {
		inf = " infinite"
	}
	return fmt.Sprintf("%3d %s-%s %s %d contacts, closest %.2f%s", f.ID, f.Names[0], f.Names[1],
		f.Transforms[1].Key, len(f.Contacts), f.Contacts.MinDist(), inf)
}

// InterfaceSet collects interfaces, dropping repeats of the same chain
// pair and transform.
type InterfaceSet struct {
	m     map[ifaceKey]*Interface
	order []*Interface
}

func NewInterfaceSet() *InterfaceSet {
	return &InterfaceSet{m: make(map[ifaceKey]*Interface)}
}

// Add puts f in the set and says if it was new.
func (s *InterfaceSet) Add(f *Interface) bool {
	k := f.key()
	if _, ok := s.m[k]; ok {
		return false
	}
	s.m[k] = f
	s.order = append(s.order, f)
	return true
}

// Len is the number of interfaces.
func (s *InterfaceSet) Len() int { return len(s.order) }

// Get looks up the interface between chain i and chain j moved by k.
func (s *InterfaceSet) Get(i, j int, k Key) (*Interface, bool) {
	f, ok := s.m[ifaceKey{i: i, j: j, t: k}]
	return f, ok
}

// List gives the interfaces in the order they were added.
func (s *InterfaceSet) List() []*Interface {
	return append([]*Interface(nil), s.order...)
}

// Sorted puts the biggest interfaces, by number of contacts, first and
// numbers them from 1. Ties go by chain indices and then transform key,
// so the order does not depend on how the search was run.
func (s *InterfaceSet) Sorted() []*Interface {
	ret := s.List()
	sort.Slice(ret, func(a, b int) bool {
		fa, fb := ret[a], ret[b]
		if len(fa.Contacts) != len(fb.Contacts) {
			return len(fa.Contacts) > len(fb.Contacts)
		}
		if fa.Chains[0] != fb.Chains[0] {
			return fa.Chains[0] < fb.Chains[0]
		}
		if fa.Chains[1] != fb.Chains[1] {
			return fa.Chains[1] < fb.Chains[1]
		}
		return fa.Transforms[1].Key.Less(fb.Transforms[1].Key)
	})
	for i, f := range ret {
		f.ID = i + 1
	}
	return ret
}
