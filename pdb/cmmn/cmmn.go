// 14 Oct 2026
// Package pdb/cmmn has common definitions for atoms, coordinates and
// chains. Everything here is in orthonormal (Cartesian) coordinates.
package cmmn

import (
	"math"
	"strings"
)

type Xyz struct{ X, Y, Z float64 }
type XyzSl []Xyz // xyz's are coordinates

// BrokenXyz marks an atom whose coordinates could not be read.
var BrokenXyz = Xyz{math.MaxFloat64, 0, -math.MaxFloat64}

func (xyz *Xyz) Ok() bool {
	if *xyz != BrokenXyz {
		return true
	}
	return false
}

// Add returns xyz + v
func (xyz Xyz) Add(v Xyz) Xyz { return Xyz{xyz.X + v.X, xyz.Y + v.Y, xyz.Z + v.Z} }

// Sub returns xyz - v
func (xyz Xyz) Sub(v Xyz) Xyz { return Xyz{xyz.X - v.X, xyz.Y - v.Y, xyz.Z - v.Z} }

// Atom is one atom of a chain.
type Atom struct {
	Name    string // like "CA" or "OG1"
	ResName string // three letter residue name, "ALA"
	ResNum  int    // residue number from file. Not a real index
	Elem    string // element symbol, "C", "H", "FE"
	Het     bool   // came from a HETATM record
	Xyz     Xyz
}

// IsHydrogen says if the atom is hydrogen or deuterium. If the element
// is missing, we guess from the first letter of the name.
func (a *Atom) IsHydrogen() bool {
	e := a.Elem
	if e == "" {
		e = strings.TrimLeft(a.Name, "0123456789")
		if len(e) > 1 {
			e = e[:1]
		}
	}
	switch strings.ToUpper(e) {
	case "H", "D":
		return true
	}
	return false
}

// Usable says if an atom should take part in geometry calculations.
// Hydrogens and broken coordinates never do. Hetero atoms only if
// hetero is set.
func (a *Atom) Usable(hetero bool) bool {
	if !a.Xyz.Ok() || a.IsHydrogen() {
		return false
	}
	if a.Het && !hetero {
		return false
	}
	return true
}

// A simple structure for one model, one chain and its atoms
type Chain struct {
	ChainID string // Name, like "A" or "B"
	MdlNum  int16  // Model number
	Atoms   []Atom
}

// NAtom counts the usable atoms in a chain.
func (c *Chain) NAtom(hetero bool) (n int) {
	for i := range c.Atoms {
		if c.Atoms[i].Usable(hetero) {
			n++
		}
	}
	return n
}

// This is obviously just a slice of chains, but we have to define a type
// if we want to define a method on it
type ChnSl []Chain

// ChainNames returns a slice with the names of the chains.
func (chns ChnSl) ChainNames() (ret []string) {
	ret = make([]string, len(chns))
	for i, k := range chns {
		ret[i] = k.ChainID
	}
	return
}
