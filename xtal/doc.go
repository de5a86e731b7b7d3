// 14 Oct 2026

/*
Package xtal finds the interfaces of a crystal. It takes the chains of one
asymmetric unit and the symmetry of its space group, rebuilds the lattice
around the unit by applying every operator in every neighbouring cell, and
reports each distinct pair of chains with at least one pair of atoms within
a cutoff.

The search is a loop over cells (a,b,c) in [-R,R]^3 and operators n. Most
(cell, operator) combinations are thrown out because the bounding box of
the whole unit does not come near the original. Of the rest, a transform
which is the inverse of one already seen would only give the same
interfaces again, so it is skipped. A transform which is its own inverse
(a pure two-fold, for example) only needs half the chain pairs. Only chain
pairs whose boxes come within the cutoff get an atom level contact
calculation.

# Basic use

	b, err := xtal.NewBuilder(au, xtal.DefaultOptions())
	if err != nil {
		...
	}
	set, err := b.UniqueInterfaces(5.5)
	for _, iface := range set.Sorted() {
		fmt.Println(iface)
	}

Non-crystallographic input (no space group, NMR, models) searches only the
chains of the unit against each other.
*/
package xtal
