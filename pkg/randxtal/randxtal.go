// 31 July 2020

package randxtal

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"sync"

	"github.com/andrew-torda/xtal_iface/crystal"
	"github.com/andrew-torda/xtal_iface/pdb/cmmn"
	"github.com/andrew-torda/xtal_iface/xtal"
)

const (
	caStep   = 3.8 // distance between consecutive CA's
	hohEvery = 10  // a water after this many residues
)

// RandXtalArgs is the set of arguments passed to the main function
type RandXtalArgs struct {
	Iseed  int64      // random number seed
	Wrtr   io.Writer  // where we write to
	SGName string     // space group, empty for no crystal
	Cell   [6]float64 // a, b, c, alpha, beta, gamma
	NChain int        // number of chains
	Len    int        // residues per chain
	Cutoff float64
	Opts   xtal.Options
}

// randDir is a unit vector pointing anywhere.
func randDir(rnd *rand.Rand) cmmn.Xyz {
	for {
		v := cmmn.Xyz{X: 2*rnd.Float64() - 1, Y: 2*rnd.Float64() - 1, Z: 2*rnd.Float64() - 1}
		if l2 := v.X*v.X + v.Y*v.Y + v.Z*v.Z; l2 > 1e-6 && l2 <= 1 {
			l := math.Sqrt(l2)
			return cmmn.Xyz{X: v.X / l, Y: v.Y / l, Z: v.Z / l}
		}
	}
}

// getchain is a random walk of CA atoms, each with a hydrogen for the
// search to ignore, and the odd water. It starts at start and keeps
// roughly going the same way, so chains are stringy rather than balls.
func getchain(id string, nres int, start cmmn.Xyz, rnd *rand.Rand) cmmn.Chain {
	c := cmmn.Chain{ChainID: id}
	x, dir := start, randDir(rnd)
	for i := 0; i < nres; i++ {
		c.Atoms = append(c.Atoms,
			cmmn.Atom{Name: "CA", ResName: "ALA", ResNum: i + 1, Elem: "C", Xyz: x},
			cmmn.Atom{Name: "HA", ResName: "ALA", ResNum: i + 1, Elem: "H", Xyz: x.Add(cmmn.Xyz{Z: 1.09})})
		if (i+1)%hohEvery == 0 {
			w := randDir(rnd)
			c.Atoms = append(c.Atoms, cmmn.Atom{Name: "O", ResName: "HOH", ResNum: 1000 + i,
				Elem: "O", Het: true, Xyz: x.Add(cmmn.Xyz{X: 3 * w.X, Y: 3 * w.Y, Z: 3 * w.Z})})
		}
		d := randDir(rnd)
		dir = cmmn.Xyz{X: dir.X + 0.7*d.X, Y: dir.Y + 0.7*d.Y, Z: dir.Z + 0.7*d.Z}
		l := math.Sqrt(dir.X*dir.X + dir.Y*dir.Y + dir.Z*dir.Z)
		dir = cmmn.Xyz{X: dir.X / l, Y: dir.Y / l, Z: dir.Z / l}
		x = x.Add(cmmn.Xyz{X: caStep * dir.X, Y: caStep * dir.Y, Z: caStep * dir.Z})
	}
	return c
}

// asymUnit puts NChain chains at random starting points in the cell.
func asymUnit(args *RandXtalArgs, rnd *rand.Rand) (xtal.AsymUnit, error) {
	var au xtal.AsymUnit
	box := func() cmmn.Xyz {
		return cmmn.Xyz{X: rnd.Float64() * 30, Y: rnd.Float64() * 30, Z: rnd.Float64() * 30}
	}
	if args.SGName != "" {
		c := args.Cell
		info, err := crystal.NewInfo(args.SGName, c[0], c[1], c[2], c[3], c[4], c[5])
		if err != nil {
			return au, err
		}
		au.Xtal, au.Info = true, info
		box = func() cmmn.Xyz {
			return info.Cell.FracToOrth(cmmn.Xyz{X: rnd.Float64(), Y: rnd.Float64(), Z: rnd.Float64()})
		}
	}
	for i := 0; i < args.NChain; i++ {
		au.Chains = append(au.Chains, getchain(chainID(i), args.Len, box(), rnd))
	}
	return au, nil
}

// chainID gives A..Z, then a..z, then numbers.
func chainID(i int) string {
	switch {
	case i < 26:
		return string(rune('A' + i))
	case i < 52:
		return string(rune('a' + i - 26))
	}
	return fmt.Sprint(i)
}

// writeIfaces takes interfaces from the channel and writes one line per
// interface.
func writeIfaces(fChan <-chan *xtal.Interface, w io.Writer, wg *sync.WaitGroup) {
	defer wg.Done()
	for f := range fChan {
		fmt.Fprintln(w, f)
	}
}

// RandXtalMain builds a random crystal, searches it for interfaces and
// writes what it found to args.Wrtr. Lines starting with # are headers.
func RandXtalMain(args *RandXtalArgs) error {
	if args.NChain < 1 || args.Len < 1 {
		return fmt.Errorf("need at least one chain and one residue, got %d chains of %d",
			args.NChain, args.Len)
	}
	rnd := rand.New(rand.NewSource(args.Iseed))
	au, err := asymUnit(args, rnd)
	if err != nil {
		return err
	}
	b, err := xtal.NewBuilder(au, args.Opts)
	if err != nil {
		return err
	}
	set, err := b.UniqueInterfaces(args.Cutoff)
	if err != nil {
		return err
	}
	st := b.Stats()

	if au.Xtal {
		fmt.Fprintf(args.Wrtr, "# %s cell %s\n", au.Info.SG, au.Info.Cell)
	} else {
		fmt.Fprintln(args.Wrtr, "# not crystallographic")
	}
	fmt.Fprintf(args.Wrtr, "# %d chains of %d residues, cutoff %.2f, %d cells\n",
		args.NChain, args.Len, args.Cutoff, st.NumCells)
	fmt.Fprintf(args.Wrtr, "# %d trials, %d interfaces\n", st.Trials, st.Interfaces)

	var wg sync.WaitGroup
	fChan := make(chan *xtal.Interface)
	wg.Add(1)
	go writeIfaces(fChan, args.Wrtr, &wg)
	for _, f := range set.Sorted() {
		fChan <- f
	}
	close(fChan)
	wg.Wait()
	return nil
}
