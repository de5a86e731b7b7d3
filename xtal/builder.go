// 14 Oct 2026

package xtal

import (
	"fmt"
	"math"
	"time"

	"github.com/andrew-torda/matrix"
	"golang.org/x/sync/errgroup"

	"github.com/andrew-torda/xtal_iface/contact"
	"github.com/andrew-torda/xtal_iface/crystal"
	"github.com/andrew-torda/xtal_iface/logging"
	"github.com/andrew-torda/xtal_iface/pdb/cmmn"
	"github.com/andrew-torda/xtal_iface/pdb/geom"
)

// DefNumCells is how many neighbour cells we go out in each direction.
// Pruning by bounding boxes makes extra cells almost free. A scan of the
// whole PDB found interfaces out to the 11th neighbour (4jgc), so 12.
const DefNumCells = 12

// AsymUnit is the input to a search. If Xtal is set, Info must have a
// cell and space group. If not, Info is ignored and only the chains of
// the unit are compared with each other.
type AsymUnit struct {
	Chains cmmn.ChnSl
	Xtal   bool
	Info   *crystal.Info
}

// Options change how the search runs, not what it finds.
type Options struct {
	NumCells int     // neighbour cells in each direction
	Hetero   bool    // include hetero atoms
	Pad      float64 // extra margin on every bounding box
	Workers  int     // goroutines for contact calculations, 1 for none
	Verbose  bool    // send progress to Log
	Detector contact.Detector
	Observer Observer
	Log      logging.Logger
}

// DefaultOptions has hetero atoms in, DefNumCells and one worker.
func DefaultOptions() Options {
	return Options{NumCells: DefNumCells, Hetero: true, Workers: 1}
}

// Builder finds the interfaces of one asymmetric unit. It is not safe for
// concurrent use, though it uses several goroutines itself if told to.
type Builder struct {
	au       AsymUnit
	opts     Options
	obs      Observer
	nChain   int
	nOp      int
	numCells int
	ops      []geom.Mat4
	grid     *BoxGrid

	stats   Stats
	visited []Transform
}

// NewBuilder checks the input and options. Errors here are
// configuration errors; nothing has been searched.
func NewBuilder(au AsymUnit, opts Options) (*Builder, error) {
	if opts.NumCells < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNumCells, opts.NumCells)
	}
	if !(opts.Pad >= 0) || math.IsInf(opts.Pad, 1) {
		return nil, fmt.Errorf("%w: %g", ErrPad, opts.Pad)
	}
	b := &Builder{au: au, opts: opts, nChain: len(au.Chains), nOp: 1, numCells: opts.NumCells}
	if au.Xtal {
		if err := au.Info.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNoXtalInfo, err)
		}
		b.nOp = au.Info.SG.Multiplicity()
		b.ops = au.Info.TransformationsOrthonormal()
	} else {
		b.numCells = 0 // nothing outside the unit
		b.ops = []geom.Mat4{geom.Identity}
	}
	if b.opts.Workers < 1 {
		b.opts.Workers = 1
	}
	if b.opts.Detector == nil {
		b.opts.Detector = contact.Grid{}
	}
	if b.opts.Log == nil {
		b.opts.Log = logging.Default()
	}
	b.obs = b.opts.Observer
	if b.obs == nil {
		b.obs = NopObserver{}
	}
	if b.opts.Verbose {
		b.obs = Tee(b.obs, LogObserver{Log: b.opts.Log.Named("xtal")})
	}
	return b, nil
}

// Stats from the last call to UniqueInterfaces.
func (b *Builder) Stats() Stats { return b.stats }

// NumCells is the radius really searched, 0 for non crystallographic
// input.
func (b *Builder) NumCells() int { return b.numCells }

// transform builds the transform for operator n in cell (a,b,c).
func (b *Builder) transform(n, x, y, z int) Transform {
	if !b.au.Xtal {
		return IdentityTransform()
	}
	return NewTransform(b.au.Info, n, x, y, z)
}

// isRedundant says if t is the inverse of something already visited.
// Each transform has only one inverse, so a visited transform that has
// been matched once is dropped from the list.
func (b *Builder) isRedundant(t *Transform) bool {
	for i := range b.visited {
		if t.Equivalent(&b.visited[i]) {
			b.visited = append(b.visited[:i], b.visited[i+1:]...)
			return true
		}
	}
	return false
}

// job is a (cell, operator) that survived the unit level checks.
type job struct {
	t      Transform
	grid   *BoxGrid // boxes translated to t's cell
	selfEq bool
}

// plan walks the cells and operators in order and keeps the ones worth
// looking at in detail. It owns the visited list, so it runs on one
// goroutine.
func (b *Builder) plan(cutoff float64) []job {
	var jobs []job
	r := b.numCells
	for x := -r; x <= r; x++ {
		for y := -r; y <= r; y++ {
			for z := -r; z <= r; z++ {
				var v cmmn.Xyz
				if x != 0 || y != 0 || z != 0 {
					v = b.au.Info.Cell.FracToOrth(cmmn.Xyz{X: float64(x), Y: float64(y), Z: float64(z)})
				}
				tgrid := b.grid.Translated(v)
				for n := 0; n < b.nOp; n++ {
					if !b.grid.AUBox(0).Overlaps(tgrid.AUBox(n), cutoff) {
						b.stats.SkippedAUs++
						b.obs.Skip(SkipAUNoOverlap, Key{Op: n, A: x, B: y, C: z})
						continue
					}
					t := b.transform(n, x, y, z)
					if b.isRedundant(&t) {
						b.stats.SkippedRedundant++
						b.obs.Skip(SkipRedundant, t.Key)
						continue
					}
					b.visited = append(b.visited, t)
					jobs = append(jobs, job{t: t, grid: tgrid, selfEq: t.SelfEquivalent()})
				}
			}
		}
	}
	return jobs
}

// jobResult is what one job found. Jobs never touch the Builder's
// counters, so they can run at the same time.
type jobResult struct {
	ifaces        []*Interface
	pairs         [][2]int
	skippedChains int
	skippedSelf   int
}

// run compares chain i of the unit with chain j moved by the job's
// transform, for every i and j that get past the box checks.
func (b *Builder) run(jb *job, cutoff float64) (res jobResult) {
	origin := jb.t.Key == Key{}
	n := jb.t.Op
	for j := 0; j < b.nChain; j++ {
		var chj []cmmn.Atom // moved lazily, once per j
		for i := 0; i < b.nChain; i++ {
			if jb.selfEq && j > i {
				res.skippedSelf++
				continue
			}
			if origin && i == j {
				continue
			}
			if !b.grid.ChainBox(0, i).Overlaps(jb.grid.ChainBox(n, j), cutoff) {
				res.skippedChains++
				b.obs.Skip(SkipChainNoOverlap, jb.t.Key)
				continue
			}
			if chj == nil {
				if origin {
					chj = b.au.Chains[j].Atoms
				} else {
					chj = jb.t.Apply(b.au.Chains[j].Atoms)
				}
			}
			res.pairs = append(res.pairs, [2]int{i, j})
			chi := b.au.Chains[i].Atoms
			cs := b.opts.Detector.Contacts(chi, chj, cutoff, b.opts.Hetero)
			b.obs.Trial(i, j, jb.t.Key, len(cs))
			if len(cs) == 0 {
				continue
			}
			res.ifaces = append(res.ifaces, &Interface{
				Chains:     [2]int{i, j},
				Names:      [2]string{b.au.Chains[i].ChainID, b.au.Chains[j].ChainID},
				Atoms:      [2][]cmmn.Atom{chi, chj},
				Transforms: [2]Transform{IdentityTransform(), jb.t},
				Contacts:   cs,
			})
		}
	}
	return res
}

// evaluate runs the jobs, on a pool of goroutines if asked. Results are
// kept in job order.
func (b *Builder) evaluate(jobs []job, cutoff float64) []jobResult {
	results := make([]jobResult, len(jobs))
	if b.opts.Workers == 1 {
		for k := range jobs {
			results[k] = b.run(&jobs[k], cutoff)
		}
		return results
	}
	var g errgroup.Group
	g.SetLimit(b.opts.Workers)
	for k := range jobs {
		k := k
		g.Go(func() error {
			results[k] = b.run(&jobs[k], cutoff)
			return nil
		})
	}
	g.Wait() // jobs do not fail
	return results
}

// UniqueInterfaces returns every interface of the crystal: each pair of
// chains, one in the unit and one a symmetry copy, with at least one
// pair of atoms within cutoff of each other.
func (b *Builder) UniqueInterfaces(cutoff float64) (*InterfaceSet, error) {
	if !(cutoff > 0) || math.IsInf(cutoff, 1) {
		return nil, fmt.Errorf("%w: %g", ErrCutoff, cutoff)
	}
	start := time.Now()
	nb := 2*b.numCells + 1
	b.stats = Stats{
		NumCells:   b.numCells,
		Neighbours: nb*nb*nb - 1,
		PairTrials: matrix.NewFMatrix2d(b.nChain, b.nChain),
	}
	b.visited = b.visited[:0]
	b.obs.Start(b.nChain, b.nOp, b.numCells)

	b.grid = NewBoxGrid(b.au.Chains, b.ops, b.opts.Hetero, b.opts.Pad)
	jobs := b.plan(cutoff)
	set := NewInterfaceSet()
	for _, res := range b.evaluate(jobs, cutoff) {
		b.stats.SkippedChains += res.skippedChains
		b.stats.SkippedSelfEquiv += res.skippedSelf
		b.stats.Trials += len(res.pairs)
		for _, p := range res.pairs {
			b.stats.PairTrials.Mat[p[0]][p[1]]++
		}
		for _, f := range res.ifaces {
			set.Add(f)
		}
	}
	set.Sorted()
	b.stats.Interfaces = set.Len()
	b.stats.Elapsed = time.Since(start)
	b.obs.Finish(&b.stats)
	return set, nil
}
