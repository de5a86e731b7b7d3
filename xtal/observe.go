// 14 Oct 2026

package xtal

import (
	"time"

	"github.com/andrew-torda/matrix"

	"github.com/andrew-torda/xtal_iface/logging"
)

// Stats counts what the search did.
type Stats struct {
	NumCells         int // neighbour radius actually used
	Neighbours       int // (2R+1)^3 - 1
	Trials           int // chain pairs that got a contact calculation
	SkippedAUs       int // (cell, operator) with no unit box overlap
	SkippedRedundant int // (cell, operator) that was an inverse of one seen
	SkippedSelfEquiv int // chain pairs dropped because the transform is its own inverse
	SkippedChains    int // chain pairs with no box overlap
	Interfaces       int
	Elapsed          time.Duration

	// PairTrials[i][j] counts contact calculations between chain i and
	// copies of chain j.
	PairTrials *matrix.FMatrix2d
}

// AUTrials is the number of chain pairs within the unit.
func AUTrials(nChain int) int { return nChain * (nChain - 1) / 2 }

// SkipReason says why something was not looked at in detail.
type SkipReason int

const (
	SkipAUNoOverlap SkipReason = iota
	SkipRedundant
	SkipSelfEquivalent
	SkipChainNoOverlap
)

func (r SkipReason) String() string {
	switch r {
	case SkipAUNoOverlap:
		return "au_no_overlap"
	case SkipRedundant:
		return "redundant"
	case SkipSelfEquivalent:
		return "self_equivalent"
	case SkipChainNoOverlap:
		return "chain_no_overlap"
	}
	return "unknown"
}

// Observer is told what the search is doing. It plays no part in the
// search. Calls during evaluation may come from several goroutines.
type Observer interface {
	Start(nChain, nOp, nCells int)
	Skip(r SkipReason, k Key)
	Trial(i, j int, k Key, nContact int)
	Finish(st *Stats)
}

// NopObserver ignores everything.
type NopObserver struct{}

func (NopObserver) Start(int, int, int)      {}
func (NopObserver) Skip(SkipReason, Key)     {}
func (NopObserver) Trial(int, int, Key, int) {}
func (NopObserver) Finish(*Stats)            {}

// LogObserver writes search progress to a Logger. Summaries are Info,
// single events Debug.
type LogObserver struct {
	Log logging.Logger
}

func (o LogObserver) Start(nChain, nOp, nCells int) {
	nb := (2*nCells+1)*(2*nCells+1)*(2*nCells+1) - 1
	o.Log.Info("interface search",
		logging.Int("chains", nChain),
		logging.Int("operators", nOp),
		logging.Int("cells", nCells),
		logging.Int("au_trials", AUTrials(nChain)),
		logging.Int("neighbour_trials", nChain*nOp*nChain*nb))
}

func (o LogObserver) Skip(r SkipReason, k Key) {
	if r == SkipAUNoOverlap || r == SkipChainNoOverlap {
		return // far too many to be interesting
	}
	o.Log.Debug("skip", logging.String("reason", r.String()), logging.Any("transform", k))
}

func (o LogObserver) Trial(i, j int, k Key, nContact int) {
	o.Log.Debug("trial", logging.Int("i", i), logging.Int("j", j),
		logging.Any("transform", k), logging.Int("contacts", nContact))
}

func (o LogObserver) Finish(st *Stats) {
	o.Log.Info("interface search done",
		logging.Int("trials", st.Trials),
		logging.Duration("elapsed", st.Elapsed),
		logging.Int("skipped_au", st.SkippedAUs),
		logging.Int("skipped_chains", st.SkippedChains),
		logging.Int("skipped_redundant", st.SkippedRedundant),
		logging.Int("skipped_self_equivalent", st.SkippedSelfEquiv),
		logging.Int("interfaces", st.Interfaces))
}

// Tee sends every call to all of obs.
func Tee(obs ...Observer) Observer { return tee(obs) }

type tee []Observer

func (t tee) Start(nChain, nOp, nCells int) {
	for _, o := range t {
		o.Start(nChain, nOp, nCells)
	}
}
func (t tee) Skip(r SkipReason, k Key) {
	for _, o := range t {
		o.Skip(r, k)
	}
}
func (t tee) Trial(i, j int, k Key, nContact int) {
	for _, o := range t {
		o.Trial(i, j, k, nContact)
	}
}
func (t tee) Finish(st *Stats) {
	for _, o := range t {
		o.Finish(st)
	}
}
