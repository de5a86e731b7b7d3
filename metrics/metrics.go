// 15 Oct 2026

// Package metrics counts what interface searches do, with prometheus.
// An Observer is handed to xtal.Options and may be shared by many
// searches.
package metrics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrew-torda/xtal_iface/xtal"
)

const prefix = "xtal_"

// seconds, from a toy unit up to a big virus capsid
var durationBuckets = []float64{.001, .005, .01, .05, .1, .5, 1, 5, 10, 60, 300}

// Observer is an xtal.Observer feeding prometheus collectors. The
// collectors do their own locking, so it can be called from the
// builder's workers.
type Observer struct {
	searches   prometheus.Counter
	skips      *prometheus.CounterVec
	trials     prometheus.Counter
	contacts   prometheus.Counter
	interfaces prometheus.Counter
	chains     prometheus.Gauge
	duration   prometheus.Histogram
}

// NewObserver makes the collectors and registers them. A nil registerer
// means the prometheus default. Registering twice on one registry is an
// error.
func NewObserver(reg prometheus.Registerer) (*Observer, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	o := &Observer{
		searches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: prefix + "searches_total",
			Help: "Interface searches started.",
		}),
		skips: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: prefix + "skipped_total",
			Help: "Things not looked at in detail, by reason.",
		}, []string{"reason"}),
		trials: prometheus.NewCounter(prometheus.CounterOpts{
			Name: prefix + "chain_trials_total",
			Help: "Chain pairs given an atom level contact calculation.",
		}),
		contacts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: prefix + "contacts_total",
			Help: "Atom pairs found within the cutoff.",
		}),
		interfaces: prometheus.NewCounter(prometheus.CounterOpts{
			Name: prefix + "interfaces_total",
			Help: "Unique interfaces reported.",
		}),
		chains: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: prefix + "chains",
			Help: "Chains in the unit of the last search.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    prefix + "search_duration_seconds",
			Help:    "Wall time of whole searches.",
			Buckets: durationBuckets,
		}),
	}
	for _, c := range []prometheus.Collector{o.searches, o.skips, o.trials,
		o.contacts, o.interfaces, o.chains, o.duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("registering search metrics: %w", err)
		}
	}
	return o, nil
}

func (o *Observer) Start(nChain, nOp, nCells int) {
	o.searches.Inc()
	o.chains.Set(float64(nChain))
}

func (o *Observer) Skip(r xtal.SkipReason, _ xtal.Key) {
	o.skips.WithLabelValues(r.String()).Inc()
}

func (o *Observer) Trial(i, j int, _ xtal.Key, nContact int) {
	o.trials.Inc()
	o.contacts.Add(float64(nContact))
}

// Finish takes the self equivalent count from the stats, since the
// builder only counts those.
func (o *Observer) Finish(st *xtal.Stats) {
	o.skips.WithLabelValues(xtal.SkipSelfEquivalent.String()).Add(float64(st.SkippedSelfEquiv))
	o.interfaces.Add(float64(st.Interfaces))
	o.duration.Observe(st.Elapsed.Seconds())
}

// Summary gathers g and writes one line per series, sorted, as
// "name{label="value"} number". Histograms give their count and sum.
func Summary(g prometheus.Gatherer) (string, error) {
	mfs, err := g.Gather()
	if err != nil {
		return "", fmt.Errorf("gathering metrics: %w", err)
	}
	var lines []string
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			var lbl []string
			for _, lp := range m.GetLabel() {
				lbl = append(lbl, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
			}
			name := mf.GetName()
			if len(lbl) > 0 {
				name += "{" + strings.Join(lbl, ",") + "}"
			}
			switch {
			case m.GetCounter() != nil:
				lines = append(lines, fmt.Sprintf("%s %g", name, m.GetCounter().GetValue()))
			case m.GetGauge() != nil:
				lines = append(lines, fmt.Sprintf("%s %g", name, m.GetGauge().GetValue()))
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				lines = append(lines, fmt.Sprintf("%s_count %d", name, h.GetSampleCount()),
					fmt.Sprintf("%s_sum %g", name, h.GetSampleSum()))
			}
		}
	}
	sort.Strings(lines)
	return strings.Join(lines, "\n"), nil
}
