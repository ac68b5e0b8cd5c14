// Package metrics records cache tier hits and writes, cumulatively and per run.
package metrics

import (
	"sync"

	"go.trai.ch/digest/internal/core/domain"
)

// Recorder keeps cumulative cache counters plus a snapshot of the current or
// most recent aggregation run. It is safe for concurrent use.
type Recorder struct {
	mu         sync.Mutex
	cumulative domain.CumulativeStats
	active     *domain.RunStats
	lastRun    *domain.RunStats
}

// NewRecorder creates a Recorder with every counter at zero.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// StartRun opens a fresh run over total months. The empty snapshot is also
// published as the last run so an in-progress run is observable.
func (r *Recorder) StartRun(total int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if total < 0 {
		total = 0
	}
	r.active = &domain.RunStats{MonthsTotal: total}
	snapshot := *r.active
	r.lastRun = &snapshot
}

// Increment bumps metric cumulatively and, when it is a run counter, on the active run.
// Unknown metrics are ignored.
func (r *Recorder) Increment(metric domain.Metric) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch metric {
	case domain.MetricMapHits:
		r.cumulative.MapHits++
		if r.active != nil {
			r.active.MapHits++
		}
	case domain.MetricLocalHits:
		r.cumulative.LocalHits++
		if r.active != nil {
			r.active.LocalHits++
		}
	case domain.MetricNetworkHits:
		r.cumulative.NetworkHits++
		if r.active != nil {
			r.active.NetworkHits++
		}
	case domain.MetricCacheWrites:
		r.cumulative.CacheWrites++
	}
}

// NoteMonthLoaded counts one completed month on the active run.
func (r *Recorder) NoteMonthLoaded() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.active != nil {
		r.active.MonthsLoaded++
	}
}

// FinalizeRun freezes the active run into the last run.
func (r *Recorder) FinalizeRun() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.active == nil {
		return
	}
	snapshot := *r.active
	r.lastRun = &snapshot
	r.active = nil
}

// CurrentStats returns the cumulative counters and the most relevant run.
func (r *Recorder) CurrentStats() domain.CacheStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats := domain.CacheStats{Cumulative: r.cumulative}
	switch {
	case r.active != nil:
		run := *r.active
		stats.LastRun = &run
	case r.lastRun != nil:
		run := *r.lastRun
		stats.LastRun = &run
	}
	return stats
}

// Reset zeroes every counter and forgets all runs.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cumulative = domain.CumulativeStats{}
	r.active = nil
	r.lastRun = nil
}
