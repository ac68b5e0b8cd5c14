package loader

import (
	"maps"
	"slices"
	"sync"

	"go.trai.ch/digest/internal/core/domain"
)

// Generation identifies one aggregation run on an Accumulator.
type Generation uint64

// Progress is a point-in-time copy of an Accumulator.
type Progress struct {
	Generation Generation
	Total      int
	Loaded     int
	Failed     int
	Active     bool
	Papers     []domain.Paper
	MonthStats map[string]domain.Stats
}

// Accumulator collects the results of an aggregation run.
//
// Every run begins a new generation; results tagged with an older generation
// are dropped, so a superseded run can never leak into the current one.
type Accumulator struct {
	mu         sync.Mutex
	generation Generation
	total      int
	loaded     int
	failed     int
	active     bool
	papers     []domain.Paper
	monthStats map[string]domain.Stats
}

// NewAccumulator creates an idle Accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{monthStats: make(map[string]domain.Stats)}
}

// Begin resets the accumulator for a run over total months and returns the
// generation the run's results must carry.
func (a *Accumulator) Begin(total int) Generation {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.generation++
	a.total = total
	a.loaded = 0
	a.failed = 0
	a.active = true
	a.papers = nil
	a.monthStats = make(map[string]domain.Stats)
	return a.generation
}

// Add records a loaded month. It reports false when gen is stale.
func (a *Accumulator) Add(gen Generation, month string, payload domain.MonthPayload) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if gen != a.generation {
		return false
	}
	if month != "" {
		a.monthStats[month] = payload.Stats
	}
	a.papers = append(a.papers, payload.Papers...)
	a.loaded++
	return true
}

// Fail records a month that could not be loaded. The month still counts as
// loaded and contributes empty stats. It reports false when gen is stale.
func (a *Accumulator) Fail(gen Generation, month string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if gen != a.generation {
		return false
	}
	if month != "" {
		a.monthStats[month] = domain.Stats{}
	}
	a.failed++
	a.loaded++
	return true
}

// Finish marks the run of gen as complete. It reports false when gen is stale.
func (a *Accumulator) Finish(gen Generation) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if gen != a.generation {
		return false
	}
	a.active = false
	return true
}

// Snapshot copies the current state.
func (a *Accumulator) Snapshot() Progress {
	a.mu.Lock()
	defer a.mu.Unlock()

	return Progress{
		Generation: a.generation,
		Total:      a.total,
		Loaded:     a.loaded,
		Failed:     a.failed,
		Active:     a.active,
		Papers:     slices.Clone(a.papers),
		MonthStats: maps.Clone(a.monthStats),
	}
}
