// Package app implements the application layer for digest.
package app

import (
	"context"
	"fmt"
	"maps"
	"strings"
	"sync"

	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/digest/internal/core/ports"
	"go.trai.ch/digest/internal/engine/loader"
	"go.trai.ch/digest/internal/engine/monthcache"
	"go.trai.ch/digest/internal/engine/normalize"
	"go.trai.ch/digest/internal/engine/query"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	cfg     domain.Config
	fetcher ports.Fetcher
	cache   *monthcache.Cache
	loader  *loader.Loader
	tracer  ports.Tracer
	logger  ports.Logger

	manifestOnce sync.Once
	manifest     domain.Manifest

	// Explore runs never overlap. A newer call cancels the run in flight and
	// waits for it to finish, so run metrics and results belong to one run.
	runMu     sync.Mutex
	cancelMu  sync.Mutex
	runSeq    uint64
	cancelRun context.CancelFunc
	results   *loader.Accumulator
}

// New creates a new App instance.
func New(
	cfg domain.Config,
	fetcher ports.Fetcher,
	cache *monthcache.Cache,
	ld *loader.Loader,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		cfg:     cfg,
		fetcher: fetcher,
		cache:   cache,
		loader:  ld,
		tracer:  tracer,
		logger:  log,
		results: loader.NewAccumulator(),
	}
}

// Manifest returns the months manifest. It is fetched once; when it cannot be
// loaded the configured fallback months are used instead.
func (a *App) Manifest(ctx context.Context) domain.Manifest {
	a.manifestOnce.Do(func() {
		raw, err := a.fetcher.Fetch(ctx, a.cfg.ManifestPath)
		if err != nil {
			a.logger.Warn(fmt.Sprintf("manifest unavailable, using fallback months: %v", err))
			raw = nil
		}
		a.manifest = normalize.Manifest(raw, a.cfg.FallbackMonths)
	})
	return a.manifest
}

// manifestStats maps every manifest month to its stats.
func manifestStats(m domain.Manifest) map[string]domain.Stats {
	stats := make(map[string]domain.Stats, len(m.Months))
	for _, row := range m.Months {
		stats[row.Month] = row.Stats
	}
	return stats
}

// MonthCard is one month on the home view.
type MonthCard struct {
	Month    string                `json:"month"`
	Label    string                `json:"label"`
	Href     string                `json:"href"`
	Papers   int                   `json:"papers"`
	Featured *domain.FeaturedPaper `json:"featured"`
}

// YearGroup groups month cards of one year.
type YearGroup struct {
	Year   string      `json:"year"`
	Papers int         `json:"papers"`
	Months []MonthCard `json:"months"`
}

// HomeView lists the months that have accepted papers, newest year first.
type HomeView struct {
	Years   []YearGroup `json:"years"`
	Message string      `json:"message,omitempty"`
}

// Home builds the month index.
func (a *App) Home(ctx context.Context) HomeView {
	rows := a.Manifest(ctx).VisibleMonths()
	if len(rows) == 0 {
		return HomeView{Years: []YearGroup{}, Message: query.NoMonthsMessage}
	}

	var view HomeView
	for _, row := range rows {
		year := row.Month[:min(4, len(row.Month))]
		if n := len(view.Years); n == 0 || view.Years[n-1].Year != year {
			view.Years = append(view.Years, YearGroup{Year: year})
		}
		group := &view.Years[len(view.Years)-1]

		label := row.Label
		if label == "" {
			label = domain.MonthLabel(row.Month)
		}
		group.Papers += row.Stats.Accepted
		group.Months = append(group.Months, MonthCard{
			Month:    row.Month,
			Label:    label,
			Href:     row.Href,
			Papers:   row.Stats.Accepted,
			Featured: row.Featured,
		})
	}
	return view
}

// MonthView is the content of one month page.
type MonthView struct {
	Month      string         `json:"month"`
	Label      string         `json:"label"`
	Stats      domain.Stats   `json:"stats"`
	FeaturedID string         `json:"featured_id"`
	Total      int            `json:"total"`
	Papers     []domain.Paper `json:"papers"`
	Message    string         `json:"message,omitempty"`
	Failed     bool           `json:"failed"`
}

// Month loads one month and applies q to its papers. q's month selection is
// ignored. A month whose payload cannot be fetched is shown empty.
func (a *App) Month(ctx context.Context, month string, q query.Query) (MonthView, error) {
	month = strings.TrimSpace(month)
	if month == "" {
		return MonthView{}, domain.ErrMissingMonth
	}

	manifest := a.Manifest(ctx)
	row, ok := manifest.Lookup(month)
	if !ok {
		return MonthView{}, zerr.With(domain.ErrMonthNotFound, "month", month)
	}

	payload, err := a.cache.Load(ctx, domain.LoadRequest{
		Month:      month,
		SourcePath: row.JSONPath,
		View:       domain.ViewMonth,
		Revision:   row.Revision,
	})
	failed := err != nil
	if failed {
		a.logger.Warn(fmt.Sprintf("month %s unavailable: %v", month, err))
		payload = domain.EmptyPayload(month)
	}

	key := payload.Month
	if key == "" {
		key = month
	}
	stats := manifestStats(manifest)
	stats[key] = payload.Stats

	featured := payload.FeaturedID()
	if featured == "" {
		if fallback, found := manifest.Lookup(key); found && fallback.Featured != nil {
			featured = strings.TrimSpace(fallback.Featured.ArxivIDBase)
		}
	}

	q.Month = ""
	papers := query.PromoteFeatured(query.Apply(payload.Papers, q), featured)

	view := MonthView{
		Month:      key,
		Label:      domain.MonthLabel(key),
		Stats:      payload.Stats,
		FeaturedID: featured,
		Total:      len(payload.Papers),
		Papers:     papers,
		Failed:     failed,
	}
	if len(papers) == 0 {
		view.Message = query.EmptyMessage(q, key, stats)
	}
	return view, nil
}

// ExploreView is the result of a cross-month search.
type ExploreView struct {
	MonthsTotal  int                 `json:"months_total"`
	MonthsLoaded int                 `json:"months_loaded"`
	MonthsFailed int                 `json:"months_failed"`
	Total        int                 `json:"total"`
	Papers       []domain.Paper      `json:"papers"`
	TagOptions   map[string][]string `json:"tag_options"`
	Message      string              `json:"message,omitempty"`
}

// Explore loads every manifest month and searches across them.
func (a *App) Explore(ctx context.Context, q query.Query) (ExploreView, error) {
	ctx, release := a.supersede(ctx)
	defer release()

	a.runMu.Lock()
	defer a.runMu.Unlock()
	if err := ctx.Err(); err != nil {
		return ExploreView{}, zerr.Wrap(err, "explore run interrupted")
	}

	rows := a.Manifest(ctx).Months

	ctx, span := a.tracer.Start(ctx, "explore.run", ports.WithAttribute("months_total", len(rows)))
	defer span.End()

	run := a.cache.Metrics()
	run.StartRun(len(rows))
	err := a.loader.LoadAll(ctx, rows, domain.ViewExplore, a.results)
	run.FinalizeRun()
	if err != nil {
		span.RecordError(err)
		return ExploreView{}, zerr.Wrap(err, "explore run interrupted")
	}

	progress := a.results.Snapshot()
	span.SetAttribute("failed", progress.Failed)

	stats := manifestStats(a.Manifest(ctx))
	maps.Copy(stats, progress.MonthStats)

	papers := query.Apply(progress.Papers, q)
	view := ExploreView{
		MonthsTotal:  progress.Total,
		MonthsLoaded: progress.Loaded,
		MonthsFailed: progress.Failed,
		Total:        len(progress.Papers),
		Papers:       papers,
		TagOptions:   query.TagOptions(progress.Papers),
	}
	if len(papers) == 0 {
		view.Message = query.EmptyMessage(q, q.Month, stats)
	}
	return view, nil
}

// supersede cancels the Explore run in flight, if any, and registers ctx as
// the newest one. release must be called once the run is over.
func (a *App) supersede(ctx context.Context) (context.Context, func()) {
	ctx, cancel := context.WithCancel(ctx)

	a.cancelMu.Lock()
	if a.cancelRun != nil {
		a.cancelRun()
	}
	a.runSeq++
	seq := a.runSeq
	a.cancelRun = cancel
	a.cancelMu.Unlock()

	return ctx, func() {
		a.cancelMu.Lock()
		if a.runSeq == seq {
			a.cancelRun = nil
		}
		a.cancelMu.Unlock()
		cancel()
	}
}

// LoadPayload loads one payload through the cache tiers, bypassing the manifest.
func (a *App) LoadPayload(ctx context.Context, req domain.LoadRequest) (domain.MonthPayload, error) {
	return a.cache.Load(ctx, req)
}

// Stats returns the cache counters.
func (a *App) Stats() domain.CacheStats {
	return a.cache.Stats()
}

// CleanOptions selects what ClearCache removes.
type CleanOptions struct {
	Memory     bool
	Persistent bool
	Stats      bool
}

// CleanResult reports what ClearCache removed.
type CleanResult struct {
	Memory            bool `json:"memory"`
	Persistent        bool `json:"persistent"`
	PersistentRemoved int  `json:"persistent_removed"`
	Stats             bool `json:"stats"`
}

// ClearCache empties the selected cache layers.
func (a *App) ClearCache(ctx context.Context, opts CleanOptions) CleanResult {
	var res CleanResult
	if opts.Memory {
		a.cache.ClearMemory()
		res.Memory = true
	}
	if opts.Persistent {
		res.Persistent = true
		res.PersistentRemoved = a.cache.ClearPersistent(ctx)
	}
	if opts.Stats {
		a.cache.ResetStats()
		res.Stats = true
	}
	return res
}
