// Package loader aggregates month payloads across many months with a bounded worker pool.
package loader

import (
	"context"
	"fmt"

	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/digest/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// MaxConcurrency bounds the number of months fetched at once.
const MaxConcurrency = 3

// Loader fans payload loads out over a shared queue of month rows.
type Loader struct {
	cache  ports.PayloadCache
	run    ports.RunMetrics
	logger ports.Logger
}

// New creates a Loader.
func New(cache ports.PayloadCache, run ports.RunMetrics, log ports.Logger) *Loader {
	return &Loader{cache: cache, run: run, logger: log}
}

// LoadAll loads every row into acc using min(MaxConcurrency, len(rows))
// workers. Each worker pulls the next row when it is free, so slow months do
// not hold back the rest. A failing month is counted on acc and never stops
// the others. LoadAll returns only once every worker has drained the queue;
// its error is non-nil only when ctx was cancelled.
func (l *Loader) LoadAll(ctx context.Context, rows []domain.ManifestMonthRow, view domain.View, acc *Accumulator) error {
	gen := acc.Begin(len(rows))
	defer acc.Finish(gen)

	if len(rows) == 0 {
		return nil
	}

	queue := make(chan domain.ManifestMonthRow, len(rows))
	for _, row := range rows {
		queue <- row
	}
	close(queue)

	var g errgroup.Group
	for range min(MaxConcurrency, len(rows)) {
		g.Go(func() error {
			for {
				if err := ctx.Err(); err != nil {
					return err
				}
				row, ok := <-queue
				if !ok {
					return nil
				}
				l.loadOne(ctx, gen, row, view, acc)
			}
		})
	}
	return g.Wait()
}

func (l *Loader) loadOne(ctx context.Context, gen Generation, row domain.ManifestMonthRow, view domain.View, acc *Accumulator) {
	payload, err := l.cache.Load(ctx, domain.LoadRequest{
		Month:      row.Month,
		SourcePath: row.JSONPath,
		View:       view,
		Revision:   row.Revision,
	})

	var applied bool
	if err != nil {
		l.logger.Warn(fmt.Sprintf("month %s unavailable: %v", row.Month, err))
		applied = acc.Fail(gen, row.Month)
	} else {
		applied = acc.Add(gen, row.Month, payload)
	}

	if applied {
		l.run.NoteMonthLoaded()
	}
}
