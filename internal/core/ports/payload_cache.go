package ports

import (
	"context"

	"go.trai.ch/digest/internal/core/domain"
)

//go:generate mockgen -source=payload_cache.go -destination=mocks/mock_payload_cache.go -package=mocks

// PayloadCache resolves month payloads through the cache tiers.
type PayloadCache interface {
	// Load returns the normalized payload for the requested month.
	// It fails only when every tier missed and the fetch failed.
	Load(ctx context.Context, req domain.LoadRequest) (domain.MonthPayload, error)
}

// RunMetrics scopes cache counters to one multi-month aggregation run.
type RunMetrics interface {
	// StartRun opens a run over total months.
	StartRun(total int)
	// NoteMonthLoaded records that one month of the active run completed.
	NoteMonthLoaded()
	// FinalizeRun freezes the active run.
	FinalizeRun()
}
