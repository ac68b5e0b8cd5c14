package query

import (
	"strings"

	"go.trai.ch/digest/internal/core/domain"
)

const (
	// NoMonthsMessage is shown when no month has accepted papers.
	NoMonthsMessage = "No monthly digests to show yet."
	// NoPapersMessage is shown when nothing was loaded for the whole month set.
	NoPapersMessage = "No accepted papers are available for the selected month set."
	// NoMatchesMessage is shown when filters exclude every paper.
	NoMatchesMessage = "No papers match the current filters."
)

// EmptyMessage explains an empty result list. month is the month key the
// results were restricted to, or AllMonths; stats holds the per-month counters.
func EmptyMessage(q Query, month string, stats map[string]domain.Stats) string {
	month = strings.TrimSpace(month)
	if month == "" {
		month = AllMonths
	}
	switch {
	case q.HasFilters():
		return NoMatchesMessage
	case month == AllMonths:
		return NoPapersMessage
	default:
		return domain.EmptyMessage(month, stats[month])
	}
}
