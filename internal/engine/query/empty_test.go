package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/digest/internal/engine/query"
)

func TestEmptyMessage(t *testing.T) {
	stats := map[string]domain.Stats{
		"2024-05": {Candidates: 12, Accepted: 0},
		"2024-06": {Candidates: 4, Accepted: 2, Summarized: 0},
	}
	filtered := query.Query{Text: "transformer"}

	tests := []struct {
		name  string
		q     query.Query
		month string
		want  string
	}{
		{"filters win", filtered, "2024-05", query.NoMatchesMessage},
		{"all months", query.Query{}, query.AllMonths, query.NoPapersMessage},
		{"blank month means all", query.Query{}, "", query.NoPapersMessage},
		{"rejected by triage", query.Query{}, "2024-05", "No papers were accepted by triage for May 2024."},
		{"no summaries", query.Query{}, "2024-06", "Accepted papers exist for June 2024, but summaries are unavailable."},
		{"unknown month", query.Query{}, "2024-07", "No arXiv candidates were found for July 2024."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, query.EmptyMessage(tt.q, tt.month, stats))
		})
	}
}
