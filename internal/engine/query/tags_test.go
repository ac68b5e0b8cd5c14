package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/digest/internal/engine/query"
)

func TestTagValueLabel(t *testing.T) {
	assert.Equal(t, "Mamba-SSM", query.TagValueLabel("backbone", "mamba-ssm"))
	assert.Equal(t, "Graph Neural Net", query.TagValueLabel("backbone", "graph-neural-net"))
	assert.Equal(t, "Keeps UPPER", query.TagValueLabel("backbone", "keeps-UPPER"))
	assert.Equal(t, "Unknown Category", query.TagValueLabel("nope", "unknown-category"))
}

func TestTagOptions_FromPapers(t *testing.T) {
	papers := []domain.Paper{
		{Summary: domain.Summary{"tags": map[string]any{"backbone": []any{"transformer", "custom-net", " "}}}},
		{Summary: domain.Summary{"tags": map[string]any{"backbone": []any{"moe", "transformer"}}}},
		{},
	}

	got := query.TagOptions(papers)
	assert.Equal(t, []string{"custom-net", "moe", "transformer"}, got["backbone"])
	assert.Empty(t, got["objective"])
	assert.Len(t, got, len(domain.TagCategories))
}

func TestTagOptions_KnownValuesWhenNothingLoaded(t *testing.T) {
	got := query.TagOptions(nil)
	assert.Equal(t, []string{"diffusion", "mamba-ssm", "moe", "transformer"}, got["backbone"])
	assert.Len(t, got["paper_type"], len(domain.TagLabels["paper_type"]))
}
