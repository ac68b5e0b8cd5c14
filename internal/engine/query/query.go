// Package query filters, searches and orders aggregated papers.
package query

import (
	"slices"
	"strings"

	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/zerr"
)

// AllMonths selects papers from every loaded month.
const AllMonths = "all"

// Query selects and orders papers.
type Query struct {
	// Text is matched case-insensitively against the paper haystack.
	Text string
	// Tags holds selected values per category. A paper matches when, for every
	// category with a selection, it carries at least one selected value.
	Tags map[string][]string
	// Month restricts results to one month key. Empty or AllMonths disables it.
	Month string
	// Sort orders the results.
	Sort SortOrder
}

// ParseTagFilter splits a "category=value" expression.
func ParseTagFilter(expr string) (category, value string, err error) {
	category, value, ok := strings.Cut(expr, "=")
	category = strings.TrimSpace(category)
	value = strings.TrimSpace(value)
	if !ok || category == "" || value == "" {
		return "", "", zerr.With(domain.ErrInvalidTagFilter, "filter", expr)
	}
	if !domain.IsTagCategory(category) {
		return "", "", zerr.With(domain.ErrUnknownTagCategory, "category", category)
	}
	return category, value, nil
}

// AddTag selects value within category.
func (q *Query) AddTag(category, value string) {
	if q.Tags == nil {
		q.Tags = make(map[string][]string)
	}
	if !slices.Contains(q.Tags[category], value) {
		q.Tags[category] = append(q.Tags[category], value)
	}
}

// HasTagFilters reports whether any tag value is selected.
func (q Query) HasTagFilters() bool {
	for _, values := range q.Tags {
		if len(values) > 0 {
			return true
		}
	}
	return false
}

// HasFilters reports whether a text or tag filter is active.
func (q Query) HasFilters() bool {
	return q.needle() != "" || q.HasTagFilters()
}

// MonthSelected returns the selected month key, or "" for all months.
func (q Query) MonthSelected() string {
	m := strings.TrimSpace(q.Month)
	if m == AllMonths {
		return ""
	}
	return m
}

func (q Query) needle() string {
	return strings.ToLower(strings.TrimSpace(q.Text))
}

// Apply returns the papers matching q in q's sort order. papers is not modified.
func Apply(papers []domain.Paper, q Query) []domain.Paper {
	month := q.MonthSelected()
	needle := q.needle()

	out := make([]domain.Paper, 0, len(papers))
	for _, p := range papers {
		if month != "" && p.Month != month {
			continue
		}
		if needle != "" && !strings.Contains(Haystack(p), needle) {
			continue
		}
		if !MatchesTags(p, q.Tags) {
			continue
		}
		out = append(out, p)
	}
	return Sort(out, q.Sort)
}

// MatchesTags applies tag selections: AND across categories, OR within one.
func MatchesTags(p domain.Paper, selected map[string][]string) bool {
	for _, category := range domain.TagCategories {
		want := selected[category]
		if len(want) == 0 {
			continue
		}
		if !slices.ContainsFunc(p.Summary.Tags(category), func(v string) bool {
			return slices.Contains(want, v)
		}) {
			return false
		}
	}
	return true
}

// Haystack is the lowercased text searched for a paper.
func Haystack(p domain.Paper) string {
	parts := []string{p.Title, p.ArxivIDBase, p.Month, p.PublishedDate}
	parts = append(parts, p.Authors...)
	parts = append(parts,
		p.Summary.OneLiner(),
		p.Summary.UniqueContribution(),
		p.Summary.DetailedSummary(),
	)
	parts = append(parts, p.Summary.KeyPoints()...)
	return strings.ToLower(strings.Join(parts, " "))
}

// PromoteFeatured moves the paper with id to the front, keeping the rest in order.
func PromoteFeatured(papers []domain.Paper, id string) []domain.Paper {
	if id == "" {
		return papers
	}
	idx := slices.IndexFunc(papers, func(p domain.Paper) bool { return p.ArxivIDBase == id })
	if idx <= 0 {
		return papers
	}
	out := make([]domain.Paper, 0, len(papers))
	out = append(out, papers[idx])
	out = append(out, papers[:idx]...)
	return append(out, papers[idx+1:]...)
}
