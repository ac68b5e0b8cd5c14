package domain

import (
	"strconv"
	"strings"
	"time"
)

// EmptyStateUnknown is the empty-state classification used when the manifest has none.
const EmptyStateUnknown = "unknown"

// FeaturedPaper points at the paper highlighted for a month.
type FeaturedPaper struct {
	ArxivIDBase string `json:"arxiv_id_base"`
	Title       string `json:"title"`
	OneLiner    string `json:"one_liner"`
	AbsURL      string `json:"abs_url"`
}

// ManifestMonthRow describes one published month.
type ManifestMonthRow struct {
	Month      string         `json:"month"`
	Label      string         `json:"month_label"`
	Href       string         `json:"href"`
	JSONPath   string         `json:"json_path"`
	Revision   string         `json:"month_rev"`
	Stats      Stats          `json:"stats"`
	EmptyState string         `json:"empty_state"`
	Featured   *FeaturedPaper `json:"featured"`
}

// HasPapers reports whether triage accepted at least one paper for the month.
func (r ManifestMonthRow) HasPapers() bool {
	return r.Stats.Accepted > 0
}

// Manifest lists every published month, newest first.
// It is loaded once and never modified afterwards.
type Manifest struct {
	Latest string             `json:"latest"`
	Months []ManifestMonthRow `json:"months"`
}

// Lookup returns the row for month.
func (m Manifest) Lookup(month string) (ManifestMonthRow, bool) {
	for _, row := range m.Months {
		if row.Month == month {
			return row, true
		}
	}
	return ManifestMonthRow{}, false
}

// VisibleMonths returns the rows that have accepted papers.
func (m Manifest) VisibleMonths() []ManifestMonthRow {
	out := make([]ManifestMonthRow, 0, len(m.Months))
	for _, row := range m.Months {
		if row.HasPapers() {
			out = append(out, row)
		}
	}
	return out
}

// MonthLabel renders a "YYYY-MM" key as "May 2024".
// Keys that are not valid months are returned unchanged.
func MonthLabel(month string) string {
	if month == "" {
		return ""
	}
	year, mon, ok := strings.Cut(month, "-")
	if !ok {
		return month
	}
	y, errY := strconv.Atoi(year)
	m, errM := strconv.Atoi(mon)
	if errY != nil || errM != nil || m < 1 || m > 12 {
		return month
	}
	return time.Date(y, time.Month(m), 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
}

// EmptyMessage explains why a month shows no papers, based on its stats.
func EmptyMessage(month string, stats Stats) string {
	label := MonthLabel(month)
	switch {
	case stats.Candidates == 0:
		return "No arXiv candidates were found for " + label + "."
	case stats.Accepted == 0:
		return "No papers were accepted by triage for " + label + "."
	case stats.Summarized == 0:
		return "Accepted papers exist for " + label + ", but summaries are unavailable."
	default:
		return "No papers match the current filters for " + label + "."
	}
}
