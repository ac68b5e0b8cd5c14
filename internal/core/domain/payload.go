package domain

import (
	"slices"
	"strings"
)

// ArxivAbsBase is the canonical abstract URL prefix used when a paper carries no link.
const ArxivAbsBase = "https://arxiv.org/abs/"

// DefaultTriageDecision is applied when a paper carries no triage record.
const DefaultTriageDecision = "accept"

// Stats holds per-month pipeline counters.
type Stats struct {
	Candidates int `json:"candidates"`
	Accepted   int `json:"accepted"`
	Summarized int `json:"summarized"`
}

// Links holds the external links of a paper.
type Links struct {
	Abs string `json:"abs"`
	PDF string `json:"pdf"`
}

// Triage is the accept/reject decision recorded for a paper.
type Triage struct {
	Decision   string   `json:"decision"`
	Confidence float64  `json:"confidence"`
	Reasons    []string `json:"reasons"`
}

// Paper is a normalized paper record.
type Paper struct {
	Month               string   `json:"month"`
	ArxivIDBase         string   `json:"arxiv_id_base"`
	ArxivID             string   `json:"arxiv_id"`
	Title               string   `json:"title"`
	PublishedDate       string   `json:"published_date"`
	Authors             []string `json:"authors"`
	Categories          []string `json:"categories"`
	Links               Links    `json:"links"`
	Triage              Triage   `json:"triage"`
	Summary             Summary  `json:"summary"`
	SummaryFailedReason string   `json:"summary_failed_reason"`
}

// HasSummary reports whether the paper carries a structured summary.
func (p Paper) HasSummary() bool {
	return p.Summary != nil
}

// Clone returns a copy of the paper whose slices can be modified independently.
// The summary object is shared; it is treated as read-only.
func (p Paper) Clone() Paper {
	p.Authors = slices.Clone(p.Authors)
	p.Categories = slices.Clone(p.Categories)
	p.Triage.Reasons = slices.Clone(p.Triage.Reasons)
	return p
}

// MonthPayload is the canonical content of one month.
type MonthPayload struct {
	Month    string   `json:"month"`
	Stats    Stats    `json:"stats"`
	Papers   []Paper  `json:"papers"`
	TopPicks []string `json:"top_picks"`
}

// EmptyPayload returns a payload for month with no papers and zeroed stats.
func EmptyPayload(month string) MonthPayload {
	return MonthPayload{
		Month:    month,
		Papers:   []Paper{},
		TopPicks: []string{},
	}
}

// Clone returns a deep copy of the payload's slices.
func (p MonthPayload) Clone() MonthPayload {
	papers := slices.Clone(p.Papers)
	for i := range papers {
		papers[i] = papers[i].Clone()
	}
	p.Papers = papers
	p.TopPicks = slices.Clone(p.TopPicks)
	return p
}

// FeaturedID returns the first top pick, if any.
func (p MonthPayload) FeaturedID() string {
	if len(p.TopPicks) == 0 {
		return ""
	}
	return strings.TrimSpace(p.TopPicks[0])
}
