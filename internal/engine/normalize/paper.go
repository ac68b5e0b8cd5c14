package normalize

import (
	"strings"

	"github.com/tidwall/gjson"
	"go.trai.ch/digest/internal/core/domain"
)

// summaryOf picks the summary object of a paper record. Three layouts exist:
// an explicit "summary" object, an explicit "paper_summary" object, or a flattened
// record that carries tags, key_points and unique_contribution itself.
func summaryOf(record gjson.Result) (gjson.Result, bool) {
	if s := record.Get("summary"); s.IsObject() {
		return s, true
	}
	if s := record.Get("paper_summary"); s.IsObject() {
		return s, true
	}
	if truthy(record.Get("tags")) &&
		truthy(record.Get("key_points")) &&
		truthy(record.Get("unique_contribution")) {
		return record, true
	}
	return gjson.Result{}, false
}

// Paper normalizes one paper record for month.
// It reports false when the record has no resolvable arXiv identifier.
func Paper(record gjson.Result, month string) (domain.Paper, bool) {
	if !record.IsObject() {
		return domain.Paper{}, false
	}

	summaryRes, hasSummary := summaryOf(record)

	idBase := strings.TrimSpace(firstText(record.Get("arxiv_id_base"), summaryRes.Get("arxiv_id_base")))
	if idBase == "" {
		return domain.Paper{}, false
	}

	var summary domain.Summary
	if hasSummary {
		if m, ok := object(summaryRes); ok {
			summary = m
		}
	}

	categories := record.Get("categories")
	if !truthy(categories) {
		categories = summaryRes.Get("categories")
	}

	return domain.Paper{
		Month:               strings.TrimSpace(month),
		ArxivIDBase:         idBase,
		ArxivID:             strings.TrimSpace(text(record.Get("arxiv_id"))),
		Title:               strings.TrimSpace(firstText(record.Get("title"), summaryRes.Get("title"))),
		PublishedDate:       strings.TrimSpace(firstText(record.Get("published_date"), summaryRes.Get("published_date"))),
		Authors:             texts(record.Get("authors"), false),
		Categories:          texts(categories, false),
		Links:               links(record.Get("links"), idBase),
		Triage:              triage(record.Get("triage")),
		Summary:             summary,
		SummaryFailedReason: strings.TrimSpace(text(record.Get("summary_failed_reason"))),
	}, true
}

func links(r gjson.Result, idBase string) domain.Links {
	var l domain.Links
	if r.IsObject() {
		l.Abs = strings.TrimSpace(text(r.Get("abs")))
		l.PDF = strings.TrimSpace(text(r.Get("pdf")))
	}
	if l.Abs == "" {
		l.Abs = domain.ArxivAbsBase + idBase
	}
	return l
}

func triage(r gjson.Result) domain.Triage {
	if !r.IsObject() {
		return domain.Triage{Decision: domain.DefaultTriageDecision, Reasons: []string{}}
	}
	decision := text(r.Get("decision"))
	if decision == "" {
		decision = domain.DefaultTriageDecision
	}
	reasons := items(r.Get("reasons"))
	out := make([]string, 0, len(reasons))
	for _, reason := range reasons {
		out = append(out, reason.String())
	}
	return domain.Triage{
		Decision:   decision,
		Confidence: number(r.Get("confidence"), 0),
		Reasons:    out,
	}
}

// papers normalizes every record, dropping those without an identifier.
func papers(records []gjson.Result, month string) []domain.Paper {
	out := make([]domain.Paper, 0, len(records))
	for _, record := range records {
		if p, ok := Paper(record, month); ok {
			out = append(out, p)
		}
	}
	return out
}

// Stats fills counters from raw, defaulting to what the papers themselves show.
func Stats(raw gjson.Result, list []domain.Paper) domain.Stats {
	if !raw.IsObject() {
		raw = gjson.Result{}
	}
	summarized := 0
	for _, p := range list {
		if p.HasSummary() {
			summarized++
		}
	}
	return domain.Stats{
		Candidates: count(raw.Get("candidates"), len(list)),
		Accepted:   count(raw.Get("accepted"), len(list)),
		Summarized: count(raw.Get("summarized"), summarized),
	}
}
