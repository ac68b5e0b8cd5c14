package normalize

import (
	"slices"
	"strings"

	"github.com/tidwall/gjson"
	"go.trai.ch/digest/internal/core/domain"
)

// Manifest normalizes the months manifest. When raw is unusable, the manifest is
// synthesized from fallbackMonths with the default page layout.
func Manifest(raw []byte, fallbackMonths []string) domain.Manifest {
	var doc gjson.Result
	if gjson.ValidBytes(raw) {
		doc = gjson.ParseBytes(raw)
	}
	months := doc.Get("months")
	if !doc.IsObject() || !months.IsArray() {
		return fallbackManifest(fallbackMonths)
	}

	rows := make([]domain.ManifestMonthRow, 0, len(months.Array()))
	for _, r := range months.Array() {
		if row, ok := manifestRow(r); ok {
			rows = append(rows, row)
		}
	}
	slices.SortStableFunc(rows, func(a, b domain.ManifestMonthRow) int {
		return strings.Compare(b.Month, a.Month)
	})

	latest := text(doc.Get("latest"))
	if latest == "" && len(rows) > 0 {
		latest = rows[0].Month
	}
	return domain.Manifest{Latest: latest, Months: rows}
}

func manifestRow(r gjson.Result) (domain.ManifestMonthRow, bool) {
	if !r.IsObject() {
		return domain.ManifestMonthRow{}, false
	}
	month := strings.TrimSpace(text(r.Get("month")))
	if month == "" {
		return domain.ManifestMonthRow{}, false
	}
	row := defaultRow(month)
	if v := text(r.Get("month_label")); v != "" {
		row.Label = v
	}
	if v := text(r.Get("href")); v != "" {
		row.Href = v
	}
	if v := text(r.Get("json_path")); v != "" {
		row.JSONPath = v
	}
	if v := text(r.Get("empty_state")); v != "" {
		row.EmptyState = v
	}
	row.Revision = domain.NormalizeRevision(text(r.Get("month_rev")))
	row.Stats = Stats(r.Get("stats"), nil)
	if f := r.Get("featured"); f.IsObject() {
		row.Featured = &domain.FeaturedPaper{
			ArxivIDBase: strings.TrimSpace(text(f.Get("arxiv_id_base"))),
			Title:       strings.TrimSpace(text(f.Get("title"))),
			OneLiner:    strings.TrimSpace(text(f.Get("one_liner"))),
			AbsURL:      strings.TrimSpace(text(f.Get("abs_url"))),
		}
	}
	return row, true
}

func defaultRow(month string) domain.ManifestMonthRow {
	return domain.ManifestMonthRow{
		Month:      month,
		Label:      domain.MonthLabel(month),
		Href:       "digest/" + month + "/index.html",
		JSONPath:   "digest/" + month + "/" + domain.MonthPayloadFile,
		Revision:   domain.LegacyRevision,
		EmptyState: domain.EmptyStateUnknown,
	}
}

func fallbackManifest(months []string) domain.Manifest {
	m := domain.Manifest{Months: make([]domain.ManifestMonthRow, 0, len(months))}
	for _, month := range months {
		month = strings.TrimSpace(month)
		if month == "" {
			continue
		}
		m.Months = append(m.Months, defaultRow(month))
	}
	if len(m.Months) > 0 {
		m.Latest = m.Months[0].Month
	}
	return m
}
