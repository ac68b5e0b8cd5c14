package query

import (
	"cmp"
	"slices"
	"strings"

	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortOrder names an ordering of papers.
type SortOrder string

const (
	SortPublishedDesc  SortOrder = "published_desc"
	SortPublishedAsc   SortOrder = "published_asc"
	SortTitleAsc       SortOrder = "title_asc"
	SortConfidenceDesc SortOrder = "confidence_desc"
)

// SortOrders lists the accepted orders, default first.
var SortOrders = []SortOrder{SortPublishedDesc, SortPublishedAsc, SortTitleAsc, SortConfidenceDesc}

// ParseSortOrder validates name. Empty selects SortPublishedDesc.
func ParseSortOrder(name string) (SortOrder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return SortPublishedDesc, nil
	}
	if order := SortOrder(name); slices.Contains(SortOrders, order) {
		return order, nil
	}
	return "", zerr.With(domain.ErrInvalidSortOrder, "sort", name)
}

// Sort returns a sorted copy of papers. Text fields compare with English
// collation; ties fall back to the arXiv identifier so the order is total.
// Unknown orders sort as SortPublishedDesc.
func Sort(papers []domain.Paper, order SortOrder) []domain.Paper {
	out := slices.Clone(papers)
	col := collate.New(language.English)
	text := col.CompareString

	var compare func(a, b domain.Paper) int
	switch order {
	case SortPublishedAsc:
		compare = func(a, b domain.Paper) int {
			return cmp.Or(
				text(a.PublishedDate, b.PublishedDate),
				text(a.Month, b.Month),
				text(a.ArxivIDBase, b.ArxivIDBase),
			)
		}
	case SortTitleAsc:
		compare = func(a, b domain.Paper) int {
			return cmp.Or(
				text(a.Title, b.Title),
				text(a.ArxivIDBase, b.ArxivIDBase),
			)
		}
	case SortConfidenceDesc:
		compare = func(a, b domain.Paper) int {
			return cmp.Or(
				cmp.Compare(b.Triage.Confidence, a.Triage.Confidence),
				text(b.PublishedDate, a.PublishedDate),
				text(a.ArxivIDBase, b.ArxivIDBase),
			)
		}
	default:
		compare = func(a, b domain.Paper) int {
			return cmp.Or(
				text(b.PublishedDate, a.PublishedDate),
				text(b.Month, a.Month),
				text(a.ArxivIDBase, b.ArxivIDBase),
			)
		}
	}

	slices.SortStableFunc(out, compare)
	return out
}
