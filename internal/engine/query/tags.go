package query

import (
	"slices"
	"strings"

	"go.trai.ch/digest/internal/core/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// TagValueLabel returns the display label of a tag value: the known label
// when one exists, else the value with dashes as spaces and each word capitalized.
func TagValueLabel(category, value string) string {
	if label, ok := domain.TagLabels[category][value]; ok {
		return label
	}
	return cases.Title(language.English, cases.NoLower).String(strings.ReplaceAll(value, "-", " "))
}

// TagOptions lists the selectable values per category, ordered by label.
// Values come from the loaded papers; with no papers the known values are offered.
func TagOptions(papers []domain.Paper) map[string][]string {
	seen := make(map[string]map[string]struct{}, len(domain.TagCategories))
	for _, category := range domain.TagCategories {
		seen[category] = make(map[string]struct{})
	}

	if len(papers) == 0 {
		for _, category := range domain.TagCategories {
			for value := range domain.TagLabels[category] {
				seen[category][value] = struct{}{}
			}
		}
	}
	for _, p := range papers {
		for _, category := range domain.TagCategories {
			for _, value := range p.Summary.Tags(category) {
				seen[category][value] = struct{}{}
			}
		}
	}

	col := collate.New(language.English)
	options := make(map[string][]string, len(domain.TagCategories))
	for _, category := range domain.TagCategories {
		values := make([]string, 0, len(seen[category]))
		for value := range seen[category] {
			values = append(values, value)
		}
		slices.SortFunc(values, func(a, b string) int {
			if c := col.CompareString(TagValueLabel(category, a), TagValueLabel(category, b)); c != 0 {
				return c
			}
			return strings.Compare(a, b)
		})
		options[category] = values
	}
	return options
}
