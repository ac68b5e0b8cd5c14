package domain

import (
	"fmt"
	"strings"
)

// Summary is a structured paper summary kept as a generic JSON object.
// Several historical layouts exist, so unknown fields are preserved verbatim.
type Summary map[string]any

// OpenSource points at released artifacts of a paper.
type OpenSource struct {
	CodeURL    string
	WeightsURL string
}

// String returns the trimmed string value of field, or "" when absent or not a scalar.
func (s Summary) String(field string) string {
	return strings.TrimSpace(scalarString(s[field]))
}

// Strings returns the non-empty string items of an array field.
func (s Summary) Strings(field string) []string {
	return stringItems(s[field])
}

// OneLiner returns the one-line summary.
func (s Summary) OneLiner() string { return s.String("one_liner") }

// DetailedSummary returns the long-form summary.
func (s Summary) DetailedSummary() string { return s.String("detailed_summary") }

// UniqueContribution returns the stated unique contribution.
func (s Summary) UniqueContribution() string { return s.String("unique_contribution") }

// KeyPoints returns the summary bullet points.
func (s Summary) KeyPoints() []string { return s.Strings("key_points") }

// Tags returns the values recorded for one tag category.
func (s Summary) Tags(category string) []string {
	tags, ok := s["tags"].(map[string]any)
	if !ok {
		return nil
	}
	return stringItems(tags[category])
}

// OpenSource returns the released code and weights links.
func (s Summary) OpenSource() OpenSource {
	raw, ok := s["open_source"].(map[string]any)
	if !ok {
		return OpenSource{}
	}
	return OpenSource{
		CodeURL:    strings.TrimSpace(scalarString(raw["code_url"])),
		WeightsURL: strings.TrimSpace(scalarString(raw["weights_url"])),
	}
}

func scalarString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64, bool, int, int64:
		return fmt.Sprint(t)
	default:
		return ""
	}
}

func stringItems(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := strings.TrimSpace(scalarString(item)); s != "" {
			out = append(out, s)
		}
	}
	return out
}
