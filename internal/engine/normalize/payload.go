// Package normalize turns published month documents into canonical payloads.
//
// Month documents have been published in several shapes over time. Each shape
// has its own decoder and the decoders are tried in a fixed order, so a payload
// always comes out well-typed no matter what was read.
package normalize

import (
	"strings"

	"github.com/tidwall/gjson"
	"go.trai.ch/digest/internal/core/domain"
)

// decoder attempts one document shape and reports whether it applied.
type decoder func(doc gjson.Result, fallbackMonth string) (domain.MonthPayload, bool)

// decoders are tried in order; the last one accepts any object.
var decoders = []decoder{
	decodeBareList,
	decodeAbsent,
	decodeCanonical,
}

// Payload normalizes a raw month document. It never fails: unreadable input
// yields an empty payload keyed by fallbackMonth.
func Payload(raw []byte, fallbackMonth string) domain.MonthPayload {
	var doc gjson.Result
	if gjson.ValidBytes(raw) {
		doc = gjson.ParseBytes(raw)
	}
	return Document(doc, fallbackMonth)
}

// Document normalizes an already parsed month document.
func Document(doc gjson.Result, fallbackMonth string) domain.MonthPayload {
	for _, decode := range decoders {
		if payload, ok := decode(doc, fallbackMonth); ok {
			return payload
		}
	}
	return domain.EmptyPayload(strings.TrimSpace(fallbackMonth))
}

// decodeBareList handles the legacy layout: a plain array of paper records.
func decodeBareList(doc gjson.Result, fallbackMonth string) (domain.MonthPayload, bool) {
	if !doc.IsArray() {
		return domain.MonthPayload{}, false
	}
	month := strings.TrimSpace(fallbackMonth)
	list := papers(doc.Array(), month)
	return domain.MonthPayload{
		Month:    month,
		Stats:    Stats(gjson.Result{}, list),
		Papers:   list,
		TopPicks: []string{},
	}, true
}

// decodeAbsent handles missing documents and non-object scalars.
func decodeAbsent(doc gjson.Result, fallbackMonth string) (domain.MonthPayload, bool) {
	if doc.IsObject() {
		return domain.MonthPayload{}, false
	}
	return domain.EmptyPayload(strings.TrimSpace(fallbackMonth)), true
}

// decodeCanonical handles {month, stats, papers, top_picks}.
func decodeCanonical(doc gjson.Result, fallbackMonth string) (domain.MonthPayload, bool) {
	if !doc.IsObject() {
		return domain.MonthPayload{}, false
	}
	month := strings.TrimSpace(firstText(doc.Get("month")))
	if month == "" {
		month = strings.TrimSpace(fallbackMonth)
	}
	list := papers(items(doc.Get("papers")), month)
	return domain.MonthPayload{
		Month:    month,
		Stats:    Stats(doc.Get("stats"), list),
		Papers:   list,
		TopPicks: texts(doc.Get("top_picks"), true),
	}, true
}

// Stored decodes a payload read back from a persistent tier. It reports false
// when raw is not valid JSON or holds null, marking the entry as corrupt.
func Stored(raw, fallbackMonth string) (domain.MonthPayload, bool) {
	if !gjson.Valid(raw) {
		return domain.MonthPayload{}, false
	}
	doc := gjson.Parse(raw)
	if doc.Type == gjson.Null {
		return domain.MonthPayload{}, false
	}
	return Document(doc, fallbackMonth), true
}
