package normalize

import (
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// truthy follows the loose truthiness the published JSON was written against:
// missing, null, false, 0 and "" are false; any object or array is true.
func truthy(r gjson.Result) bool {
	if !r.Exists() {
		return false
	}
	switch r.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.Number:
		return r.Num != 0 && !math.IsNaN(r.Num)
	case gjson.String:
		return r.Str != ""
	default:
		return true
	}
}

// text renders a scalar as a string. Falsy values become "".
func text(r gjson.Result) string {
	if !truthy(r) {
		return ""
	}
	switch r.Type {
	case gjson.String:
		return r.Str
	case gjson.True:
		return "true"
	default:
		return r.Raw
	}
}

// firstText returns the text of the first truthy candidate.
func firstText(candidates ...gjson.Result) string {
	for _, c := range candidates {
		if truthy(c) {
			return text(c)
		}
	}
	return ""
}

// number converts r to a finite number, or returns fallback when it cannot.
func number(r gjson.Result, fallback float64) float64 {
	if !r.Exists() {
		return fallback
	}
	switch r.Type {
	case gjson.Number:
		if math.IsNaN(r.Num) || math.IsInf(r.Num, 0) {
			return fallback
		}
		return r.Num
	case gjson.String:
		s := strings.TrimSpace(r.Str)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return fallback
		}
		return f
	case gjson.True:
		return 1
	case gjson.False, gjson.Null:
		return 0
	default:
		return fallback
	}
}

// count converts r to a non-negative integer counter, saturating at math.MaxInt.
func count(r gjson.Result, fallback int) int {
	f := number(r, float64(fallback))
	switch {
	case f <= 0:
		return 0
	case f >= math.MaxInt:
		return math.MaxInt
	}
	return int(f)
}

// items returns the elements of r when it is an array, else nil.
func items(r gjson.Result) []gjson.Result {
	if !r.IsArray() {
		return nil
	}
	return r.Array()
}

// texts returns the non-empty text of every array element.
func texts(r gjson.Result, trim bool) []string {
	elems := items(r)
	out := make([]string, 0, len(elems))
	for _, e := range elems {
		s := text(e)
		if trim {
			s = strings.TrimSpace(s)
		}
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// object decodes r into a generic map when it is a JSON object.
func object(r gjson.Result) (map[string]any, bool) {
	if !r.IsObject() {
		return nil, false
	}
	m, ok := r.Value().(map[string]any)
	return m, ok
}
