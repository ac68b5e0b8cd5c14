package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.trai.ch/digest/internal/app"
	"go.trai.ch/digest/internal/core/domain"
)

const featuredMarker = "★"

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

func writeHome(w io.Writer, view app.HomeView) {
	if view.Message != "" {
		_, _ = fmt.Fprintln(w, view.Message)
		return
	}
	for i, year := range view.Years {
		if i > 0 {
			_, _ = fmt.Fprintln(w)
		}
		_, _ = fmt.Fprintf(w, "%s (total: %s)\n", year.Year, plural(year.Papers, "paper"))
		for _, card := range year.Months {
			_, _ = fmt.Fprintf(w, "  %-16s %-10s %s\n", card.Label, plural(card.Papers, "paper"), card.Href)
			if card.Featured != nil && card.Featured.Title != "" {
				_, _ = fmt.Fprintf(w, "    %s %s\n", featuredMarker, card.Featured.Title)
			}
		}
	}
}

func writeMonth(w io.Writer, view app.MonthView) {
	_, _ = fmt.Fprintf(w, "Showing %d of %d accepted papers for %s.\n", len(view.Papers), view.Total, view.Label)
	if view.Message != "" {
		_, _ = fmt.Fprintln(w, view.Message)
		return
	}
	for _, p := range view.Papers {
		writePaper(w, p, p.ArxivIDBase == view.FeaturedID, false)
	}
}

func writeExplore(w io.Writer, view app.ExploreView) {
	_, _ = fmt.Fprintf(w, "%s (loaded %d of %d months", plural(len(view.Papers), "result"), view.MonthsLoaded, view.MonthsTotal)
	if view.MonthsFailed > 0 {
		_, _ = fmt.Fprintf(w, ", %d failed", view.MonthsFailed)
	}
	_, _ = fmt.Fprintln(w, ")")
	if view.Message != "" {
		_, _ = fmt.Fprintln(w, view.Message)
		return
	}
	for _, p := range view.Papers {
		writePaper(w, p, false, true)
	}
}

func writePaper(w io.Writer, p domain.Paper, featured, withMonth bool) {
	marker := " "
	if featured {
		marker = featuredMarker
	}
	title := p.Title
	if title == "" {
		title = p.ArxivIDBase
	}
	prefix := p.PublishedDate
	if withMonth {
		prefix = p.Month + "  " + prefix
	}
	_, _ = fmt.Fprintf(w, "%s %-12s %s  %s\n", marker, p.ArxivIDBase, prefix, title)
	if line := p.Summary.OneLiner(); line != "" {
		_, _ = fmt.Fprintf(w, "    %s\n", line)
	}
	if tags := paperTags(p); tags != "" {
		_, _ = fmt.Fprintf(w, "    [%s]\n", tags)
	}
}

func paperTags(p domain.Paper) string {
	var parts []string
	for _, category := range domain.TagCategories {
		for _, value := range p.Summary.Tags(category) {
			parts = append(parts, category+"="+value)
		}
	}
	return strings.Join(parts, " ")
}

func writePayload(w io.Writer, p domain.MonthPayload) {
	_, _ = fmt.Fprintf(w, "%s: %s (candidates %d, accepted %d, summarized %d)\n",
		p.Month, plural(len(p.Papers), "paper"), p.Stats.Candidates, p.Stats.Accepted, p.Stats.Summarized)
	if len(p.TopPicks) > 0 {
		_, _ = fmt.Fprintf(w, "top picks: %s\n", strings.Join(p.TopPicks, ", "))
	}
}

func writeStats(w io.Writer, s domain.CacheStats) {
	c := s.Cumulative
	_, _ = fmt.Fprintf(w, "cache: map_hits=%d local_hits=%d network_hits=%d cache_writes=%d\n",
		c.MapHits, c.LocalHits, c.NetworkHits, c.CacheWrites)
	if r := s.LastRun; r != nil {
		_, _ = fmt.Fprintf(w, "last run: months=%d/%d map_hits=%d local_hits=%d network_hits=%d\n",
			r.MonthsLoaded, r.MonthsTotal, r.MapHits, r.LocalHits, r.NetworkHits)
	}
}

func writeClean(w io.Writer, res app.CleanResult) {
	if res.Memory {
		_, _ = fmt.Fprintln(w, "Cleared the memory tier.")
	}
	if res.Persistent {
		_, _ = fmt.Fprintf(w, "Removed %s from persistent storage.\n", plural(res.PersistentRemoved, "entry"))
	}
	if res.Stats {
		_, _ = fmt.Fprintln(w, "Reset cache statistics.")
	}
}
