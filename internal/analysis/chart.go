package analysis

import (
	"fmt"
	"sort"
	"strings"
)

const chartTitle = "Language Usage"

// RenderChart turns a language share distribution into a fixed-width
// proportional bar chart. Languages are ordered by descending share, ties by
// name; shares below ChartMinShare are folded into an "other" bucket rendered
// last, so output length stays bounded no matter how many languages appear.
func RenderChart(dist map[string]float64, cfg Config) string {
	if len(dist) == 0 {
		return chartTitle + "\nno data"
	}

	type entry struct {
		name  string
		share float64
	}

	entries := make([]entry, 0, len(dist))
	other := 0.0
	for lang, share := range dist {
		if share < cfg.ChartMinShare {
			other += share
			continue
		}
		entries = append(entries, entry{name: lang, share: share})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].share != entries[j].share {
			return entries[i].share > entries[j].share
		}
		return entries[i].name < entries[j].name
	})
	if other > 0 {
		entries = append(entries, entry{name: "other", share: other})
	}

	nameWidth := 0
	for _, e := range entries {
		if len(e.name) > nameWidth {
			nameWidth = len(e.name)
		}
	}

	lines := make([]string, 0, len(entries)+1)
	lines = append(lines, chartTitle)
	for _, e := range entries {
		bar := strings.Repeat("█", int(e.share*float64(cfg.ChartWidth)))
		lines = append(lines, fmt.Sprintf("%*s: %s (%.1f%%)", nameWidth, e.name, bar, e.share*100))
	}
	return strings.Join(lines, "\n")
}
