package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/gitgauge/gitgauge/internal/analysis"
)

// Verdict labels for overall and per-repo scores.
const (
	authenticValue  = "Authentic"
	plausibleValue  = "Plausible"
	uncertainValue  = "Uncertain"
	suspiciousValue = "Suspicious"
)

var (
	authenticColor  = color.New(color.FgGreen, color.Bold)
	plausibleColor  = color.New(color.FgCyan)
	uncertainColor  = color.New(color.FgYellow)
	suspiciousColor = color.New(color.FgRed, color.Bold)
	warningColor    = color.New(color.FgYellow)
)

// plainLabel maps a 0-100 score onto its verdict text. Core logic shared by
// JSON-free table printing and tests.
func plainLabel(score float64) string {
	switch {
	case score >= 75:
		return authenticValue
	case score >= 50:
		return plausibleValue
	case score >= 30:
		return uncertainValue
	default:
		return suspiciousValue
	}
}

// colorLabel wraps plainLabel's text in the matching console color.
func colorLabel(score float64) string {
	text := plainLabel(score)
	switch text {
	case authenticValue:
		return authenticColor.Sprint(text)
	case plausibleValue:
		return plausibleColor.Sprint(text)
	case uncertainValue:
		return uncertainColor.Sprint(text)
	default:
		return suspiciousColor.Sprint(text)
	}
}

func writeJSON(w io.Writer, report analysis.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// writeReport prints the human-readable report: headline score, category
// table, per-repo table, language chart, warnings.
func writeReport(w io.Writer, report analysis.Report) error {
	if _, err := fmt.Fprintf(w, "Profile: %s\n", report.Handle); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Authenticity: %.2f / 100 (%s)\n\n", report.Profile.Overall, colorLabel(report.Profile.Overall)); err != nil {
		return err
	}

	if err := writeCategoryTable(w, report.Profile.Categories); err != nil {
		return err
	}
	if len(report.Repos) > 0 {
		if err := writeRepoTable(w, report.Repos); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\n%s\n", report.Chart); err != nil {
		return err
	}

	for _, warning := range report.Profile.Warnings {
		if _, err := fmt.Fprintf(w, "%s %s\n", warningColor.Sprint("warning:"), warning); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\nRepositories considered: %d\n", report.Profile.ReposConsidered)
	return err
}

func writeCategoryTable(w io.Writer, categories []analysis.CategoryScore) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Category", "Score"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	for _, cat := range categories {
		if err := table.Append([]string{cat.Name, fmt.Sprintf("%.2f", cat.Score)}); err != nil {
			return err
		}
	}
	return table.Render()
}

func writeRepoTable(w io.Writer, repos []analysis.RepositoryScore) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Repository", "Score", "Label", "Warnings"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	var data [][]string
	for i, repo := range repos {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			repo.Name,
			fmt.Sprintf("%.2f", repo.Score),
			colorLabel(repo.Score),
			strconv.Itoa(len(repo.Warnings)),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
