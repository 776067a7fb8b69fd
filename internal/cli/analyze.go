package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gitgauge/gitgauge/internal/adapters"
	"github.com/gitgauge/gitgauge/internal/analysis"
	"github.com/gitgauge/gitgauge/internal/resilience"
	"github.com/gitgauge/gitgauge/internal/types"
)

var analyzeOpts struct {
	token   string
	timeout time.Duration
	json    bool
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <username|profile-url>",
	Short: "Analyze a GitHub profile and print its authenticity report.",
	Long: `Fetch a GitHub profile and its public repositories, score them,
and print the overall authenticity score with category breakdown,
language chart, and warnings.

Examples:
  # Analyze by username
  gitgauge analyze torvalds

  # Analyze by profile URL
  gitgauge analyze https://github.com/torvalds

  # Emit the raw report as JSON
  gitgauge analyze torvalds --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runAnalyze(rootCtx, args[0])
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeOpts.token, "token", "", "GitHub API token (defaults to GITHUB_TOKEN)")
	analyzeCmd.Flags().DurationVar(&analyzeOpts.timeout, "timeout", 30*time.Second, "overall timeout for the analysis")
	analyzeCmd.Flags().BoolVar(&analyzeOpts.json, "json", false, "print the raw report as JSON")
}

func runAnalyze(ctx context.Context, input string) error {
	_ = godotenv.Load()

	username, err := adapters.ParseInput(input)
	if err != nil {
		return err
	}

	token := analyzeOpts.token
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}

	ctx, cancel := context.WithTimeout(ctx, analyzeOpts.timeout)
	defer cancel()

	github := adapters.NewGitHubAdapter(token)
	bundle, err := fetchWithRetry(ctx, github, username)
	if err != nil {
		return err
	}

	engine := analysis.NewEngine(analysis.DefaultConfig())
	report, err := engine.Analyze(bundle, 0)
	if err != nil {
		return err
	}

	if analyzeOpts.json {
		return writeJSON(os.Stdout, report)
	}
	return writeReport(os.Stdout, report)
}

func fetchWithRetry(ctx context.Context, github *adapters.GitHubAdapter, username string) (bundle types.ProfileBundle, err error) {
	err = resilience.Retry(ctx, func() error {
		b, err := github.FetchProfile(ctx, username)
		if err != nil {
			return err
		}
		bundle = b
		return nil
	})
	if err != nil {
		return bundle, fmt.Errorf("fetch profile %q: %w", username, err)
	}
	return bundle, nil
}
