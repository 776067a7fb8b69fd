// Package cli holds the command tree for the gitgauge binary.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
)

var rootCtx = context.Background()

var rootCmd = &cobra.Command{
	Use:   "gitgauge",
	Short: "Score the authenticity of GitHub profiles.",
	Long: `gitgauge inspects a GitHub profile and its public repositories and
produces a 0-100 authenticity score with a per-category breakdown,
a language usage chart, and warnings for suspicious patterns.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information.",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("gitgauge %s (%s)\n", version, commit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(analyzeCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
