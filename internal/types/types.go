package types

import "time"

// RepositorySnapshot is a point-in-time capture of one repository's metrics.
// All fields are optional except Name; missing data degrades to default
// signals during scoring, it never aborts an analysis.
type RepositorySnapshot struct {
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	PrimaryLanguage string           `json:"primary_language"`
	Languages       map[string]int64 `json:"languages"` // language -> bytes
	Stars           int              `json:"stars"`
	Forks           int              `json:"forks"`
	OpenIssues      int              `json:"open_issues"` // open issues + PRs
	CreatedAt       time.Time        `json:"created_at"`
	LastCommitAt    time.Time        `json:"last_commit_at"`
	Readme          string           `json:"readme"`
	Manifest        string           `json:"manifest"` // dependency manifest text, possibly empty
}

// ProfileBundle is the full input to the scoring engine: account metadata
// plus the ordered repository snapshots, most recently pushed first. It is
// owned by the caller and never mutated by the engine.
type ProfileBundle struct {
	Handle      string               `json:"handle"`
	CreatedAt   time.Time            `json:"created_at"`
	Followers   int                  `json:"followers"`
	Following   int                  `json:"following"`
	PublicRepos int                  `json:"public_repos"`
	Bio         string               `json:"bio"`
	Blog        string               `json:"blog"`
	Repos       []RepositorySnapshot `json:"repos"`
}

// AnalyzeRequest represents the request structure for the analyze endpoint
type AnalyzeRequest struct {
	Input string `json:"input" binding:"required"`
}
