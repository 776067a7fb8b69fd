package analysis

// Signal names used across breakdowns and tests.
const (
	SignalReadmeDepth   = "readme_depth"
	SignalCommitRecency = "commit_recency"
	SignalActivity      = "activity"
	SignalPopularity    = "popularity"
	SignalKeywordFlag   = "keyword_flag"
	SignalBaseline      = "baseline"
)

// Category names for profile sub-scores.
const (
	CategoryActivity       = "Activity"
	CategoryCredibility    = "Credibility"
	CategoryContentQuality = "Content Quality"
)

// RepoWeights is the per-repository weighting table. Weights sum to 100 so
// weighted signal contributions land directly on the 0-100 scale.
type RepoWeights struct {
	ReadmeDepth   float64 `mapstructure:"readme_depth" json:"readme_depth"`
	CommitRecency float64 `mapstructure:"commit_recency" json:"commit_recency"`
	Activity      float64 `mapstructure:"activity" json:"activity"`
	Popularity    float64 `mapstructure:"popularity" json:"popularity"`
	KeywordFlag   float64 `mapstructure:"keyword_flag" json:"keyword_flag"`
}

// Total returns the sum of all repository weights.
func (w RepoWeights) Total() float64 {
	return w.ReadmeDepth + w.CommitRecency + w.Activity + w.Popularity + w.KeywordFlag
}

// CategoryWeights blends category sub-scores into the overall score.
// Weights sum to 1.
type CategoryWeights struct {
	Activity       float64 `mapstructure:"activity" json:"activity"`
	Credibility    float64 `mapstructure:"credibility" json:"credibility"`
	ContentQuality float64 `mapstructure:"content_quality" json:"content_quality"`
}

// Config holds every tunable threshold and weight of the scoring engine.
// It is plain data so defaults can be overridden from configuration without
// touching extractor or scorer code.
type Config struct {
	// Signal shaping.
	ReadmeSaturationLen int     `mapstructure:"readme_saturation_len" json:"readme_saturation_len"` // chars beyond which README length earns no further credit
	RecencyTauDays      float64 `mapstructure:"recency_tau_days" json:"recency_tau_days"`
	StalenessDays       float64 `mapstructure:"staleness_days" json:"staleness_days"` // repository considered dormant at this age
	ActivityPerYear     float64 `mapstructure:"activity_per_year" json:"activity_per_year"`
	PopularityScale     float64 `mapstructure:"popularity_scale" json:"popularity_scale"`

	RepoWeights RepoWeights `mapstructure:"repo_weights" json:"repo_weights"`

	// Floors.
	MinRepoScore    float64 `mapstructure:"min_repo_score" json:"min_repo_score"`
	MinProfileScore float64 `mapstructure:"min_profile_score" json:"min_profile_score"`

	// Aggregation.
	RepoListTau      float64         `mapstructure:"repo_list_tau" json:"repo_list_tau"` // list-position decay constant
	MaxRepoInfluence float64         `mapstructure:"max_repo_influence" json:"max_repo_influence"`
	CategoryWeights  CategoryWeights `mapstructure:"category_weights" json:"category_weights"`

	// Profile-level warning thresholds.
	MinRepos              int     `mapstructure:"min_repos" json:"min_repos"`
	MinAccountAgeDays     float64 `mapstructure:"min_account_age_days" json:"min_account_age_days"`
	KeywordPenaltyCeiling float64 `mapstructure:"keyword_penalty_ceiling" json:"keyword_penalty_ceiling"`

	// Chart rendering.
	ChartWidth    int     `mapstructure:"chart_width" json:"chart_width"`
	ChartMinShare float64 `mapstructure:"chart_min_share" json:"chart_min_share"`
}

// DefaultConfig returns the tuned default configuration.
func DefaultConfig() Config {
	return Config{
		ReadmeSaturationLen: 2000,
		RecencyTauDays:      45,
		StalenessDays:       365,
		ActivityPerYear:     12,
		PopularityScale:     500,
		RepoWeights: RepoWeights{
			ReadmeDepth:   25,
			CommitRecency: 25,
			Activity:      20,
			Popularity:    20,
			KeywordFlag:   10,
		},
		MinRepoScore:     15,
		MinProfileScore:  10,
		RepoListTau:      5,
		MaxRepoInfluence: 0.4,
		CategoryWeights: CategoryWeights{
			Activity:       0.35,
			Credibility:    0.35,
			ContentQuality: 0.30,
		},
		MinRepos:              1,
		MinAccountAgeDays:     90,
		KeywordPenaltyCeiling: 15,
		ChartWidth:            20,
		ChartMinShare:         0.03,
	}
}
