package analysis

// Signal is one normalized measurement derived from profile or repository
// data. Value is always in [0,1]; Note explains defaults applied when the
// underlying data was missing or malformed.
type Signal struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Note  string  `json:"note,omitempty"`
}

// Contribution is one weighted entry of a repository score breakdown.
// Contributions of a RepositoryScore sum to its Score.
type Contribution struct {
	Signal string  `json:"signal"`
	Points float64 `json:"points"`
}

// RepositoryScore is the scored result for a single repository.
type RepositoryScore struct {
	Name      string         `json:"name"`
	Score     float64        `json:"score"`
	Breakdown []Contribution `json:"breakdown"`
	Warnings  []string       `json:"warnings,omitempty"`
}

// CategoryScore is one named profile-level sub-score in [0,100].
type CategoryScore struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// ProfileScore is the aggregated result for a whole profile.
type ProfileScore struct {
	Overall         float64            `json:"overall"`
	Categories      []CategoryScore    `json:"categories"`
	Warnings        []string           `json:"warnings,omitempty"`
	Languages       map[string]float64 `json:"languages"` // language -> share, sums to 1
	ReposConsidered int                `json:"repos_considered"`
}

// Report packages a ProfileScore with the per-repository scores it was
// aggregated from, the rendered language chart, and the caller-supplied scan
// sequence number.
type Report struct {
	Handle    string            `json:"handle"`
	Profile   ProfileScore      `json:"profile"`
	Repos     []RepositoryScore `json:"repos,omitempty"`
	Chart     string            `json:"chart"`
	ScanCount int64             `json:"scan_count"`
}
