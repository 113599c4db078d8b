package domain

// RecommendationSource identifies which tier of the selector produced the
// recommendation.
type RecommendationSource string

const (
	RecSourceSignal     RecommendationSource = "signal"
	RecSourceEdge       RecommendationSource = "edge"
	RecSourceGoodChance RecommendationSource = "good_chance"
)

// Recommendation is the single top pick chosen per run, with the reasoning
// lines shown to the user. Score and SizeUSD are nil when the producing tier
// has no meaningful value for them.
type Recommendation struct {
	Source    RecommendationSource `json:"source"`
	Title     string               `json:"title"`
	BetSide   string               `json:"bet_side"`
	YesPct    float64              `json:"yes_pct"`
	Score     *float64             `json:"score"`
	SizeUSD   *float64             `json:"size_usd"`
	Reasoning []string             `json:"reasoning"`
	Action    string               `json:"action"`
	Link      string               `json:"link"`
}

// Snapshot is the complete output document of one pipeline run. It is
// serialized as indented JSON and overwrites the previous snapshot; there is
// no versioning or merging across runs.
type Snapshot struct {
	UpdatedAt      string          `json:"updated_at"`
	RunID          string          `json:"run_id"`
	Hot            []Market        `json:"hot"`
	Movers         []Market        `json:"movers"`
	NewInteresting []Market        `json:"new_interesting"`
	WorthWatching  []Market        `json:"worth_watching"`
	GoodChances    []Market        `json:"good_chances"`
	BeatMarket     []Market        `json:"beat_market"`
	Recommendation *Recommendation `json:"recommendation"`
	AllMarkets     []Market        `json:"all_markets"`
	Signals        []Signal        `json:"signals"`
	SignalsCount   int             `json:"signals_count"`
}
