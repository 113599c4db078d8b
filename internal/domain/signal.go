package domain

// Signal is one pre-scored trade suggestion ingested from the external
// signals.jsonl feed. Signals are produced by a separate analysis process;
// this pipeline only loads, deduplicates, and ranks them.
type Signal struct {
	Slug      string   `json:"slug"`
	Timestamp string   `json:"timestamp"`
	Question  string   `json:"question"`
	Score     float64  `json:"score"`
	Strength  string   `json:"strength"` // "STRONG" or weaker grades
	YesPrice  float64  `json:"yes_price"`
	BetSide   string   `json:"bet_side"`
	DaysLeft  float64  `json:"days_left"`
	SizeUSD   float64  `json:"size_usd"`
	Action    string   `json:"action"`
	Reasons   []string `json:"reasons"`
}
