package domain

// Category is the single topic bucket assigned to a market by the title
// classifier.
type Category string

const (
	CategoryPolitics Category = "politics"
	CategoryEconomy  Category = "economy"
	CategorySports   Category = "sports"
	CategoryCrypto   Category = "crypto"
	CategoryTech     Category = "tech"
	CategoryGeo      Category = "geo"
	CategoryOther    Category = "other"
)

// Market is the canonical, normalized form of a Polymarket listing. It is
// built once per run from the raw Gamma API record and never mutated
// afterwards. JSON field names match the snapshot contract consumed by the
// dashboard.
type Market struct {
	ID         string   `json:"id"`
	Question   string   `json:"question"`
	YesPct     float64  `json:"yes_pct"`
	NoPct      float64  `json:"no_pct"`
	Outcomes   []string `json:"outcomes"`
	Volume     float64  `json:"volume"`
	Volume24hr float64  `json:"volume24hr"`
	Liquidity  float64  `json:"liquidity"`

	// PriceChange24h passes through the upstream oneDayPriceChange field and
	// stays 0 when the API omits it; no estimate is synthesized.
	PriceChange24h float64 `json:"price_change_24h"`

	Category    Category `json:"category"`
	EndDate     string   `json:"end_date"`
	StartDate   string   `json:"start_date"`
	Image       string   `json:"image"`
	Link        string   `json:"link"`
	Interesting string   `json:"interesting"`

	OneWeekPriceChange  float64 `json:"oneWeekPriceChange"`
	OneMonthPriceChange float64 `json:"oneMonthPriceChange"`
	LastTradePrice      float64 `json:"lastTradePrice"`

	// Financial annotation for a hypothetical $100 stake. Present only when
	// the implied probability is strictly inside (1%, 99%); nil otherwise.
	NetReturn100   *float64 `json:"net_return_100"`
	GrossReturn100 *float64 `json:"gross_return_100"`
	ROIPct         *float64 `json:"roi_pct"`
}
