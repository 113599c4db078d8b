package rank

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/polydash/polydash/internal/domain"
	"github.com/polydash/polydash/internal/platform/polymarket"
)

// Fee model for the $100 hypothetical stake. Tuning data, kept apart from
// the annotation logic.
const (
	StakeUSD       = 100.0
	CommissionRate = 0.001 // 0.1% commission on the stake
	WinningsKept   = 0.75  // 25% tax on winnings
)

// Volume thresholds for the "interesting" qualifier.
const (
	massiveVolume24h = 1_000_000
	highVolume24h    = 100_000
)

var eventURLPrefix = "https://polymarket.com/event/"

// Normalize converts one raw Gamma record into a canonical Market. The only
// rejection condition is a missing question; every other absent or malformed
// field degrades to its documented default. The second return value is false
// when the record was dropped.
func Normalize(m polymarket.APIMarket) (domain.Market, bool) {
	if m.Question == "" {
		return domain.Market{}, false
	}

	prices := parseFloatList(m.OutcomePrices)
	yesPct := 50.0
	if len(prices) > 0 {
		yesPct = round1(prices[0] * 100)
	}
	noPct := round1(100 - yesPct)
	if len(prices) > 1 {
		noPct = round1(prices[1] * 100)
	}

	outcomes := parseStringList(m.Outcomes)
	if outcomes == nil {
		outcomes = []string{"Yes", "No"}
	}

	category := Categorize(m.Question)

	startDate := m.StartDate
	if startDate == "" {
		startDate = m.CreatedAt
	}

	image := m.Image
	if len(m.Events) > 0 && m.Events[0].Image != "" {
		image = m.Events[0].Image
	}

	link := ""
	if m.Slug != "" {
		link = eventURLPrefix + m.Slug
	}

	out := domain.Market{
		ID:                  m.ID,
		Question:            m.Question,
		YesPct:              yesPct,
		NoPct:               noPct,
		Outcomes:            outcomes,
		Volume:              float64(m.Volume),
		Volume24hr:          float64(m.Volume24hr),
		Liquidity:           float64(m.Liquidity),
		PriceChange24h:      float64(m.OneDayPriceChange),
		Category:            category,
		EndDate:             m.EndDate,
		StartDate:           startDate,
		Image:               image,
		Link:                link,
		Interesting:         interestingReason(category, yesPct, float64(m.Volume24hr)),
		OneWeekPriceChange:  float64(m.OneWeekPriceChange),
		OneMonthPriceChange: float64(m.OneMonthPriceChange),
		LastTradePrice:      float64(m.LastTradePrice),
	}

	annotateReturns(&out)

	return out, true
}

// annotateReturns fills the net/gross/ROI fields for a $100 stake at the
// market's implied probability. Outside the (1%, 99%) band the fields stay
// nil: a near-settled market has no meaningful return to show.
func annotateReturns(m *domain.Market) {
	p := m.YesPct / 100
	if p <= 0.01 || p >= 0.99 {
		return
	}

	shares := StakeUSD / p
	gross := shares * (1 - p)
	afterFees := gross - StakeUSD*CommissionRate
	net := afterFees * WinningsKept

	netR := round1(net)
	grossR := round1(gross)
	roi := math.Round(net / StakeUSD * 100)

	m.NetReturn100 = &netR
	m.GrossReturn100 = &grossR
	m.ROIPct = &roi
}

// interestingReason builds the short "why this matters" line: a probability
// read, an optional volume qualifier, and the category label up front.
func interestingReason(category domain.Category, yesPct, volume24hr float64) string {
	var base string
	switch {
	case yesPct >= 40 && yesPct <= 60:
		base = "balanced market — outcome wide open"
	case yesPct >= 85:
		base = "very likely — near certain"
	case yesPct <= 15:
		base = "very unlikely — pure speculation"
	case yesPct >= 70:
		base = "odds lean clearly yes"
	default:
		base = "long odds — contrarian market"
	}

	if volume24hr > massiveVolume24h {
		base += " • massively traded today"
	} else if volume24hr > highVolume24h {
		base += " • high volume"
	}

	return fmt.Sprintf("%s • %s", categoryLabel(category), base)
}

var categoryLabels = map[domain.Category]string{
	domain.CategoryPolitics: "🗳️ Politics",
	domain.CategoryEconomy:  "💰 Economy",
	domain.CategorySports:   "🏆 Sports",
	domain.CategoryCrypto:   "₿ Crypto",
	domain.CategoryTech:     "🔬 Tech",
	domain.CategoryGeo:      "🌍 Geopolitics",
	domain.CategoryOther:    "🎭 Other",
}

func categoryLabel(c domain.Category) string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return "📊"
}

// parseFloatList decodes a string-encoded JSON array whose elements may be
// numbers or numeric strings ("[\"0.62\",\"0.38\"]" and "[0.62,0.38]" both
// occur in Gamma responses). Malformed input yields nil, never an error.
func parseFloatList(encoded string) []float64 {
	if encoded == "" {
		return nil
	}
	var raw []any
	if err := json.Unmarshal([]byte(encoded), &raw); err != nil {
		return nil
	}
	out := make([]float64, 0, len(raw))
	for _, v := range raw {
		switch x := v.(type) {
		case float64:
			out = append(out, x)
		case string:
			f, err := strconv.ParseFloat(x, 64)
			if err != nil {
				return nil
			}
			out = append(out, f)
		default:
			return nil
		}
	}
	return out
}

// parseStringList decodes a string-encoded JSON array of labels. Malformed
// input yields nil so the caller can substitute the default.
func parseStringList(encoded string) []string {
	if encoded == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(encoded), &out); err != nil {
		return nil
	}
	return out
}

// round1 rounds to one decimal place, matching the display precision of the
// snapshot contract.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
