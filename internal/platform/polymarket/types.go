package polymarket

import (
	"encoding/json"
	"strconv"
	"strings"
)

// flexFloat unmarshals from a JSON number, a numeric string, or null. The
// Gamma API is inconsistent about which of the three it sends for volume and
// liquidity fields, so every numeric field on APIMarket tolerates all of
// them. Anything unparsable decodes to 0.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		*f = 0
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexFloat(n)
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexFloat(n)
	return nil
}

// APIEvent is the event envelope nested inside a Gamma market record. Only
// the image matters here: an event-level image overrides the market's own.
type APIEvent struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
	Image string `json:"image"`
}

// APIMarket is a raw market record as returned by the Gamma /markets
// endpoint. Fields may be absent or null, and Outcomes/OutcomePrices are
// string-encoded JSON arrays (e.g. "[\"0.62\",\"0.38\"]"); decoding of those
// is deferred to the normalizer so one bad field never rejects the record.
type APIMarket struct {
	ID                  string     `json:"id"`
	Question            string     `json:"question"`
	Slug                string     `json:"slug"`
	Outcomes            string     `json:"outcomes"`
	OutcomePrices       string     `json:"outcomePrices"`
	Volume              flexFloat  `json:"volume"`
	Volume24hr          flexFloat  `json:"volume24hr"`
	Liquidity           flexFloat  `json:"liquidity"`
	OneDayPriceChange   flexFloat  `json:"oneDayPriceChange"`
	OneWeekPriceChange  flexFloat  `json:"oneWeekPriceChange"`
	OneMonthPriceChange flexFloat  `json:"oneMonthPriceChange"`
	LastTradePrice      flexFloat  `json:"lastTradePrice"`
	StartDate           string     `json:"startDate"`
	CreatedAt           string     `json:"createdAt"`
	EndDate             string     `json:"endDate"`
	Image               string     `json:"image"`
	Events              []APIEvent `json:"events"`
}
