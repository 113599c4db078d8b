package rank

import (
	"math"
	"sort"
	"time"

	"github.com/polydash/polydash/internal/domain"
)

// Bucket size caps and filter thresholds. Each rule reads the full market
// set and returns its own bounded, ordered slice; none of them mutate the
// input.
const (
	hotLimit           = 10
	moversLimitPerSide = 5
	moverMinChange     = 0.01

	newInterestingLimit  = 8
	newInterestingWindow = 14 * 24 * time.Hour
	newInterestingMinLiq = 5000

	worthWatchingLimit    = 12
	worthWatchingMinScore = 0.3

	goodChanceLimit  = 10
	goodChanceMinPct = 55
	goodChanceMaxPct = 92
	goodChanceMinLiq = 500

	beatMarketLimit  = 10
	beatMarketMinROI = 5
	beatMarketMinPct = 8
	beatMarketMaxPct = 92
	beatMarketMinLiq = 1000
)

// Hot returns the top markets by 24h volume.
func Hot(markets []domain.Market) []domain.Market {
	byVol := sortedByVolume24hr(markets)
	return capped(byVol, hotLimit)
}

// Movers returns the biggest one-week price moves: up to five risers
// (largest gain first) followed by up to five fallers (largest loss first).
func Movers(markets []domain.Market) []domain.Market {
	var up, down []domain.Market
	for _, m := range markets {
		switch {
		case m.OneWeekPriceChange > moverMinChange:
			up = append(up, m)
		case m.OneWeekPriceChange < -moverMinChange:
			down = append(down, m)
		}
	}

	sort.SliceStable(up, func(i, j int) bool {
		return up[i].OneWeekPriceChange > up[j].OneWeekPriceChange
	})
	sort.SliceStable(down, func(i, j int) bool {
		return down[i].OneWeekPriceChange < down[j].OneWeekPriceChange
	})

	return append(capped(up, moversLimitPerSide), capped(down, moversLimitPerSide)...)
}

// NewInteresting returns recently started markets with real liquidity,
// busiest first. A start date that does not parse excludes the market from
// this bucket only.
func NewInteresting(markets []domain.Market, now time.Time) []domain.Market {
	cutoff := now.Add(-newInterestingWindow)

	var fresh []domain.Market
	for _, m := range markets {
		sd, err := time.Parse(time.RFC3339, m.StartDate)
		if err != nil {
			continue
		}
		if !sd.Before(cutoff) && m.Liquidity >= newInterestingMinLiq {
			fresh = append(fresh, m)
		}
	}

	sort.SliceStable(fresh, func(i, j int) bool {
		return fresh[i].Volume24hr > fresh[j].Volume24hr
	})
	return capped(fresh, newInterestingLimit)
}

// WorthWatching curates markets that are either genuinely uncertain with
// depth behind them, or sit in a notable category (geo, politics).
// Candidates are walked in (liquidity + 24h volume) order so ties resolve to
// first-encountered.
func WorthWatching(markets []domain.Market) []domain.Market {
	var picked []domain.Market
	seen := make(map[string]struct{})

	for _, m := range sortedByActivity(markets) {
		if _, dup := seen[m.ID]; dup {
			continue
		}
		if watchScore(m) > worthWatchingMinScore ||
			m.Category == domain.CategoryGeo || m.Category == domain.CategoryPolitics {
			picked = append(picked, m)
			seen[m.ID] = struct{}{}
		}
		if len(picked) >= worthWatchingLimit {
			break
		}
	}
	return picked
}

// watchScore blends uncertainty (1.0 at 50/50, 0 at the poles), liquidity,
// and 24h volume into a 0..1 composite.
func watchScore(m domain.Market) float64 {
	uncertainty := 1 - math.Abs(m.YesPct/100-0.5)*2
	return uncertainty*0.4 +
		math.Min(m.Liquidity/1_000_000, 1)*0.4 +
		math.Min(m.Volume24hr/500_000, 1)*0.2
}

// GoodChances returns markets in the "likely but not settled" probability
// zone, deepest books first.
func GoodChances(markets []domain.Market) []domain.Market {
	var picked []domain.Market
	seen := make(map[string]struct{})

	for _, m := range sortedByActivity(markets) {
		if _, dup := seen[m.ID]; dup {
			continue
		}
		if m.YesPct >= goodChanceMinPct && m.YesPct <= goodChanceMaxPct &&
			m.Liquidity >= goodChanceMinLiq {
			picked = append(picked, m)
			seen[m.ID] = struct{}{}
		}
		if len(picked) >= goodChanceLimit {
			break
		}
	}
	return picked
}

// BeatMarket ranks markets by post-fee edge: enough ROI, a probability away
// from the poles, and a minimum book.
func BeatMarket(markets []domain.Market) []domain.Market {
	var candidates []domain.Market
	for _, m := range markets {
		roi := 0.0
		if m.ROIPct != nil {
			roi = *m.ROIPct
		}
		if roi > beatMarketMinROI &&
			m.YesPct >= beatMarketMinPct && m.YesPct <= beatMarketMaxPct &&
			m.Liquidity >= beatMarketMinLiq {
			candidates = append(candidates, m)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return EdgeScore(candidates[i]) > EdgeScore(candidates[j])
	})
	return capped(candidates, beatMarketLimit)
}

// EdgeScore combines ROI, a probability sweet spot, volume, and liquidity
// into the Beat-the-Market ranking key. Markets priced past 8%/92% get a
// token sweetness: near-certain and near-impossible outcomes carry no edge
// worth chasing.
func EdgeScore(m domain.Market) float64 {
	roi := 0.0
	if m.ROIPct != nil {
		roi = *m.ROIPct
	}
	vol := math.Min(m.Volume24hr/500_000, 1)
	liq := math.Min(m.Liquidity/100_000, 1)

	p := m.YesPct / 100
	sweetness := 0.1
	if p >= 0.08 && p <= 0.92 {
		sweetness = 1.0 - math.Abs(p-0.5)*1.5
	}

	return roi*0.4 + sweetness*35 + vol*10 + liq*15
}

// AllByVolume is the full set ordered by 24h volume descending, uncapped.
// The dashboard filters it client-side by category tab.
func AllByVolume(markets []domain.Market) []domain.Market {
	return sortedByVolume24hr(markets)
}

// sortedByVolume24hr returns a copy sorted by 24h volume descending.
func sortedByVolume24hr(markets []domain.Market) []domain.Market {
	out := make([]domain.Market, len(markets))
	copy(out, markets)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Volume24hr > out[j].Volume24hr
	})
	return out
}

// sortedByActivity returns a copy sorted by liquidity + 24h volume
// descending. The sort is stable so equal keys keep fetch order; WorthWatching
// and GoodChances depend on that for deterministic output.
func sortedByActivity(markets []domain.Market) []domain.Market {
	out := make([]domain.Market, len(markets))
	copy(out, markets)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Liquidity+out[i].Volume24hr > out[j].Liquidity+out[j].Volume24hr
	})
	return out
}

// capped returns at most n leading elements of s.
func capped(s []domain.Market, n int) []domain.Market {
	if len(s) > n {
		return s[:n]
	}
	return s
}
