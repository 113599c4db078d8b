package rank

import (
	"fmt"
	"strconv"

	"github.com/polydash/polydash/internal/domain"
)

// Recommendation selector thresholds: signal tier wants a price away from
// the poles and time left on the clock; edge tier prefers the mid-range.
const (
	signalMinPrice = 0.10
	signalMaxPrice = 0.90
	signalStrong   = "STRONG"

	edgePreferMinPct = 25
	edgePreferMaxPct = 70

	maxSignalReasons = 3

	defaultAction = "DRY_RUN"
)

// Recommend picks the single top opportunity. Tiers are tried in fixed
// priority order and the first hit wins: a qualifying STRONG signal, then
// the Beat-the-Market bucket, then Good Chances. Returns nil when all three
// tiers come up empty.
func Recommend(signals []domain.Signal, beatMarket, goodChances []domain.Market) *domain.Recommendation {
	if rec := fromSignals(signals); rec != nil {
		return rec
	}
	if rec := fromBeatMarket(beatMarket); rec != nil {
		return rec
	}
	if rec := fromGoodChances(goodChances); rec != nil {
		return rec
	}
	return nil
}

// fromSignals takes the highest-scored STRONG signal that is still live and
// not near-certain. Signals arrive pre-sorted by descending score, so the
// first qualifier is the pick.
func fromSignals(signals []domain.Signal) *domain.Recommendation {
	for _, s := range signals {
		if s.Strength != signalStrong {
			continue
		}
		if s.YesPrice < signalMinPrice || s.YesPrice > signalMaxPrice {
			continue
		}
		if s.DaysLeft <= 0 {
			continue
		}

		yesPct := round1(s.YesPrice * 100)
		betSide := s.BetSide
		if betSide == "" {
			betSide = "Yes"
		}
		action := s.Action
		if action == "" {
			action = defaultAction
		}

		reasoning := []string{
			fmt.Sprintf("Strong signal with score %s/100", trimFloat(s.Score)),
			fmt.Sprintf("Bet on %s — price %s%%", betSide, trimFloat(yesPct)),
		}
		for i, r := range s.Reasons {
			if i >= maxSignalReasons {
				break
			}
			reasoning = append(reasoning, r)
		}

		score := s.Score
		size := s.SizeUSD
		return &domain.Recommendation{
			Source:    domain.RecSourceSignal,
			Title:     s.Question,
			BetSide:   betSide,
			YesPct:    yesPct,
			Score:     &score,
			SizeUSD:   &size,
			Reasoning: reasoning,
			Action:    action,
			Link:      eventURLPrefix + s.Slug,
		}
	}
	return nil
}

// fromBeatMarket prefers the first edge candidate in the 25–70% range and
// falls back to the bucket's own top entry.
func fromBeatMarket(beatMarket []domain.Market) *domain.Recommendation {
	if len(beatMarket) == 0 {
		return nil
	}

	pick := beatMarket[0]
	for _, m := range beatMarket {
		if m.YesPct >= edgePreferMinPct && m.YesPct <= edgePreferMaxPct {
			pick = m
			break
		}
	}

	roi := 0.0
	if pick.ROIPct != nil {
		roi = *pick.ROIPct
	}

	reasoning := []string{
		fmt.Sprintf("Expected net ROI: %.0f%% on a $100 stake", roi),
		fmt.Sprintf("YES price: %s%% — liquidity: $%s", trimFloat(pick.YesPct), formatUSD(pick.Liquidity)),
	}
	if pick.Volume24hr > 1000 {
		reasoning = append(reasoning, fmt.Sprintf("24h volume: $%s", formatUSD(pick.Volume24hr)))
	}
	reasoning = append(reasoning, pick.Interesting)

	score := round1(EdgeScore(pick))
	return &domain.Recommendation{
		Source:    domain.RecSourceEdge,
		Title:     pick.Question,
		BetSide:   "Yes",
		YesPct:    pick.YesPct,
		Score:     &score,
		Reasoning: reasoning,
		Action:    defaultAction,
		Link:      pick.Link,
	}
}

// fromGoodChances takes the top Good Chances entry as the last resort.
func fromGoodChances(goodChances []domain.Market) *domain.Recommendation {
	if len(goodChances) == 0 {
		return nil
	}

	pick := goodChances[0]
	return &domain.Recommendation{
		Source:  domain.RecSourceGoodChance,
		Title:   pick.Question,
		BetSide: "Yes",
		YesPct:  pick.YesPct,
		Reasoning: []string{
			fmt.Sprintf("High YES probability: %s%%", trimFloat(pick.YesPct)),
			fmt.Sprintf("Deep liquidity: $%s", formatUSD(pick.Liquidity)),
			pick.Interesting,
		},
		Action: defaultAction,
		Link:   pick.Link,
	}
}

// trimFloat renders a float without trailing zeros (62 rather than 62.000000).
func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// formatUSD renders a dollar amount with thousands separators and no cents.
func formatUSD(f float64) string {
	whole := strconv.FormatFloat(f, 'f', 0, 64)

	neg := false
	if len(whole) > 0 && whole[0] == '-' {
		neg = true
		whole = whole[1:]
	}

	var out []byte
	for i, c := range []byte(whole) {
		if i > 0 && (len(whole)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
