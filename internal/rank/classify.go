// Package rank implements the normalization, classification, bucketing, and
// recommendation rules that turn raw Gamma market records into the ranked
// collections of the dashboard snapshot.
package rank

import (
	"strings"

	"github.com/polydash/polydash/internal/domain"
)

// categoryOrder fixes the iteration order of the keyword table so that score
// ties always resolve to the same category.
var categoryOrder = []domain.Category{
	domain.CategoryPolitics,
	domain.CategoryEconomy,
	domain.CategorySports,
	domain.CategoryCrypto,
	domain.CategoryTech,
	domain.CategoryGeo,
}

// CategoryKeywords maps each category to the lowercase substrings that vote
// for it. This is tuning data, not logic; adjust freely without touching the
// classifier.
var CategoryKeywords = map[domain.Category][]string{
	domain.CategoryPolitics: {
		"election", "president", "congress", "senate", "vote", "biden", "trump",
		"democrat", "republican", "harris", "party", "governor", "minister",
		"parliament", "legislation", "impeach", "primary",
	},
	domain.CategoryEconomy: {
		"fed", "interest rate", "inflation", "gdp", "recession", "unemployment",
		"market", "stock", "bitcoin", "crypto", "dollar", "euro", "rate", "bank",
		"economy", "economic", "trade", "tariff", "deficit", "debt", "fiscal",
	},
	domain.CategorySports: {
		"nfl", "nba", "mlb", "nhl", "soccer", "football", "basketball",
		"baseball", "tennis", "golf", "super bowl", "world cup", "championship",
		"playoffs", "season", "game", "match", "team", "player", "coach",
		"olympic", "ufc", "mma", "boxing", "formula", "f1", "wimbledon",
	},
	domain.CategoryCrypto: {
		"bitcoin", "btc", "ethereum", "eth", "crypto", "blockchain", "defi",
		"nft", "altcoin", "solana", "sol", "binance", "coinbase", "token",
		"wallet", "doge", "xrp", "ripple",
	},
	domain.CategoryTech: {
		"ai", "artificial intelligence", "openai", "gpt", "google", "apple",
		"microsoft", "meta", "tesla", "nvidia", "amazon", "tech", "software",
		"hardware", "startup", "ipo", "acquisition", "antitrust", "regulation",
		"data", "privacy", "cyber", "space", "nasa", "spacex",
	},
	domain.CategoryGeo: {
		"russia", "ukraine", "china", "taiwan", "israel", "iran", "war",
		"military", "nato", "un", "sanctions", "ceasefire", "peace", "conflict",
		"invasion", "nuclear", "missile", "troops", "north korea",
		"middle east", "gaza", "hamas",
	},
}

// Categorize assigns a market title to the category whose keywords occur most
// often in it (case-insensitive substring matches, each keyword counted
// once). Ties go to the earlier category in the fixed table order; a title
// that matches nothing is "other".
func Categorize(question string) domain.Category {
	q := strings.ToLower(question)

	best := domain.CategoryOther
	bestScore := 0
	for _, cat := range categoryOrder {
		score := 0
		for _, kw := range CategoryKeywords[cat] {
			if strings.Contains(q, kw) {
				score++
			}
		}
		if score > bestScore {
			best = cat
			bestScore = score
		}
	}
	return best
}
