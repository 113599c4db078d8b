package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/polydash/polydash/internal/domain"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     domain.Category
	}{
		{
			name:     "politics",
			question: "Will Trump win the election?",
			want:     domain.CategoryPolitics,
		},
		{
			name:     "economy",
			question: "Will the Fed cut the interest rate before a recession?",
			want:     domain.CategoryEconomy,
		},
		{
			name:     "sports",
			question: "Will the Chiefs win the Super Bowl?",
			want:     domain.CategorySports,
		},
		{
			name:     "crypto",
			question: "Will Ethereum flip Solana this year?",
			want:     domain.CategoryCrypto,
		},
		{
			name:     "tech",
			question: "Will OpenAI release GPT-5 software this year?",
			want:     domain.CategoryTech,
		},
		{
			name:     "geo",
			question: "Will Russia and Ukraine reach a ceasefire?",
			want:     domain.CategoryGeo,
		},
		{
			name:     "no keyword matches",
			question: "Will it rain in Paris tomorrow?",
			want:     domain.CategoryOther,
		},
		{
			name:     "empty title",
			question: "",
			want:     domain.CategoryOther,
		},
		{
			name:     "case insensitive",
			question: "WILL BITCOIN HIT $100K?",
			// bitcoin counts for both economy and crypto; economy comes
			// first in table order, so a one-one tie resolves there.
			want: domain.CategoryEconomy,
		},
		{
			name:     "higher keyword count wins",
			question: "Will bitcoin and ethereum both hit new highs on coinbase?",
			want:     domain.CategoryCrypto,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.question))
		})
	}
}

func TestCategorizeDeterministicOnTies(t *testing.T) {
	// "war" (geo) and "game" (sports) both score one; sports precedes geo
	// in the table, so the result must be stable across runs.
	q := "Will the war game end?"
	first := Categorize(q)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, Categorize(q))
	}
	assert.Equal(t, domain.CategorySports, first)
}
