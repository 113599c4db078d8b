package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polydash/polydash/internal/platform/polymarket"
)

func rawMarket(id, question string) polymarket.APIMarket {
	return polymarket.APIMarket{
		ID:            id,
		Question:      question,
		OutcomePrices: `["0.5","0.5"]`,
	}
}

func TestMergeAndNormalizeFirstListWins(t *testing.T) {
	byVolume := []polymarket.APIMarket{
		rawMarket("1", "From the volume fetch?"),
		rawMarket("2", "Only in volume?"),
	}
	byRecency := []polymarket.APIMarket{
		rawMarket("1", "Same market, later fetch?"),
		rawMarket("3", "Only in recency?"),
	}

	merged := MergeAndNormalize(byVolume, byRecency)
	require.Len(t, merged, 3)

	assert.Equal(t, "From the volume fetch?", merged[0].Question)
	assert.Equal(t, "Only in volume?", merged[1].Question)
	assert.Equal(t, "Only in recency?", merged[2].Question)
}

func TestMergeAndNormalizeSkipsMissingID(t *testing.T) {
	merged := MergeAndNormalize([]polymarket.APIMarket{
		rawMarket("", "No id at all?"),
		rawMarket("1", "Has an id?"),
	})

	require.Len(t, merged, 1)
	assert.Equal(t, "1", merged[0].ID)
}

func TestMergeAndNormalizeDroppedRecordStillClaimsID(t *testing.T) {
	// The first occurrence marks the id as seen even when the normalizer
	// rejects it, so a later duplicate does not resurrect the market.
	merged := MergeAndNormalize(
		[]polymarket.APIMarket{rawMarket("1", "")},
		[]polymarket.APIMarket{rawMarket("1", "Valid copy later?")},
	)

	assert.Empty(t, merged)
}

func TestMergeAndNormalizeEmptyInput(t *testing.T) {
	assert.Empty(t, MergeAndNormalize())
	assert.Empty(t, MergeAndNormalize(nil, nil, nil))
}
