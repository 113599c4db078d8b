package rank

import (
	"github.com/polydash/polydash/internal/domain"
	"github.com/polydash/polydash/internal/platform/polymarket"
)

// MergeAndNormalize concatenates the raw fetch result lists in the order
// given, keeps the first record seen for each market id, and normalizes the
// survivors. Records without an id and records the normalizer drops are
// discarded. The caller's list order is the dedup precedence, so pass the
// volume24hr listing first.
func MergeAndNormalize(lists ...[]polymarket.APIMarket) []domain.Market {
	seen := make(map[string]struct{})
	var out []domain.Market

	for _, list := range lists {
		for _, raw := range list {
			if raw.ID == "" {
				continue
			}
			if _, dup := seen[raw.ID]; dup {
				continue
			}
			seen[raw.ID] = struct{}{}

			m, ok := Normalize(raw)
			if !ok {
				continue
			}
			out = append(out, m)
		}
	}

	return out
}
