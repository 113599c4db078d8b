package signals

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFeed(t *testing.T, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "signals.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o644))
	return path
}

func TestLoadMissingFile(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "nope.jsonl"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadOrdersByScoreDescending(t *testing.T) {
	path := writeFeed(t, `
{"slug":"low","timestamp":"2026-08-30T10:00:00Z","score":40,"strength":"WEAK"}
{"slug":"high","timestamp":"2026-08-30T10:00:00Z","score":90,"strength":"STRONG"}
{"slug":"mid","timestamp":"2026-08-30T10:00:00Z","score":60,"strength":"MEDIUM"}
`)

	got, err := Load(path)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "high", got[0].Slug)
	assert.Equal(t, "mid", got[1].Slug)
	assert.Equal(t, "low", got[2].Slug)
}

func TestLoadKeepsLatestPerSlug(t *testing.T) {
	path := writeFeed(t, `
{"slug":"m","timestamp":"2026-08-30T08:00:00Z","score":50}
{"slug":"m","timestamp":"2026-08-30T12:00:00Z","score":70}
{"slug":"m","timestamp":"2026-08-30T10:00:00Z","score":90}
`)

	got, err := Load(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 70.0, got[0].Score)
	assert.Equal(t, "2026-08-30T12:00:00Z", got[0].Timestamp)
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	path := writeFeed(t, `
{"slug":"good","timestamp":"2026-08-30T10:00:00Z","score":80}
not json at all
{"slug":"truncated","timestamp":
{"slug":"also-good","timestamp":"2026-08-30T11:00:00Z","score":20}

`)

	got, err := Load(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "good", got[0].Slug)
	assert.Equal(t, "also-good", got[1].Slug)
}

func TestLoadEqualScoresKeepFileOrder(t *testing.T) {
	var lines string
	for _, slug := range []string{"s0", "s1", "s2", "s3", "s4", "s5", "s6", "s7"} {
		lines += `{"slug":"` + slug + `","timestamp":"2026-08-30T10:00:00Z","score":50}` + "\n"
	}
	path := writeFeed(t, lines)

	first, err := Load(path)
	require.NoError(t, err)
	require.Len(t, first, 8)
	assert.Equal(t, "s0", first[0].Slug)
	assert.Equal(t, "s7", first[7].Slug)

	for i := 0; i < 50; i++ {
		again, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, first, again, "order changed on reload %d", i)
	}
}

func TestLoadTieOrderSurvivesLaterUpdates(t *testing.T) {
	// A newer entry for an already-seen slug replaces its payload but must
	// not move it behind slugs that appeared after it.
	path := writeFeed(t, `
{"slug":"early","timestamp":"2026-08-30T08:00:00Z","score":50}
{"slug":"late","timestamp":"2026-08-30T09:00:00Z","score":50}
{"slug":"early","timestamp":"2026-08-30T10:00:00Z","score":50}
`)

	got, err := Load(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "early", got[0].Slug)
	assert.Equal(t, "2026-08-30T10:00:00Z", got[0].Timestamp)
	assert.Equal(t, "late", got[1].Slug)
}

func TestLoadEmptyFile(t *testing.T) {
	got, err := Load(writeFeed(t, ""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadCarriesAllFields(t *testing.T) {
	path := writeFeed(t, `{"slug":"full","timestamp":"2026-08-30T10:00:00Z","question":"Will it happen?","score":82.5,"strength":"STRONG","yes_price":0.44,"bet_side":"Yes","days_left":12,"size_usd":75,"action":"DRY_RUN","reasons":["momentum","volume spike"]}`)

	got, err := Load(path)
	require.NoError(t, err)
	require.Len(t, got, 1)

	s := got[0]
	assert.Equal(t, "Will it happen?", s.Question)
	assert.Equal(t, 82.5, s.Score)
	assert.Equal(t, "STRONG", s.Strength)
	assert.Equal(t, 0.44, s.YesPrice)
	assert.Equal(t, "Yes", s.BetSide)
	assert.Equal(t, 12.0, s.DaysLeft)
	assert.Equal(t, 75.0, s.SizeUSD)
	assert.Equal(t, "DRY_RUN", s.Action)
	assert.Equal(t, []string{"momentum", "volume spike"}, s.Reasons)
}
