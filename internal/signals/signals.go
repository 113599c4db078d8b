// Package signals loads the externally produced signals.jsonl feed: one JSON
// object per line, appended over the day by a separate analysis process.
package signals

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/polydash/polydash/internal/domain"
)

// Load reads the feed at path and returns one signal per slug, keeping the
// entry with the greatest timestamp string, ordered by descending score;
// score ties keep the slug's first appearance order in the file.
// A missing file yields an empty set; malformed lines are skipped
// individually. Only an unreadable existing file is an error.
func Load(path string) ([]domain.Signal, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("signals: open %s: %w", path, err)
	}
	defer f.Close()

	bySlug := make(map[string]domain.Signal)
	// Slugs in first-seen order, so equal scores keep a stable position in
	// the output across runs.
	var order []string

	scanner := bufio.NewScanner(f)
	// Signal lines carry reason text and can outgrow the default token size.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var s domain.Signal
		if err := json.Unmarshal([]byte(line), &s); err != nil {
			continue
		}

		prev, ok := bySlug[s.Slug]
		if !ok {
			order = append(order, s.Slug)
			bySlug[s.Slug] = s
		} else if s.Timestamp > prev.Timestamp {
			bySlug[s.Slug] = s
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("signals: read %s: %w", path, err)
	}

	out := make([]domain.Signal, 0, len(order))
	for _, slug := range order {
		out = append(out, bySlug[slug])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	return out, nil
}
