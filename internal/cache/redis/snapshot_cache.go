package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/polydash/polydash/internal/domain"
)

const (
	// snapshotKey holds the latest snapshot JSON. No TTL: a stale snapshot
	// beats no snapshot, and every run overwrites it.
	snapshotKey = "polydash:snapshot:latest"

	// updateChannel gets a publish on every successful run so dashboard
	// processes can refresh without polling.
	updateChannel = "polydash:snapshot:updated"
)

// SnapshotCache implements domain.SnapshotCache on Redis: the snapshot bytes
// go into a plain key and subscribers get poked on a pub/sub channel.
type SnapshotCache struct {
	rdb *redis.Client
}

// NewSnapshotCache creates a SnapshotCache backed by the given Client.
func NewSnapshotCache(c *Client) *SnapshotCache {
	return &SnapshotCache{rdb: c.Underlying()}
}

// SetLatest stores the snapshot bytes and notifies subscribers, atomically
// from the reader's point of view.
func (sc *SnapshotCache) SetLatest(ctx context.Context, data []byte) error {
	pipe := sc.rdb.TxPipeline()
	pipe.Set(ctx, snapshotKey, data, 0)
	pipe.Publish(ctx, updateChannel, "updated")

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis: set latest snapshot: %w", err)
	}
	return nil
}

// Compile-time interface check.
var _ domain.SnapshotCache = (*SnapshotCache)(nil)
