package domain

import (
	"context"
	"io"
)

// BlobWriter uploads the serialized snapshot to an object store. Implemented
// by the S3 mirror.
type BlobWriter interface {
	Put(ctx context.Context, path string, data io.Reader, contentType string) error
}

// SnapshotCache hands the latest snapshot bytes to a shared cache and tells
// subscribers a new snapshot exists. Implemented by the Redis publisher.
type SnapshotCache interface {
	SetLatest(ctx context.Context, data []byte) error
}
