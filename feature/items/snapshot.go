package items

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"time"

	"reorder/core/ordering"
	"reorder/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// SnapshotPrefix is the top-level folder of all list snapshots.
const SnapshotPrefix = "snapshots"

// Snapshot is the JSON document stored for a list before it is reset.
type Snapshot struct {
	OwnerID string          `json:"ownerId"`
	TakenAt time.Time       `json:"takenAt"`
	Items   []ordering.Item `json:"items"`
}

// Snapshotter keeps per-owner list snapshots in object storage.
type Snapshotter struct {
	client    storage.Client
	bucket    string
	retention int
	logger    *zap.Logger
	now       func() time.Time
}

// NewSnapshotter creates a snapshotter. A retention of zero keeps every snapshot.
func NewSnapshotter(client storage.Client, bucket string, retention int, logger *zap.Logger) *Snapshotter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Snapshotter{
		client:    client,
		bucket:    bucket,
		retention: retention,
		logger:    logger,
		now:       time.Now,
	}
}

func ownerPrefix(ownerID string) string {
	return SnapshotPrefix + "/" + url.PathEscape(ownerID) + "/"
}

// Save uploads the items as a new snapshot and returns its object key.
// Snapshots beyond the retention limit are pruned oldest first.
func (s *Snapshotter) Save(ctx context.Context, ownerID string, items []ordering.Item) (string, error) {
	taken := s.now().UTC()
	key := fmt.Sprintf("%s%d.json", ownerPrefix(ownerID), taken.UnixNano())

	body, err := json.Marshal(Snapshot{OwnerID: ownerID, TakenAt: taken, Items: items})
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}

	_, err = s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload snapshot %s: %w", key, err)
	}

	if s.retention > 0 {
		s.prune(ctx, ownerID)
	}
	return key, nil
}

// List returns the owner's snapshot keys, oldest first.
func (s *Snapshotter) List(ctx context.Context, ownerID string) ([]string, error) {
	keys := []string{}
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    ownerPrefix(ownerID),
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list snapshots: %w", obj.Err)
		}
		keys = append(keys, obj.Key)
	}

	// Keys embed a fixed-width nanosecond timestamp, so lexical order is chronological.
	sort.Strings(keys)
	return keys, nil
}

func (s *Snapshotter) prune(ctx context.Context, ownerID string) {
	keys, err := s.List(ctx, ownerID)
	if err != nil {
		s.logger.Warn("Snapshot pruning skipped", zap.String("owner", ownerID), zap.Error(err))
		return
	}
	if len(keys) <= s.retention {
		return
	}

	for _, key := range keys[:len(keys)-s.retention] {
		if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
			s.logger.Warn("Failed to remove old snapshot", zap.String("key", key), zap.Error(err))
		}
	}
}
