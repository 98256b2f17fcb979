package assets

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/redis/go-redis/v9"
)

// bucketKeyPrefix namespaces every asset key: "assets:<version>:<path>".
const bucketKeyPrefix = "assets:"

// CachedAsset is one pre-fetched response body plus the metadata needed
// to replay it.
type CachedAsset struct {
	Path        string `json:"path"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// BucketStore holds versioned buckets of cached assets. Buckets are
// written all-or-nothing at install time and dropped whole at activate
// time; there is no per-entry update.
type BucketStore interface {
	PutAll(ctx context.Context, bucket string, entries []CachedAsset) error
	Get(ctx context.Context, bucket, path string) (CachedAsset, bool, error)
	Buckets(ctx context.Context) ([]string, error)
	Drop(ctx context.Context, bucket string) error
}

// RedisBucketStore keeps each asset as a JSON value under
// "<bucket>:<path>".
type RedisBucketStore struct {
	rdb *redis.Client
}

// NewRedisBucketStore returns a new RedisBucketStore.
func NewRedisBucketStore(rdb *redis.Client) *RedisBucketStore {
	return &RedisBucketStore{rdb: rdb}
}

// PutAll writes every entry in one transactional pipeline, so a bucket
// is never observable half-populated.
func (s *RedisBucketStore) PutAll(ctx context.Context, bucket string, entries []CachedAsset) error {
	pipe := s.rdb.TxPipeline()
	for _, e := range entries {
		b, err := json.Marshal(e)
		if err != nil {
			return err
		}
		pipe.Set(ctx, bucket+":"+e.Path, b, 0)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (s *RedisBucketStore) Get(ctx context.Context, bucket, path string) (CachedAsset, bool, error) {
	b, err := s.rdb.Get(ctx, bucket+":"+path).Bytes()
	if err == redis.Nil {
		return CachedAsset{}, false, nil
	}
	if err != nil {
		return CachedAsset{}, false, err
	}
	var entry CachedAsset
	if err := json.Unmarshal(b, &entry); err != nil {
		return CachedAsset{}, false, err
	}
	return entry, true, nil
}

// Buckets enumerates the distinct bucket names present in the store.
func (s *RedisBucketStore) Buckets(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var buckets []string
	iter := s.rdb.Scan(ctx, 0, bucketKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		// Key layout is "assets:<version>:<path>"; the bucket is the
		// first two segments.
		parts := strings.SplitN(iter.Val(), ":", 3)
		if len(parts) < 3 {
			continue
		}
		bucket := parts[0] + ":" + parts[1]
		if !seen[bucket] {
			seen[bucket] = true
			buckets = append(buckets, bucket)
		}
	}
	return buckets, iter.Err()
}

// Drop removes every key of the bucket.
func (s *RedisBucketStore) Drop(ctx context.Context, bucket string) error {
	iter := s.rdb.Scan(ctx, 0, bucket+":*", 100).Iterator()
	for iter.Next(ctx) {
		if err := s.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
