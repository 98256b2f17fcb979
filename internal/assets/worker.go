// Package assets is the offline cache worker: it pre-populates a
// versioned bucket of static assets at install time, serves intercepted
// asset requests cache-first with a live-fetch fallback, and garbage
// collects stale buckets at activate time. The host app drives the
// lifecycle (Install, then Activate, then mounted Intercept routes); the
// worker never calls back into it.
package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"sort"
	"strings"
	"time"
)

// ErrInstall wraps any manifest fetch failure during Install. Install is
// all-or-nothing: on this error nothing was written and the previously
// active bucket keeps serving.
var ErrInstall = errors.New("asset cache install failed")

// Manifest is the fixed ordered list of asset paths pre-cached at
// install time. Bump the version tag whenever this list changes.
var Manifest = []string{
	"/",
	"/index.html",
	"/style.css",
	"/script.js",
	"/manifest.json",
	"/icons/icon-192x192.png",
	"/icons/icon-512x512.png",
}

// Worker serves the application's static assets from a versioned cache
// bucket, fetching them from the configured origin.
type Worker struct {
	store    BucketStore
	origin   string
	version  string
	client   *http.Client
	notifier Notifier
}

// NewWorker returns a Worker caching assets from origin under the given
// version tag. If notifier is nil, push payloads are logged.
func NewWorker(store BucketStore, origin, version string, notifier Notifier) *Worker {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &Worker{
		store:    store,
		origin:   strings.TrimSuffix(origin, "/"),
		version:  version,
		client:   &http.Client{Timeout: 15 * time.Second},
		notifier: notifier,
	}
}

// BucketName is the versioned bucket this worker reads and writes.
func (w *Worker) BucketName() string {
	return bucketKeyPrefix + w.version
}

// Install fetches every manifest asset from the origin and writes the
// bucket in one shot. Any fetch failure aborts the whole install.
func (w *Worker) Install(ctx context.Context) error {
	entries := make([]CachedAsset, 0, len(Manifest))
	for _, path := range Manifest {
		entry, err := w.fetch(ctx, path)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInstall, path, err)
		}
		entries = append(entries, entry)
	}
	if err := w.store.PutAll(ctx, w.BucketName(), entries); err != nil {
		return fmt.Errorf("%w: store: %v", ErrInstall, err)
	}
	log.Printf("asset cache %s installed, %d assets", w.BucketName(), len(entries))
	return nil
}

// Activate deletes every bucket other than the current version's. This
// is the sole eviction path for assets of superseded versions.
func (w *Worker) Activate(ctx context.Context) error {
	buckets, err := w.store.Buckets(ctx)
	if err != nil {
		return fmt.Errorf("enumerate asset buckets: %w", err)
	}
	current := w.BucketName()
	for _, b := range buckets {
		if b == current {
			continue
		}
		if err := w.store.Drop(ctx, b); err != nil {
			return fmt.Errorf("drop stale bucket %s: %w", b, err)
		}
		log.Printf("asset cache %s dropped (superseded by %s)", b, current)
	}
	return nil
}

// Revert repoints the worker at a surviving bucket after a failed
// install, so the previously active version keeps serving. Returns the
// adopted bucket name, or false when no bucket exists at all.
func (w *Worker) Revert(ctx context.Context) (string, bool) {
	buckets, err := w.store.Buckets(ctx)
	if err != nil {
		log.Printf("asset cache revert: %v", err)
		return "", false
	}
	if len(buckets) == 0 {
		return "", false
	}
	sort.Strings(buckets)
	current := w.BucketName()
	for _, b := range buckets {
		if b == current {
			return b, true
		}
	}
	w.version = strings.TrimPrefix(buckets[0], bucketKeyPrefix)
	return buckets[0], true
}

// Serve handles one intercepted asset request: cached response if
// present, live origin fetch otherwise. When both fail the request
// resolves with 504 and no body; there is no offline fallback page.
func (w *Worker) Serve(ctx context.Context, rw http.ResponseWriter, path string) {
	entry, ok, err := w.store.Get(ctx, w.BucketName(), path)
	if err == nil && ok {
		rw.Header().Set("Content-Type", entry.ContentType)
		rw.WriteHeader(http.StatusOK)
		_, _ = rw.Write(entry.Body)
		return
	}
	if err != nil {
		log.Printf("asset cache read %s: %v", path, err)
	}

	live, err := w.fetch(ctx, path)
	if err != nil {
		rw.WriteHeader(http.StatusGatewayTimeout)
		return
	}
	rw.Header().Set("Content-Type", live.ContentType)
	rw.WriteHeader(http.StatusOK)
	_, _ = rw.Write(live.Body)
}

func (w *Worker) fetch(ctx context.Context, path string) (CachedAsset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.origin+path, nil)
	if err != nil {
		return CachedAsset{}, err
	}
	resp, err := w.client.Do(req)
	if err != nil {
		return CachedAsset{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return CachedAsset{}, fmt.Errorf("origin returned %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return CachedAsset{}, err
	}
	return CachedAsset{
		Path:        path,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}
