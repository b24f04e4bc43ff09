package assets

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
)

// downloader is the slice of the API client the fetcher needs.
// Satisfied by *figma.Client.
type downloader interface {
	GetImageURLs(ctx context.Context, key string) (map[string]string, error)
	Download(ctx context.Context, url string) ([]byte, error)
}

// Fetcher fills the cache with the image refs a generated document
// uses. Refs already cached are not re-downloaded.
type Fetcher struct {
	Cache  *Cache
	Client downloader

	// Log receives per-job progress lines when non-nil.
	Log *log.Logger
}

// Ensure makes every ref available in the cache, downloading the
// missing ones. Returns the number of refs actually downloaded.
//
// Each call is one job with a UUID identifier for log correlation.
func (f *Fetcher) Ensure(ctx context.Context, key string, refs []string) (int, error) {
	job := uuid.Must(uuid.NewV7()).String()

	var missing []string
	for _, ref := range refs {
		ok, err := f.Cache.Has(ctx, ref)
		if err != nil {
			return 0, err
		}
		if !ok {
			missing = append(missing, ref)
		}
	}
	if len(missing) == 0 {
		f.logf("job %s: all %d refs cached", job, len(refs))
		return 0, nil
	}
	f.logf("job %s: %d of %d refs missing", job, len(missing), len(refs))

	urls, err := f.Client.GetImageURLs(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("job %s: resolve image urls: %w", job, err)
	}

	fetched := 0
	for _, ref := range missing {
		url, ok := urls[ref]
		if !ok {
			// The server no longer knows the ref. The paint body still
			// references it, so surface the gap instead of silently
			// generating a broken preload.
			return fetched, fmt.Errorf("job %s: no url for image ref %s", job, ref)
		}

		data, err := f.Client.Download(ctx, url)
		if err != nil {
			return fetched, fmt.Errorf("job %s: download %s: %w", job, ref, err)
		}
		if err := f.Cache.Put(ctx, ref, "", data); err != nil {
			return fetched, fmt.Errorf("job %s: %w", job, err)
		}
		fetched++
		f.logf("job %s: cached %s (%d bytes)", job, ref, len(data))
	}

	return fetched, nil
}

func (f *Fetcher) logf(format string, args ...any) {
	if f.Log != nil {
		f.Log.Printf(format, args...)
	}
}
