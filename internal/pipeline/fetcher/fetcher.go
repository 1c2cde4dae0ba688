package fetcher

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/Anxten/senti-quant/pkg/logger"
)

// Result is the outcome of fetching one URL. Body is empty when the URL
// was unavailable; fetch failures never surface as errors to the caller.
type Result struct {
	URL       string
	Body      string
	Available bool
}

// Fetcher retrieves raw page bodies for batches of URLs. One Fetcher holds
// one HTTP client, so all requests in a run share the same connection pool.
type Fetcher struct {
	client        *http.Client
	logger        *logger.Logger
	maxConcurrent int
}

// New creates a Fetcher with the given per-request timeout and worker cap.
func New(log *logger.Logger, requestTimeout time.Duration, maxConcurrent int) *Fetcher {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &Fetcher{
		client: &http.Client{
			Timeout: requestTimeout,
		},
		logger:        log,
		maxConcurrent: maxConcurrent,
	}
}

// FetchAll retrieves every URL in the batch through a bounded worker pool
// and returns once all requests have resolved. Each URL yields exactly one
// Result; a slow host delays only its own slot, not its siblings.
func (f *Fetcher) FetchAll(ctx context.Context, urls []string) []Result {
	results := make([]Result, len(urls))

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, f.maxConcurrent)

	for i, url := range urls {
		wg.Add(1)
		go func(i int, url string) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			results[i] = f.fetch(ctx, url)
		}(i, url)
	}

	wg.Wait()
	return results
}

func (f *Fetcher) fetch(ctx context.Context, url string) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		f.logger.Error("Failed to create request", logger.ErrorField(err), logger.StringField("url", url))
		return Result{URL: url}
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Warn("Failed to fetch URL", logger.ErrorField(err), logger.StringField("url", url))
		return Result{URL: url}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		f.logger.Warn("Fetch returned non-200 status",
			logger.IntField("status", resp.StatusCode),
			logger.StringField("url", url),
		)
		return Result{URL: url}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		f.logger.Warn("Failed to read response body", logger.ErrorField(err), logger.StringField("url", url))
		return Result{URL: url}
	}

	return Result{URL: url, Body: string(body), Available: true}
}
