package pipeline

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"stencil/internal/model"
	"stencil/internal/store"
	"stencil/internal/util"
	"stencil/internal/worker"
)

// Fetcher retrieves posting pages when the extraction input is a URL
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
	robots     *util.RobotsChecker // nil when robots checking is disabled
	limiter    *worker.Limiter
	cache      store.Cache // nil when caching is disabled
	cacheTTL   time.Duration
}

// NewFetcher creates a fetcher from the HTTP and cache configuration
func NewFetcher(cfg model.HTTPConfig, cacheCfg model.CacheConfig) *Fetcher {
	f := &Fetcher{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent: cfg.UserAgent,
		maxBytes:  cfg.MaxBodyBytes,
		limiter:   worker.NewLimiter(cfg.RequestsPerSecond, 2),
	}
	if cfg.RespectRobots {
		f.robots = util.NewRobotsChecker(cfg.UserAgent, cfg.Timeout)
	}
	if cacheCfg.Enabled {
		f.cache = store.NewMemoryCache(cacheCfg.TTL, cacheCfg.CleanupInterval)
		f.cacheTTL = cacheCfg.TTL
	}
	return f
}

// FetchResult contains the fetched body and metadata
type FetchResult struct {
	Body        string
	ContentType string
	FinalURL    string
}

// Fetch retrieves the page at rawURL, honoring robots.txt and per-domain rate
// limits, and serving repeated fetches from the cache
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*FetchResult, error) {
	if f.cache != nil {
		if body, ok := f.cache.Get(store.CacheKey(rawURL)); ok {
			return &FetchResult{Body: string(body), FinalURL: rawURL}, nil
		}
	}

	if f.robots != nil {
		allowed, delay, err := f.robots.CanFetch(ctx, rawURL)
		if err != nil {
			return nil, fmt.Errorf("robots check: %w", err)
		}
		if !allowed {
			return nil, fmt.Errorf("robots.txt disallows fetching %s", rawURL)
		}
		if err := f.limiter.WaitWithDelay(ctx, rawURL, delay); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	} else if err := f.limiter.Wait(ctx, rawURL); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,text/plain;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	result := &FetchResult{
		Body:        string(body),
		ContentType: resp.Header.Get("Content-Type"),
		FinalURL:    resp.Request.URL.String(),
	}
	if f.cache != nil {
		_ = f.cache.Set(store.CacheKey(rawURL), body, f.cacheTTL)
	}
	return result, nil
}
