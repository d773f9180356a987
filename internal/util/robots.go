// Package util holds small infrastructure helpers shared by the fetch path
package util

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/temoto/robotstxt"
)

// RobotsChecker decides whether a posting page may be fetched according to
// its site's robots.txt, caching one parsed policy per host
type RobotsChecker struct {
	policies   map[string]*robotstxt.RobotsData
	mu         sync.RWMutex
	httpClient *http.Client
	agent      string
}

// NewRobotsChecker creates a checker for the given user agent
func NewRobotsChecker(userAgent string, timeout time.Duration) *RobotsChecker {
	return &RobotsChecker{
		policies:   make(map[string]*robotstxt.RobotsData),
		httpClient: &http.Client{Timeout: timeout},
		agent:      productName(userAgent),
	}
}

// CanFetch reports whether rawURL may be fetched and any crawl delay the site
// requests. An unreachable robots.txt allows the fetch.
func (r *RobotsChecker) CanFetch(ctx context.Context, rawURL string) (bool, time.Duration, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false, 0, fmt.Errorf("parse URL: %w", err)
	}

	policy, err := r.policy(ctx, parsed.Scheme, parsed.Host)
	if err != nil {
		return true, 0, nil
	}

	allowed := policy.TestAgent(parsed.Path, r.agent)
	var delay time.Duration
	if group := policy.FindGroup(r.agent); group != nil {
		delay = group.CrawlDelay
	}
	return allowed, delay, nil
}

func (r *RobotsChecker) policy(ctx context.Context, scheme, host string) (*robotstxt.RobotsData, error) {
	r.mu.RLock()
	policy, exists := r.policies[host]
	r.mu.RUnlock()
	if exists {
		return policy, nil
	}

	robotsURL := fmt.Sprintf("%s://%s/robots.txt", scheme, host)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", r.agent)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch robots.txt: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	policy, err = robotstxt.FromResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("parse robots.txt: %w", err)
	}

	r.mu.Lock()
	r.policies[host] = policy
	r.mu.Unlock()
	return policy, nil
}

// productName reduces a full User-Agent string to the product token robots.txt
// groups are matched against, e.g. "Stencil/0.1 (...)" -> "Stencil"
func productName(ua string) string {
	parts := strings.Fields(ua)
	if len(parts) == 0 {
		return ua
	}
	return strings.Split(parts[0], "/")[0]
}
