package fetch

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v4"
	"github.com/corpix/uarand"
	gocache "github.com/patrickmn/go-cache"

	"github.com/amc-tools/amc-answers/internal/logger"
)

// Strategy selects how the User-Agent header is chosen per request.
type Strategy string

const (
	// StrategyRotate sends a different randomized User-Agent on every request.
	StrategyRotate Strategy = "rotate"
	// StrategyFixed identifies the tool honestly on every request.
	StrategyFixed Strategy = "fixed"
)

const (
	FixedUserAgent  = "amc-answers-cli/1.0 (github.com/amc-tools/amc-answers)"
	DefaultTimeout  = 10 * time.Second
	DefaultCacheTTL = 5 * time.Minute
)

// NetworkError reports a failed page fetch: timeout, connection failure, or a
// non-success HTTP status. It is terminal for the attempt; retry policy
// belongs to whoever configured the client.
type NetworkError struct {
	URL    string
	Status int
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetching %s: unexpected status code: %d", e.URL, e.Status)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Options configure a Client. Zero values select the defaults.
type Options struct {
	Timeout    time.Duration
	UserAgent  Strategy
	MaxRetries uint64        // 0 disables retrying
	CacheTTL   time.Duration // negative disables the page cache
}

// Client fetches wiki pages and parses them into goquery documents.
type Client struct {
	client     *http.Client
	strategy   Strategy
	maxRetries uint64
	cache      *gocache.Cache
}

// New creates a Client from the given options.
func New(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = StrategyRotate
	}

	var pageCache *gocache.Cache
	if opts.CacheTTL >= 0 {
		ttl := opts.CacheTTL
		if ttl == 0 {
			ttl = DefaultCacheTTL
		}
		pageCache = gocache.New(ttl, 2*ttl)
	}

	return &Client{
		client:     &http.Client{Timeout: opts.Timeout},
		strategy:   opts.UserAgent,
		maxRetries: opts.MaxRetries,
		cache:      pageCache,
	}
}

// Fetch retrieves the page at url and returns the parsed document. A page
// served from the cache is returned as-is; documents are never mutated by
// their consumers.
func (c *Client) Fetch(url string) (*goquery.Document, error) {
	if c.cache != nil {
		if cached, ok := c.cache.Get(url); ok {
			logger.IncrCounter("fetch.cache_hit")
			logger.Debug("Serving page from cache", logger.Fields{"url": url})
			return cached.(*goquery.Document), nil
		}
	}

	start := time.Now()
	doc, err := c.fetchWithRetry(url)
	logger.RecordTiming("fetch.page", time.Since(start))
	if err != nil {
		logger.IncrCounter("fetch.failure")
		logger.Error("Page fetch failed", logger.Fields{"url": url}, err)
		return nil, err
	}

	logger.IncrCounter("fetch.success")
	logger.Debug("Fetched page", logger.Fields{"url": url, "elapsed": time.Since(start).String()})

	if c.cache != nil {
		c.cache.SetDefault(url, doc)
	}
	return doc, nil
}

// fetchWithRetry applies the configured retry policy. Client errors (4xx)
// never retry: the page simply does not exist.
func (c *Client) fetchWithRetry(url string) (*goquery.Document, error) {
	if c.maxRetries == 0 {
		return c.fetchOnce(url)
	}

	var doc *goquery.Document
	operation := func() error {
		d, err := c.fetchOnce(url)
		if err != nil {
			var netErr *NetworkError
			if errors.As(err, &netErr) && netErr.Status >= 400 && netErr.Status < 500 {
				return backoff.Permanent(err)
			}
			return err
		}
		doc = d
		return nil
	}

	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}
	return doc, nil
}

func (c *Client) fetchOnce(url string) (*goquery.Document, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &NetworkError{URL: url, Status: resp.StatusCode}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return doc, nil
}

func (c *Client) userAgent() string {
	if c.strategy == StrategyFixed {
		return FixedUserAgent
	}
	return uarand.GetRandom()
}
