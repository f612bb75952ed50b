package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v4"

	"github.com/mazim-lab/conference-tracker/internal/logger"
)

const (
	// UserAgent identifies the tracker politely on outbound requests.
	UserAgent = "conference-tracker/1.0 (github.com/mazim-lab/conference-tracker)"

	// DefaultTimeout bounds a single page fetch.
	DefaultTimeout = 30 * time.Second

	// challengeWait is how long to back off before the single bot-challenge
	// retry.
	challengeWait = 8 * time.Second
)

// ErrBotChallenge marks a page that stayed behind a bot-challenge
// interstitial after the bounded retry. Callers treat it as "no data for this
// page", never as fatal to the batch.
var ErrBotChallenge = fmt.Errorf("bot challenge persisted after retry")

// Fetcher is the page-access abstraction. ListingHTML returns the raw HTML of
// a listing page; DetailText returns the visible text of a detail page.
type Fetcher interface {
	ListingHTML(ctx context.Context, url string) (string, error)
	DetailText(ctx context.Context, url string) (string, error)
}

// HTTPFetcher fetches pages over plain HTTP with a bounded timeout and one
// bounded retry when a bot-challenge interstitial is detected.
type HTTPFetcher struct {
	client *http.Client
	log    *logger.Logger
}

// NewHTTPFetcher creates a fetcher. A non-positive timeout falls back to
// DefaultTimeout.
func NewHTTPFetcher(log *logger.Logger, timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPFetcher{
		client: &http.Client{Timeout: timeout},
		log:    log,
	}
}

func (f *HTTPFetcher) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading page body: %w", err)
	}
	return string(body), nil
}

// botChallenged reports whether page content looks like a bot-challenge
// interstitial rather than the real page.
func botChallenged(content string) bool {
	return strings.Contains(content, "Cloudflare") ||
		strings.Contains(content, "security verification")
}

// fetch retrieves a page, retrying exactly once if a bot challenge is
// detected. Repeated challenge content yields ErrBotChallenge.
func (f *HTTPFetcher) fetch(ctx context.Context, url string) (string, error) {
	content, err := f.get(ctx, url)
	if err != nil {
		return "", err
	}
	if !botChallenged(content) {
		return content, nil
	}

	f.log.Warn("bot challenge detected, retrying once", logger.Fields{"url": url})
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(challengeWait), 1), ctx)
	err = backoff.Retry(func() error {
		content, err = f.get(ctx, url)
		if err != nil {
			return backoff.Permanent(err)
		}
		if botChallenged(content) {
			return ErrBotChallenge
		}
		return nil
	}, policy)
	if err != nil {
		return "", ErrBotChallenge
	}
	return content, nil
}

// ListingHTML returns the raw HTML of a listing page.
func (f *HTTPFetcher) ListingHTML(ctx context.Context, url string) (string, error) {
	return f.fetch(ctx, url)
}

// DetailText returns the visible text of a detail page, suitable for the
// extraction cascades.
func (f *HTTPFetcher) DetailText(ctx context.Context, url string) (string, error) {
	html, err := f.fetch(ctx, url)
	if err != nil {
		return "", err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing detail page: %w", err)
	}
	return doc.Find("body").Text(), nil
}
