// Package feed fetches and parses RSS/Atom feeds for feed summarization.
package feed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"texttools/internal/observability/metrics"
	"texttools/internal/resilience/circuitbreaker"
	"texttools/internal/usecase/fetch"
)

// GofeedFetcher implements fetch.FeedFetcher using mmcdole/gofeed, which
// handles RSS 0.9x/1.0/2.0 and Atom transparently.
//
// Thread safety: gofeed parsers are not safe for concurrent use, so a
// parser is created per call. Parser construction is cheap.
type GofeedFetcher struct {
	circuitBreaker *circuitbreaker.CircuitBreaker
	timeout        time.Duration
}

// NewGofeedFetcher creates a feed fetcher with the given per-request
// timeout.
func NewGofeedFetcher(timeout time.Duration) *GofeedFetcher {
	return &GofeedFetcher{
		circuitBreaker: circuitbreaker.New(circuitbreaker.FeedFetchConfig()),
		timeout:        timeout,
	}
}

// Fetch retrieves and parses the feed at url.
func (f *GofeedFetcher) Fetch(ctx context.Context, url string) ([]fetch.FeedItem, error) {
	start := time.Now()
	result, err := f.circuitBreaker.Execute(func() (interface{}, error) {
		return f.doFetch(ctx, url)
	})
	metrics.RecordOutbound("feed", err, time.Since(start))

	if err != nil {
		return nil, err
	}
	return result.([]fetch.FeedItem), nil
}

func (f *GofeedFetcher) doFetch(ctx context.Context, url string) (interface{}, error) {
	reqCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	parsed, err := gofeed.NewParser().ParseURLWithContext(url, reqCtx)
	if err != nil {
		if reqCtx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("%w: feed fetch exceeded %v", fetch.ErrTimeout, f.timeout)
		}
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	items := make([]fetch.FeedItem, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item == nil {
			continue
		}

		content := item.Content
		if content == "" {
			content = item.Description
		}
		content = stripHTML(content)

		var published time.Time
		if item.PublishedParsed != nil {
			published = *item.PublishedParsed
		}

		items = append(items, fetch.FeedItem{
			Title:       item.Title,
			URL:         item.Link,
			Content:     content,
			PublishedAt: published,
		})
	}

	return items, nil
}

// stripHTML reduces feed item content to plain text. Many feeds embed
// full HTML in <content:encoded>; the summarizer wants prose.
func stripHTML(content string) string {
	if !strings.Contains(content, "<") {
		return strings.TrimSpace(content)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return strings.TrimSpace(content)
	}
	return strings.TrimSpace(doc.Text())
}
