package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"texttools/internal/usecase/summary"
)

// maxFeedConcurrency bounds parallel item summarization when processing
// a feed so a large feed cannot monopolize the process.
const maxFeedConcurrency = 4

// ArticleSummary is the result of summarizing a fetched article.
type ArticleSummary struct {
	URL            string
	Summary        []string
	TotalSentences int
}

// FeedItemSummary is the result of summarizing a single feed item.
// Err is non-nil when that item could not be fetched or summarized;
// other items are unaffected.
type FeedItemSummary struct {
	Title       string
	URL         string
	PublishedAt time.Time
	Summary     []string
	Err         error
}

// Service orchestrates fetching remote content and feeding it through
// the summarizer.
type Service struct {
	articles   ArticleFetcher
	feeds      FeedFetcher
	summarizer *summary.Service
}

// NewService creates a fetch service. Any of the fetchers may be nil if
// the corresponding endpoint is disabled; calls through a nil fetcher
// panic, so wiring must match the registered routes.
func NewService(articles ArticleFetcher, feeds FeedFetcher, summarizer *summary.Service) *Service {
	return &Service{
		articles:   articles,
		feeds:      feeds,
		summarizer: summarizer,
	}
}

// SummarizeURL fetches the article at url, extracts its readable text
// and summarizes it.
func (s *Service) SummarizeURL(ctx context.Context, url string, count int, policy summary.Policy) (*ArticleSummary, error) {
	text, err := s.articles.FetchArticle(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch article: %w", err)
	}

	result, err := s.summarizer.Summarize(ctx, text, count, policy)
	if err != nil {
		return nil, fmt.Errorf("summarize article: %w", err)
	}

	slog.Info("article summarized",
		slog.String("url", url),
		slog.Int("sentences_total", result.TotalSentences),
		slog.Int("sentences_selected", len(result.Summary)))

	return &ArticleSummary{
		URL:            url,
		Summary:        result.Summary,
		TotalSentences: result.TotalSentences,
	}, nil
}

// SummarizeFeed fetches the feed at url and summarizes up to maxItems of
// its entries concurrently. Items whose content cannot be summarized are
// reported with a per-item error rather than failing the whole feed.
// Results preserve the feed's item order.
func (s *Service) SummarizeFeed(ctx context.Context, url string, count, maxItems int, policy summary.Policy) ([]FeedItemSummary, error) {
	items, err := s.feeds.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrEmptyFeed
	}
	if maxItems > 0 && len(items) > maxItems {
		items = items[:maxItems]
	}

	results := make([]FeedItemSummary, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxFeedConcurrency)

	for i, item := range items {
		g.Go(func() error {
			results[i] = s.summarizeItem(gctx, item, count, policy)
			return nil
		})
	}

	// Workers never return errors; Wait only surfaces context cancellation.
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// summarizeItem summarizes a single feed item, preferring the content
// embedded in the feed and falling back to fetching the linked article.
func (s *Service) summarizeItem(ctx context.Context, item FeedItem, count int, policy summary.Policy) FeedItemSummary {
	out := FeedItemSummary{
		Title:       item.Title,
		URL:         item.URL,
		PublishedAt: item.PublishedAt,
	}

	text := item.Content
	if text == "" && item.URL != "" && s.articles != nil {
		fetched, err := s.articles.FetchArticle(ctx, item.URL)
		if err != nil {
			slog.Warn("feed item fetch failed",
				slog.String("url", item.URL),
				slog.Any("error", err))
			out.Err = err
			return out
		}
		text = fetched
	}

	result, err := s.summarizer.Summarize(ctx, text, count, policy)
	if err != nil {
		out.Err = err
		return out
	}

	out.Summary = result.Summary
	return out
}
