package fetch

import (
	"context"
	"errors"
	"time"
)

// ArticleFetcher is an interface for fetching readable article text from
// URLs. Implementations extract clean article text from web pages using
// an extraction algorithm (e.g., Mozilla Readability) so the summarizer
// works on prose rather than markup.
//
// Security considerations:
//   - Implementations MUST prevent Server-Side Request Forgery (SSRF) attacks
//   - Implementations MUST enforce size limits to prevent memory exhaustion
//   - Implementations MUST enforce timeouts to prevent resource starvation
//   - Implementations MUST validate redirect targets
type ArticleFetcher interface {
	// FetchArticle fetches and extracts article text from the given URL.
	//
	// Errors:
	//   - ErrInvalidURL: URL format is invalid or uses unsupported scheme
	//   - ErrPrivateIP: URL resolves to a private IP address (SSRF prevention)
	//   - ErrTooManyRedirects: redirect chain exceeds configured maximum
	//   - ErrBodyTooLarge: response body exceeds size limit
	//   - ErrTimeout: request timed out
	//   - ErrExtractFailed: content extraction failed
	//   - gobreaker.ErrOpenState: circuit breaker is open (too many failures)
	FetchArticle(ctx context.Context, url string) (string, error)
}

// FeedItem represents a single item from an RSS/Atom feed.
type FeedItem struct {
	Title       string
	URL         string
	Content     string
	PublishedAt time.Time
}

// FeedFetcher is an interface for fetching RSS/Atom feeds from a URL.
type FeedFetcher interface {
	Fetch(ctx context.Context, url string) ([]FeedItem, error)
}

// Sentinel errors for content fetching operations. These allow callers
// to distinguish failure modes and map them to HTTP status codes.
var (
	// ErrInvalidURL indicates the URL format is invalid or uses an
	// unsupported scheme. Only http:// and https:// are supported.
	ErrInvalidURL = errors.New("invalid URL or unsupported scheme")

	// ErrPrivateIP indicates the URL resolves to a private IP address.
	// This error prevents Server-Side Request Forgery (SSRF) attacks.
	ErrPrivateIP = errors.New("private IP access denied (SSRF prevention)")

	// ErrTooManyRedirects indicates the redirect chain exceeded the
	// configured maximum.
	ErrTooManyRedirects = errors.New("too many redirects")

	// ErrBodyTooLarge indicates the response body exceeded the size limit.
	ErrBodyTooLarge = errors.New("response body too large")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("request timeout")

	// ErrExtractFailed indicates no readable article text could be
	// extracted from the fetched page.
	ErrExtractFailed = errors.New("content extraction failed")

	// ErrEmptyFeed indicates the feed parsed but contained no items.
	ErrEmptyFeed = errors.New("feed contains no items")
)
