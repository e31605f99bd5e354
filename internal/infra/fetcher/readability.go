package fetcher

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"texttools/internal/observability/metrics"
	"texttools/internal/resilience/circuitbreaker"
	"texttools/internal/usecase/fetch"
)

// ReadabilityFetcher implements fetch.ArticleFetcher using the Mozilla
// Readability algorithm, with a paragraph-scrape fallback for pages the
// algorithm cannot parse.
//
// Every request goes through URL validation (SSRF guard), a circuit
// breaker, a body size limit and a per-request timeout. Redirect targets
// are re-validated.
//
// Thread safety: ReadabilityFetcher is safe for concurrent use.
type ReadabilityFetcher struct {
	client         *http.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	config         Config
}

// NewReadabilityFetcher creates a ReadabilityFetcher with the given limits.
func NewReadabilityFetcher(config Config) *ReadabilityFetcher {
	f := &ReadabilityFetcher{
		circuitBreaker: circuitbreaker.New(circuitbreaker.ArticleFetchConfig()),
		config:         config,
	}

	f.client = &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= f.config.MaxRedirects {
				return fmt.Errorf("%w: %d redirects", fetch.ErrTooManyRedirects, len(via))
			}
			// Redirects can point anywhere; each hop gets the same
			// scrutiny as the original URL.
			if err := validateURL(req.URL.String(), f.config.DenyPrivateIPs); err != nil {
				return fmt.Errorf("redirect target rejected: %w", err)
			}
			return nil
		},
	}

	return f
}

// FetchArticle fetches the page at urlStr and returns its readable text.
func (f *ReadabilityFetcher) FetchArticle(ctx context.Context, urlStr string) (string, error) {
	if err := validateURL(urlStr, f.config.DenyPrivateIPs); err != nil {
		return "", err
	}

	start := time.Now()
	result, err := f.circuitBreaker.Execute(func() (interface{}, error) {
		return f.doFetch(ctx, urlStr)
	})
	metrics.RecordOutbound("article", err, time.Since(start))

	if err != nil {
		return "", err
	}
	return result.(string), nil
}

func (f *ReadabilityFetcher) doFetch(ctx context.Context, urlStr string) (interface{}, error) {
	reqCtx, cancel := context.WithTimeout(ctx, f.config.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", fetch.ErrInvalidURL, err)
	}
	req.Header.Set("User-Agent", f.config.UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		if reqCtx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("%w: request exceeded %v", fetch.ErrTimeout, f.config.Timeout)
		}
		// Unwrap redirect validation failures so callers can match
		// the sentinel.
		if urlErr, ok := err.(*url.Error); ok && urlErr.Err != nil {
			return "", urlErr.Err
		}
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	limitedReader := io.LimitReader(resp.Body, f.config.MaxBodySize+1)
	htmlBytes, err := io.ReadAll(limitedReader)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	if int64(len(htmlBytes)) > f.config.MaxBodySize {
		return "", fmt.Errorf("%w: response exceeds %d bytes", fetch.ErrBodyTooLarge, f.config.MaxBodySize)
	}

	// Prefer the post-redirect URL; Readability uses it to resolve
	// relative references.
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		parsedURL = nil
	}
	if resp.Request != nil && resp.Request.URL != nil {
		parsedURL = resp.Request.URL
	}

	text, err := extractText(htmlBytes, parsedURL)
	if err != nil {
		return "", err
	}

	slog.Debug("article fetched",
		slog.String("url", urlStr),
		slog.Int("html_bytes", len(htmlBytes)),
		slog.Int("text_chars", len(text)))

	return text, nil
}

// extractText runs Readability over the HTML, falling back to joining
// the page's <p> elements when the algorithm finds nothing. Some
// server-rendered pages carry their prose in plain paragraphs that
// Readability's scoring discards.
func extractText(htmlBytes []byte, pageURL *url.URL) (string, error) {
	article, err := readability.FromReader(bytes.NewReader(htmlBytes), pageURL)
	if err == nil && strings.TrimSpace(article.TextContent) != "" {
		return article.TextContent, nil
	}

	doc, qerr := goquery.NewDocumentFromReader(bytes.NewReader(htmlBytes))
	if qerr != nil {
		return "", fmt.Errorf("%w: %v", fetch.ErrExtractFailed, qerr)
	}

	var paragraphs []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	})
	if len(paragraphs) == 0 {
		return "", fmt.Errorf("%w: no readable content found", fetch.ErrExtractFailed)
	}

	return strings.Join(paragraphs, " "), nil
}
