// Package gtts synthesizes speech through the Google Translate
// text-to-speech endpoint.
package gtts

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"

	"texttools/internal/infra/ratelimit"
	"texttools/internal/resilience/circuitbreaker"
	"texttools/internal/resilience/retry"
	"texttools/pkg/config"
)

const (
	defaultEndpoint = "https://translate.google.com/translate_tts"

	// maxChunkLen is the longest text fragment the endpoint accepts per
	// request. Longer inputs are split at whitespace and the resulting
	// MP3 segments concatenated; MP3 frames are self-contained, so
	// concatenation yields a valid stream.
	maxChunkLen = 200

	maxAudioSize = 10 * 1024 * 1024
)

// Client synthesizes speech via the translate TTS endpoint. It
// implements mediagen.SpeechSynthesizer.
type Client struct {
	httpClient     *http.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	limiter        *ratelimit.Limiter
	retryConfig    retry.Config
	endpoint       string
	language       string
}

// NewClientFromEnv builds a client from environment variables:
//   - TTS_ENDPOINT: endpoint URL override
//   - TTS_LANGUAGE: BCP 47 language tag (default "en")
//   - TTS_TIMEOUT: per-request timeout (default 30s)
func NewClientFromEnv() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: config.GetEnvDuration("TTS_TIMEOUT", 30*time.Second),
		},
		circuitBreaker: circuitbreaker.New(circuitbreaker.SpeechAPIConfig()),
		limiter:        ratelimit.New(2.0, 4),
		retryConfig:    retry.MediaAPIConfig(),
		endpoint:       config.GetEnvString("TTS_ENDPOINT", defaultEndpoint),
		language:       config.GetEnvString("TTS_LANGUAGE", "en"),
	}
}

// Synthesize converts text into MP3 audio. Long inputs are split into
// chunks and the segments concatenated in order.
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, string, error) {
	var audio bytes.Buffer

	for _, chunk := range splitChunks(text, maxChunkLen) {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, "", fmt.Errorf("rate limit wait: %w", err)
		}

		segment, err := c.synthesizeChunk(ctx, chunk)
		if err != nil {
			return nil, "", err
		}
		audio.Write(segment)
	}

	return audio.Bytes(), "audio/mpeg", nil
}

func (c *Client) synthesizeChunk(ctx context.Context, chunk string) ([]byte, error) {
	var segment []byte

	err := retry.WithBackoff(ctx, c.retryConfig, func() error {
		result, err := c.circuitBreaker.Execute(func() (interface{}, error) {
			return c.doSynthesize(ctx, chunk)
		})
		if err != nil {
			return err
		}
		segment = result.([]byte)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return segment, nil
}

func (c *Client) doSynthesize(ctx context.Context, chunk string) (interface{}, error) {
	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("client", "tw-ob")
	params.Set("tl", c.language)
	params.Set("q", chunk)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tts request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, &retry.HTTPError{
			StatusCode: resp.StatusCode,
			Message:    "speech synthesis failed",
		}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAudioSize))
	if err != nil {
		return nil, fmt.Errorf("read audio: %w", err)
	}

	return data, nil
}

// splitChunks splits text into pieces no longer than limit bytes,
// breaking at whitespace when possible. A single word longer than the
// limit is split mid-word rather than dropped.
func splitChunks(text string, limit int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var chunks []string
	var current strings.Builder

	for _, word := range strings.FieldsFunc(text, unicode.IsSpace) {
		for len(word) > limit {
			if current.Len() > 0 {
				chunks = append(chunks, current.String())
				current.Reset()
			}
			chunks = append(chunks, word[:limit])
			word = word[limit:]
		}

		switch {
		case current.Len() == 0:
			current.WriteString(word)
		case current.Len()+1+len(word) <= limit:
			current.WriteByte(' ')
			current.WriteString(word)
		default:
			chunks = append(chunks, current.String())
			current.Reset()
			current.WriteString(word)
		}
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}

	return chunks
}
