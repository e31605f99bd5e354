// Package hfimage generates images from text prompts through the
// Hugging Face inference API.
package hfimage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"texttools/internal/infra/ratelimit"
	"texttools/internal/resilience/circuitbreaker"
	"texttools/internal/resilience/retry"
	"texttools/pkg/config"
)

const (
	defaultBaseURL = "https://api-inference.huggingface.co/models"
	defaultModel   = "stabilityai/stable-diffusion-xl-base-1.0"

	// maxImageSize caps the accepted response size. Generated images
	// come back as raw bytes; anything larger than this is suspect.
	maxImageSize = 20 * 1024 * 1024
)

// ErrMissingToken indicates the API token was not configured. The
// client cannot be constructed without it.
var ErrMissingToken = errors.New("hugging face API token is not configured")

// Client calls the Hugging Face text-to-image inference endpoint.
// It implements mediagen.ImageGenerator.
//
// Inference endpoints cold-start, rate-limit and fail in bursts, so
// every call goes through a token bucket, a retry loop and a circuit
// breaker.
type Client struct {
	httpClient     *http.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	limiter        *ratelimit.Limiter
	retryConfig    retry.Config
	baseURL        string
	model          string
	token          string
}

// NewClientFromEnv builds a client from environment variables:
//   - HF_API_TOKEN: API token (required)
//   - HF_IMAGE_MODEL: model identifier (default stable-diffusion-xl)
//   - HF_API_URL: inference API base URL
//   - HF_TIMEOUT: per-request timeout (default 60s)
func NewClientFromEnv() (*Client, error) {
	token := config.GetEnvString("HF_API_TOKEN", "")
	if token == "" {
		return nil, ErrMissingToken
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: config.GetEnvDuration("HF_TIMEOUT", 60*time.Second),
		},
		circuitBreaker: circuitbreaker.New(circuitbreaker.ImageAPIConfig()),
		limiter:        ratelimit.New(1.0, 2),
		retryConfig:    retry.MediaAPIConfig(),
		baseURL:        config.GetEnvString("HF_API_URL", defaultBaseURL),
		model:          config.GetEnvString("HF_IMAGE_MODEL", defaultModel),
		token:          token,
	}, nil
}

// GenerateImage submits prompt to the inference API and returns the
// generated image bytes with their MIME type.
func (c *Client) GenerateImage(ctx context.Context, prompt string) ([]byte, string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, "", fmt.Errorf("rate limit wait: %w", err)
	}

	var data []byte
	var contentType string

	err := retry.WithBackoff(ctx, c.retryConfig, func() error {
		result, err := c.circuitBreaker.Execute(func() (interface{}, error) {
			return c.doGenerate(ctx, prompt)
		})
		if err != nil {
			return err
		}
		resp := result.(*imageResponse)
		data = resp.data
		contentType = resp.contentType
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	return data, contentType, nil
}

type imageResponse struct {
	data        []byte
	contentType string
}

func (c *Client) doGenerate(ctx context.Context, prompt string) (interface{}, error) {
	payload, err := json.Marshal(map[string]string{"inputs": prompt})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("inference request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		// The API returns a JSON error body; surface the status for
		// the retry classifier and keep the body out of client errors.
		return nil, &retry.HTTPError{
			StatusCode: resp.StatusCode,
			Message:    "image generation failed",
		}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageSize))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/png"
	}

	return &imageResponse{data: data, contentType: contentType}, nil
}
