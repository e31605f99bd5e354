// Package mediagen turns text into generated media (images, speech)
// through pluggable upstream providers.
package mediagen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"texttools/internal/domain/entity"
	"texttools/internal/observability/metrics"
)

// MaxPromptLength bounds the text accepted for image generation.
const MaxPromptLength = 1000

// MaxSpeechLength bounds the text accepted for speech synthesis.
const MaxSpeechLength = 5000

// ErrGenerationFailed indicates the upstream provider could not produce
// media for the given text.
var ErrGenerationFailed = errors.New("media generation failed")

// ImageGenerator produces an image from a text prompt. The returned
// bytes are the encoded image; contentType names its MIME type.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (data []byte, contentType string, err error)
}

// SpeechSynthesizer produces spoken audio from text. The returned bytes
// are the encoded audio; contentType names its MIME type.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text string) (data []byte, contentType string, err error)
}

// Media is generated media ready to stream to a client.
type Media struct {
	Data        []byte
	ContentType string
}

// Service validates requests and delegates to the configured providers.
type Service struct {
	images ImageGenerator
	speech SpeechSynthesizer
}

// NewService creates a media generation service. Either provider may be
// nil if the corresponding endpoint is disabled.
func NewService(images ImageGenerator, speech SpeechSynthesizer) *Service {
	return &Service{images: images, speech: speech}
}

// GenerateImage produces an image for prompt.
func (s *Service) GenerateImage(ctx context.Context, prompt string) (*Media, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, entity.ErrBlankText
	}
	if len(prompt) > MaxPromptLength {
		return nil, &entity.ValidationError{Field: "text", Message: "prompt too long"}
	}

	start := time.Now()
	data, contentType, err := s.images.GenerateImage(ctx, prompt)
	metrics.RecordOutbound("image", err, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("generate image: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrGenerationFailed
	}

	slog.Info("image generated",
		slog.Int("prompt_chars", len(prompt)),
		slog.Int("bytes", len(data)))

	return &Media{Data: data, ContentType: contentType}, nil
}

// Synthesize produces spoken audio for text.
func (s *Service) Synthesize(ctx context.Context, text string) (*Media, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, entity.ErrBlankText
	}
	if len(text) > MaxSpeechLength {
		return nil, &entity.ValidationError{Field: "text", Message: "text too long"}
	}

	start := time.Now()
	data, contentType, err := s.speech.Synthesize(ctx, text)
	metrics.RecordOutbound("speech", err, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("synthesize speech: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrGenerationFailed
	}

	slog.Info("speech synthesized",
		slog.Int("text_chars", len(text)),
		slog.Int("bytes", len(data)))

	return &Media{Data: data, ContentType: contentType}, nil
}
