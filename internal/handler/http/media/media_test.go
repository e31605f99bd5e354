package media_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"texttools/internal/handler/http/media"
	"texttools/internal/usecase/mediagen"
)

type stubImageGenerator struct {
	data        []byte
	contentType string
	err         error
}

func (s *stubImageGenerator) GenerateImage(_ context.Context, _ string) ([]byte, string, error) {
	return s.data, s.contentType, s.err
}

type stubSynthesizer struct {
	data        []byte
	contentType string
	err         error
}

func (s *stubSynthesizer) Synthesize(_ context.Context, _ string) ([]byte, string, error) {
	return s.data, s.contentType, s.err
}

func TestImageHandler_Success(t *testing.T) {
	png := []byte{0x89, 0x50, 0x4e, 0x47}
	svc := mediagen.NewService(&stubImageGenerator{data: png, contentType: "image/png"}, nil)
	handler := media.ImageHandler{Svc: svc}

	req := httptest.NewRequest(http.MethodPost, "/media/image", strings.NewReader(`{"text": "a cat"}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body: %s)", rr.Code, http.StatusOK, rr.Body.String())
	}
	if got := rr.Header().Get("Content-Type"); got != "image/png" {
		t.Errorf("Content-Type = %q, want image/png", got)
	}
	if !bytes.Equal(rr.Body.Bytes(), png) {
		t.Errorf("body = %v, want raw image bytes", rr.Body.Bytes())
	}
}

func TestImageHandler_BadRequests(t *testing.T) {
	svc := mediagen.NewService(&stubImageGenerator{data: []byte{1}, contentType: "image/png"}, nil)
	handler := media.ImageHandler{Svc: svc}

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"text": `},
		{"blank prompt", `{"text": "  "}`},
		{"prompt too long", `{"text": "` + strings.Repeat("x", mediagen.MaxPromptLength+1) + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/media/image", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rr.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestImageHandler_UpstreamFailure(t *testing.T) {
	tests := []struct {
		name string
		stub *stubImageGenerator
	}{
		{"empty payload", &stubImageGenerator{contentType: "image/png"}},
		{"upstream error", &stubImageGenerator{err: errors.New("HTTP 503: overloaded")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := media.ImageHandler{Svc: mediagen.NewService(tt.stub, nil)}

			req := httptest.NewRequest(http.MethodPost, "/media/image", strings.NewReader(`{"text": "a cat"}`))
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != http.StatusBadGateway {
				t.Errorf("status = %d, want %d", rr.Code, http.StatusBadGateway)
			}
			if strings.Contains(rr.Body.String(), "overloaded") {
				t.Error("response leaked upstream error detail")
			}
		})
	}
}

func TestSpeechHandler_Success(t *testing.T) {
	mp3 := []byte{0xff, 0xfb, 0x90}
	svc := mediagen.NewService(nil, &stubSynthesizer{data: mp3, contentType: "audio/mpeg"})
	handler := media.SpeechHandler{Svc: svc}

	req := httptest.NewRequest(http.MethodPost, "/media/speech", strings.NewReader(`{"text": "read this"}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body: %s)", rr.Code, http.StatusOK, rr.Body.String())
	}
	if got := rr.Header().Get("Content-Type"); got != "audio/mpeg" {
		t.Errorf("Content-Type = %q, want audio/mpeg", got)
	}
	if !bytes.Equal(rr.Body.Bytes(), mp3) {
		t.Errorf("body = %v, want raw audio bytes", rr.Body.Bytes())
	}
}

func TestSpeechHandler_BlankText(t *testing.T) {
	svc := mediagen.NewService(nil, &stubSynthesizer{data: []byte{1}, contentType: "audio/mpeg"})
	handler := media.SpeechHandler{Svc: svc}

	req := httptest.NewRequest(http.MethodPost, "/media/speech", strings.NewReader(`{"text": ""}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}
