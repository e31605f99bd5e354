package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"texttools/internal/nlp/language"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func loadResources(t *testing.T) *language.Resources {
	t.Helper()
	resources, err := language.English()
	if err != nil {
		t.Fatalf("language.English() error = %v", err)
	}
	return resources
}

func TestSetupServerWithoutMediaCredentials(t *testing.T) {
	t.Setenv("HF_API_TOKEN", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("API_USER", "")
	t.Setenv("API_PASSWORD", "")

	handler, err := setupServer(testLogger(), loadResources(t), "test")
	if err != nil {
		t.Fatalf("setupServer() error = %v, want nil when media is disabled", err)
	}

	body := `{"text":"The cat sat. The cat ate fish. Dogs bark loudly. Fish swim fast.","count":2}`
	req := httptest.NewRequest(http.MethodPost, "/summarize", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("POST /summarize status = %d, want %d", rec.Code, http.StatusOK)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(`{}`)))
	if rec.Code != http.StatusNotFound {
		t.Errorf("POST /auth/token status = %d, want %d when media is disabled", rec.Code, http.StatusNotFound)
	}
}

func TestSetupServerMediaRequiresAuthConfig(t *testing.T) {
	t.Setenv("HF_API_TOKEN", "hf_test_token")
	t.Setenv("JWT_SECRET", "")

	if _, err := setupServer(testLogger(), loadResources(t), "test"); err == nil {
		t.Fatal("setupServer() error = nil, want auth configuration error when media is enabled")
	}
}

func TestSetupServerMediaEnablesTokenEndpoint(t *testing.T) {
	t.Setenv("HF_API_TOKEN", "hf_test_token")
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("API_USER", "api-client")
	t.Setenv("API_PASSWORD", "correct-horse-battery")

	handler, err := setupServer(testLogger(), loadResources(t), "test")
	if err != nil {
		t.Fatalf("setupServer() error = %v", err)
	}

	body := `{"username":"api-client","password":"correct-horse-battery"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("POST /auth/token status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
}
