package responsewriter_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"texttools/internal/handler/http/responsewriter"
)

func TestWrap_Defaults(t *testing.T) {
	w := responsewriter.Wrap(httptest.NewRecorder())

	if w.StatusCode() != http.StatusOK {
		t.Errorf("StatusCode() = %d, want 200 before any write", w.StatusCode())
	}
	if w.BytesWritten() != 0 {
		t.Errorf("BytesWritten() = %d, want 0", w.BytesWritten())
	}
}

func TestWriteHeader_RecordsOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	w := responsewriter.Wrap(rec)

	w.WriteHeader(http.StatusNotFound)
	w.WriteHeader(http.StatusInternalServerError)

	if w.StatusCode() != http.StatusNotFound {
		t.Errorf("StatusCode() = %d, want first write to win", w.StatusCode())
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("underlying Code = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestWrite_CountsBytes(t *testing.T) {
	rec := httptest.NewRecorder()
	w := responsewriter.Wrap(rec)

	if _, err := w.Write([]byte("hello ")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if _, err := w.Write([]byte("world")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if w.BytesWritten() != 11 {
		t.Errorf("BytesWritten() = %d, want 11", w.BytesWritten())
	}
	if w.StatusCode() != http.StatusOK {
		t.Errorf("StatusCode() = %d, want implicit 200", w.StatusCode())
	}
}

func TestUnwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	w := responsewriter.Wrap(rec)

	if w.Unwrap() != rec {
		t.Error("Unwrap() did not return the wrapped writer")
	}
}
