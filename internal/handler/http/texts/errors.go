package texts

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/sony/gobreaker"

	"texttools/internal/handler/http/respond"
	"texttools/internal/usecase/fetch"
)

// writeFetchError maps fetch failures onto HTTP statuses. Input problems
// (bad URL, blocked target) are the caller's fault; upstream problems
// surface as gateway errors with a generic message so internal detail
// stays in the logs.
func writeFetchError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, fetch.ErrInvalidURL),
		errors.Is(err, fetch.ErrPrivateIP),
		errors.Is(err, fetch.ErrEmptyFeed):
		respond.SafeError(w, http.StatusBadRequest, err)
	case errors.Is(err, fetch.ErrTimeout):
		writeGatewayError(w, http.StatusGatewayTimeout, "upstream request timed out", err)
	case errors.Is(err, gobreaker.ErrOpenState),
		errors.Is(err, gobreaker.ErrTooManyRequests):
		writeGatewayError(w, http.StatusServiceUnavailable, "upstream temporarily unavailable", err)
	case errors.Is(err, fetch.ErrTooManyRedirects),
		errors.Is(err, fetch.ErrBodyTooLarge),
		errors.Is(err, fetch.ErrExtractFailed):
		writeGatewayError(w, http.StatusBadGateway, "could not retrieve readable content", err)
	default:
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}

func writeGatewayError(w http.ResponseWriter, code int, msg string, err error) {
	slog.Warn("upstream fetch failed",
		slog.Int("status", code),
		slog.String("error", respond.SanitizeError(err)))
	respond.JSON(w, code, map[string]string{"error": msg})
}
