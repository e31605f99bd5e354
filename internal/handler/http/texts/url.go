package texts

import (
	"encoding/json"
	"errors"
	"net/http"

	"texttools/internal/domain/entity"
	"texttools/internal/handler/http/respond"
	"texttools/internal/usecase/fetch"
	"texttools/internal/usecase/summary"
)

// SummarizeURLHandler fetches an article and summarizes its text.
type SummarizeURLHandler struct{ Svc *fetch.Service }

func (h SummarizeURLHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL    string `json:"url"`
		Count  int    `json:"count"`
		Policy string `json:"policy"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if req.URL == "" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("url is required"))
		return
	}
	if req.Count == 0 {
		req.Count = defaultSentenceCount
	}

	policy, err := summary.ParsePolicy(req.Policy)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.Svc.SummarizeURL(r.Context(), req.URL, req.Count, policy)
	if err != nil {
		// A fetched page may still fail the text guards; those map to
		// the extraction failure rather than a client error.
		if errors.Is(err, entity.ErrBlankText) || errors.Is(err, entity.ErrInsufficientSentences) {
			writeGatewayError(w, http.StatusBadGateway, "could not retrieve readable content", err)
			return
		}
		if errors.Is(err, entity.ErrInvalidCount) {
			respond.SafeError(w, http.StatusBadRequest, err)
			return
		}
		writeFetchError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, ArticleSummaryDTO{
		URL:            result.URL,
		Summary:        result.Summary,
		TotalSentences: result.TotalSentences,
	})
}
