package texts

import (
	"encoding/json"
	"errors"
	"net/http"

	"texttools/internal/handler/http/respond"
	"texttools/internal/usecase/fetch"
	"texttools/internal/usecase/summary"
)

// defaultFeedItems caps how many feed entries are summarized when the
// request does not say.
const defaultFeedItems = 10

// maxFeedItems is the hard upper bound on entries per request.
const maxFeedItems = 25

// SummarizeFeedHandler fetches an RSS/Atom feed and summarizes its
// entries.
type SummarizeFeedHandler struct{ Svc *fetch.Service }

func (h SummarizeFeedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL      string `json:"url"`
		Count    int    `json:"count"`
		Policy   string `json:"policy"`
		MaxItems int    `json:"max_items"`
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
	if req.MaxItems <= 0 {
		req.MaxItems = defaultFeedItems
	}
	if req.MaxItems > maxFeedItems {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("max_items must be 25 or fewer"))
		return
	}

	policy, err := summary.ParsePolicy(req.Policy)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	items, err := h.Svc.SummarizeFeed(r.Context(), req.URL, req.Count, req.MaxItems, policy)
	if err != nil {
		writeFetchError(w, err)
		return
	}

	dtos := make([]FeedItemDTO, len(items))
	for i, item := range items {
		dtos[i] = FeedItemDTO{
			Title:       item.Title,
			URL:         item.URL,
			PublishedAt: item.PublishedAt,
			Summary:     item.Summary,
		}
		if item.Err != nil {
			dtos[i].Error = respond.SanitizeError(item.Err)
		}
	}

	respond.JSON(w, http.StatusOK, map[string]any{"items": dtos})
}
