package texts

import (
	"encoding/json"
	"net/http"

	"texttools/internal/handler/http/respond"
	"texttools/internal/usecase/summary"
)

// defaultSentenceCount is used when the request omits "count".
const defaultSentenceCount = 2

// SummarizeHandler summarizes raw text supplied in the request body.
type SummarizeHandler struct{ Svc *summary.Service }

func (h SummarizeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text   string `json:"text"`
		Count  int    `json:"count"`
		Policy string `json:"policy"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
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

	result, err := h.Svc.Summarize(r.Context(), req.Text, req.Count, policy)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	respond.JSON(w, http.StatusOK, SummaryDTO{
		Summary:        result.Summary,
		TotalSentences: result.TotalSentences,
		Policy:         string(result.Policy),
	})
}
