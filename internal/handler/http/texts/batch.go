package texts

import (
	"encoding/json"
	"net/http"

	"texttools/internal/handler/http/respond"
	"texttools/internal/usecase/summary"
)

// SummarizeBatchHandler summarizes several documents in one request.
// Documents fail independently; the response carries a result or an
// error per slot, in input order.
type SummarizeBatchHandler struct{ Svc *summary.Service }

func (h SummarizeBatchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Documents []string `json:"documents"`
		Count     int      `json:"count"`
		Policy    string   `json:"policy"`
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

	items, err := h.Svc.SummarizeBatch(r.Context(), req.Documents, req.Count, policy)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	dtos := make([]BatchItemDTO, len(items))
	for i, item := range items {
		if item.Err != nil {
			dtos[i].Error = item.Err.Error()
			continue
		}
		dtos[i].Summary = item.Result.Summary
		dtos[i].TotalSentences = item.Result.TotalSentences
	}

	respond.JSON(w, http.StatusOK, map[string]any{"results": dtos})
}
