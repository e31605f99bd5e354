package media

import (
	"encoding/json"
	"net/http"

	"texttools/internal/handler/http/respond"
	"texttools/internal/usecase/mediagen"
)

// SpeechHandler synthesizes spoken audio from text and streams it back
// as binary.
type SpeechHandler struct{ Svc *mediagen.Service }

func (h SpeechHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.Svc.Synthesize(r.Context(), req.Text)
	if err != nil {
		writeMediaError(w, err)
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Data)
}
