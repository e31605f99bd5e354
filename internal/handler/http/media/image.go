// Package media provides HTTP handlers for the generative media
// endpoints (text to image, text to speech).
package media

import (
	"encoding/json"
	"errors"
	"net/http"

	"texttools/internal/domain/entity"
	"texttools/internal/handler/http/respond"
	"texttools/internal/usecase/mediagen"
)

// ImageHandler generates an image from a text prompt and streams it
// back as binary.
type ImageHandler struct{ Svc *mediagen.Service }

func (h ImageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.Svc.GenerateImage(r.Context(), req.Text)
	if err != nil {
		writeMediaError(w, err)
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Data)
}

// writeMediaError maps media generation failures onto HTTP statuses.
func writeMediaError(w http.ResponseWriter, err error) {
	var validationErr *entity.ValidationError
	switch {
	case errors.Is(err, entity.ErrBlankText), errors.As(err, &validationErr):
		respond.SafeError(w, http.StatusBadRequest, err)
	case errors.Is(err, mediagen.ErrGenerationFailed):
		respond.SafeErrorV2(w, http.StatusBadGateway,
			respond.NewAppError(http.StatusBadGateway, "media generation failed", err))
	default:
		respond.SafeErrorV2(w, http.StatusBadGateway,
			respond.NewAppError(http.StatusBadGateway, "upstream media service failed", err))
	}
}
