package media

import (
	"net/http"

	"texttools/internal/handler/http/auth"
	"texttools/internal/usecase/mediagen"
)

// Register registers the media generation endpoints on mux. Both routes
// spend upstream quota and therefore require authentication.
func Register(mux *http.ServeMux, svc *mediagen.Service) {
	mux.Handle("POST /media/image", auth.Authz(ImageHandler{svc}))
	mux.Handle("POST /media/speech", auth.Authz(SpeechHandler{svc}))
}
