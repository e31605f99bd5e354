package match

import (
	"net/http"

	"texttools/internal/usecase/match"
)

// Register registers the matching endpoint on mux.
func Register(mux *http.ServeMux, svc *match.Service) {
	mux.Handle("POST /match/score", ScoreHandler{svc})
}
