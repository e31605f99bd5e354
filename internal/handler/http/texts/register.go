package texts

import (
	"net/http"

	"texttools/internal/usecase/fetch"
	"texttools/internal/usecase/summary"
)

// Register registers the summarization endpoints on mux. The fetch
// service may be nil, in which case the URL and feed routes are not
// registered.
func Register(mux *http.ServeMux, summarySvc *summary.Service, fetchSvc *fetch.Service) {
	mux.Handle("POST /summarize", SummarizeHandler{summarySvc})
	mux.Handle("POST /summarize/batch", SummarizeBatchHandler{summarySvc})

	if fetchSvc != nil {
		mux.Handle("POST /summarize/url", SummarizeURLHandler{fetchSvc})
		mux.Handle("POST /summarize/feed", SummarizeFeedHandler{fetchSvc})
	}
}
