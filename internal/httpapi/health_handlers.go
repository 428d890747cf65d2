package httpapi

import (
	"net/http"

	"github.com/narendercheckout-spec/Yelvantix/internal/search"
)

type HealthHandler struct {
	Searcher *search.Service
}

func (h HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	live := h.Searcher != nil && h.Searcher.Live != nil && h.Searcher.Live.Configured()
	writeJSON(w, map[string]any{
		"ok":              true,
		"live_configured": live,
	})
}
