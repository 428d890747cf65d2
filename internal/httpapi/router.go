package httpapi

import "net/http"

// NewMux returns the raw mux so main() can still wrap it in middleware.
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	// Job search
	jh := JobsHandler{Searcher: d.Searcher}
	mux.HandleFunc("/jobs", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.List,
	}))

	// Role catalog
	rh := RolesHandler{}
	mux.HandleFunc("/roles", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: rh.List,
	}))

	// Health
	hh := HealthHandler{Searcher: d.Searcher}
	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.Health,
	}))

	// Config
	ch := ConfigHandler{
		CfgVal:      d.CfgVal,
		UserCfgPath: d.UserCfgPath,
		LoadCfg:     d.LoadCfg,
	}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: ch.Put,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	}))

	// Secrets
	sh := SecretsHandler{SetAPIKey: d.SetAPIKey}
	mux.HandleFunc("/api/secrets/rapidapi", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.SetRapidAPIKey,
	}))

	// SSE events
	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	return mux
}
