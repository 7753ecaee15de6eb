package httpapi

import "net/http"

// NewMux returns the raw mux so main() can wrap it in middleware and attach
// anything that needs the server handle.
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	// Properties
	ph := PropertiesHandler{DB: d.DB}
	mux.HandleFunc("/properties", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ph.List,
	}))
	mux.HandleFunc("/properties/export", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ph.Export,
	}))

	// Stats
	sh := StatsHandler{DB: d.DB}
	mux.HandleFunc("/stats", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sh.Get,
	}))

	// Trawl
	th := TrawlHandler{
		DB:          d.DB,
		CfgVal:      d.CfgVal,
		TrawlStatus: d.TrawlStatus,
		Hub:         d.Hub,
		RunTrawl:    d.RunTrawl,
	}
	mux.HandleFunc("/trawl/status", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: th.Status,
	}))
	mux.HandleFunc("/trawl/run", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: th.Run,
	}))

	// Config
	ch := ConfigHandler{
		CfgVal:      d.CfgVal,
		UserCfgPath: d.UserCfgPath,
		LoadCfg:     d.LoadCfg,
		Hub:         d.Hub,
	}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: ch.Put,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	}))

	// SSE events
	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	// Health
	hh := HealthHandler{}
	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.Health,
	}))

	return mux
}
