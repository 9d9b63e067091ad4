package httpapi

import (
	"net/http"

	"jobboard-engine/internal/config"
	"jobboard-engine/internal/query"
)

// NewMux wires the handlers; main() wraps it in the middleware chain.
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: HealthHandler{}.Health,
	}))

	pageSize := query.DefaultPageSize
	if d.CfgVal != nil {
		if cfg, ok := d.CfgVal.Load().(config.Config); ok && cfg.Paging.PageSize > 0 {
			pageSize = cfg.Paging.PageSize
		}
	}

	jh := JobsHandler{Load: d.Load, Hub: d.Hub, PageSize: pageSize}
	mux.HandleFunc("/jobs", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.List,
	}))
	mux.HandleFunc("/windows", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.Windows,
	}))

	ph := PrefsHandler{Store: d.Prefs, Hub: d.Hub}
	mux.HandleFunc("/prefs/email", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ph.Get,
		http.MethodPut: ph.Put,
	}))

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

	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	return mux
}
