package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"time"

	"jobboard-engine/internal/aggregate"
	"jobboard-engine/internal/config"
	"jobboard-engine/internal/domain"
	"jobboard-engine/internal/events"
	"jobboard-engine/internal/fetch"
	"jobboard-engine/internal/httpapi"
	"jobboard-engine/internal/normalize"
	"jobboard-engine/internal/prefs"
)

func main() {
	dataDir := os.Getenv("JOBBOARD_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		return config.Load(userCfgPath)
	}
	cfg, err := loadCfg()
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	if _, vr := config.NormalizeAndValidate(cfg); !vr.OK() {
		log.Fatalf("config invalid: %v", vr.Errors)
	}
	cfgVal.Store(cfg)

	store, err := prefs.Open(filepath.Join(dataDir, "jobboard.db"))
	if err != nil {
		log.Fatalf("prefs store open failed: %v", err)
	}
	defer store.Close()

	hub := events.NewHub()

	// Loads read the live config so a PUT /config takes effect on the
	// next request without a restart.
	load := func(ctx context.Context) (aggregate.Result, error) {
		cur := cfgVal.Load().(config.Config)
		return newLoader(cur).LoadAll(ctx)
	}

	mux := httpapi.NewMux(httpapi.Deps{
		Hub:         hub,
		CfgVal:      &cfgVal,
		UserCfgPath: userCfgPath,
		LoadCfg:     loadCfg,
		Load:        load,
		Prefs:       store,
	})

	handler := httpapi.Chain(mux,
		httpapi.Cors,
		httpapi.RequestID,
		httpapi.AccessLog,
		httpapi.Recover,
	)

	addr := net.JoinHostPort("127.0.0.1", strconv.Itoa(cfg.App.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("engine listening on http://%s (data=%s)", addr, dataDir)

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Fatal(srv.Serve(ln))
}

// newLoader builds the fixed-order source list from the config; disabled
// sources are skipped entirely.
func newLoader(cfg config.Config) *aggregate.Loader {
	lim := fetch.NewHostLimiter(cfg.Fetch.RatePerSecond, cfg.Fetch.Burst)

	var sources []aggregate.Source
	for _, tag := range domain.Sources() {
		sc := cfg.SourceFor(tag)
		if !sc.Enabled {
			continue
		}
		sources = append(sources, aggregate.Source{
			Fetcher:    fetch.ForLocator(string(tag), sc.Locator, lim),
			Normalizer: normalize.ForSource(tag),
		})
	}

	return aggregate.NewLoader(sources, time.Duration(cfg.Fetch.TimeoutSeconds)*time.Second)
}
