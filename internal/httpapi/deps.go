package httpapi

import (
	"context"
	"sync/atomic"

	"jobboard-engine/internal/aggregate"
	"jobboard-engine/internal/config"
	"jobboard-engine/internal/events"
	"jobboard-engine/internal/prefs"
)

type Deps struct {
	Hub *events.Hub

	// Atomic store for the live config (reloadable via PUT /config)
	CfgVal *atomic.Value // stores config.Config

	// Config persistence
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	// Fresh load of the canonical collection (inject for testability)
	Load func(ctx context.Context) (aggregate.Result, error)

	Prefs prefs.Store
}
