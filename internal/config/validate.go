package config

import (
	"fmt"
	"strings"

	"jobboard-engine/internal/domain"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate trims locators and checks the config, returning a
// normalized copy plus any errors and warnings.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	out.Sources.Meritmind.Locator = strings.TrimSpace(out.Sources.Meritmind.Locator)
	out.Sources.Poolia.Locator = strings.TrimSpace(out.Sources.Poolia.Locator)
	out.Sources.Arbetsformedlingen.Locator = strings.TrimSpace(out.Sources.Arbetsformedlingen.Locator)

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}

	if out.Fetch.TimeoutSeconds <= 0 {
		res.addErr("fetch.timeout_seconds must be > 0")
	} else if out.Fetch.TimeoutSeconds > 300 {
		res.addWarn("fetch.timeout_seconds is very high (%d); a stuck feed will block loads that long.", out.Fetch.TimeoutSeconds)
	}
	if out.Fetch.RatePerSecond <= 0 {
		res.addErr("fetch.rate_per_second must be > 0")
	}
	if out.Fetch.Burst <= 0 {
		res.addErr("fetch.burst must be > 0")
	}

	if out.Paging.PageSize <= 0 {
		res.addErr("paging.page_size must be > 0")
	} else if out.Paging.PageSize > 500 {
		res.addWarn("paging.page_size is very high (%d); responses may get large.", out.Paging.PageSize)
	}

	enabled := 0
	for _, s := range domain.Sources() {
		sc := out.SourceFor(s)
		if !sc.Enabled {
			continue
		}
		enabled++
		if sc.Locator == "" {
			res.addErr("sources.%s.locator is required when enabled", s)
		}
	}
	if enabled == 0 {
		res.addWarn("no sources enabled; every load will come back empty.")
	}

	return out, res
}
