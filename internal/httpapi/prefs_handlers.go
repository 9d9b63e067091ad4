package httpapi

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strings"

	"jobboard-engine/internal/domain"
	"jobboard-engine/internal/events"
	"jobboard-engine/internal/prefs"
)

var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type PrefsHandler struct {
	Store prefs.Store
	Hub   *events.Hub
}

func (h PrefsHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := prefs.LoadEmailPreferences(r.Context(), h.Store)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "prefs_load_failed", err.Error())
		return
	}
	writeJSON(w, p)
}

func (h PrefsHandler) Put(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var incoming domain.EmailPreferences
	if err := dec.Decode(&incoming); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_json", "invalid JSON: "+err.Error())
		return
	}

	if msg := validatePrefs(&incoming); msg != "" {
		WriteError(w, r, http.StatusBadRequest, "bad_prefs", msg)
		return
	}

	if err := prefs.SaveEmailPreferences(r.Context(), h.Store, incoming); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "prefs_save_failed", err.Error())
		return
	}

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, "prefs_updated", 1, map[string]any{
		"emails": len(incoming.Emails),
	}))
	writeJSON(w, incoming)
}

// validatePrefs normalizes in place and returns a message on the first
// problem found.
func validatePrefs(p *domain.EmailPreferences) string {
	if p.Frequency == "" {
		p.Frequency = domain.FrequencyDaily
	}
	if p.Frequency != domain.FrequencyDaily && p.Frequency != domain.FrequencyWeekly {
		return "frequency must be daily or weekly"
	}

	seen := map[string]bool{}
	var emails []string
	for _, e := range p.Emails {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if !emailShape.MatchString(e) {
			return "invalid email address: " + e
		}
		key := strings.ToLower(e)
		if seen[key] {
			continue
		}
		seen[key] = true
		emails = append(emails, e)
	}
	if emails == nil {
		emails = []string{}
	}
	p.Emails = emails

	for _, s := range p.Sources {
		if !domain.Source(s).Valid() {
			return "unknown source: " + s
		}
	}
	return ""
}
