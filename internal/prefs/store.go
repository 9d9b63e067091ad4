// Package prefs persists the user's notification preference object. The
// Store interface is injected wherever preferences are needed; nothing in
// the load pipeline touches ambient storage.
package prefs

import (
	"context"
	"encoding/json"
	"fmt"

	"jobboard-engine/internal/domain"
)

// Store is a minimal key-value persistence capability.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

const emailPrefsKey = "email_prefs"

// LoadEmailPreferences reads the saved preference object, or returns the
// default (daily, all sources, no addresses) when none has been saved.
func LoadEmailPreferences(ctx context.Context, s Store) (domain.EmailPreferences, error) {
	raw, ok, err := s.Get(ctx, emailPrefsKey)
	if err != nil {
		return domain.EmailPreferences{}, err
	}
	if !ok {
		return DefaultEmailPreferences(), nil
	}

	var p domain.EmailPreferences
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return domain.EmailPreferences{}, fmt.Errorf("decode saved preferences: %w", err)
	}
	return p, nil
}

func SaveEmailPreferences(ctx context.Context, s Store, p domain.EmailPreferences) error {
	b, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.Set(ctx, emailPrefsKey, string(b))
}

func DefaultEmailPreferences() domain.EmailPreferences {
	sources := make([]string, 0, 3)
	for _, s := range domain.Sources() {
		sources = append(sources, string(s))
	}
	return domain.EmailPreferences{
		Emails:    []string{},
		Frequency: domain.FrequencyDaily,
		Sources:   sources,
	}
}
