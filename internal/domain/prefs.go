package domain

// EmailPreferences is the notification preference object the UI edits.
// The engine persists it and hands it back; it never sends mail.
type EmailPreferences struct {
	Emails    []string `json:"emails"`
	Frequency string   `json:"frequency"` // daily | weekly
	Sources   []string `json:"sources"`
}

const (
	FrequencyDaily  = "daily"
	FrequencyWeekly = "weekly"
)
