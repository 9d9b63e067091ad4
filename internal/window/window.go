// Package window classifies jobs into half-open calendar windows around a
// reference instant: today, yesterday, this week, last week.
package window

import (
	"time"

	"jobboard-engine/internal/domain"
)

type Kind string

const (
	Today     Kind = "today"
	Yesterday Kind = "yesterday"
	ThisWeek  Kind = "this-week"
	LastWeek  Kind = "last-week"
)

func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case Today, Yesterday, ThisWeek, LastWeek:
		return Kind(s), true
	}
	return "", false
}

// Compute returns the [start, end) bounds of a window relative to now.
// Bounds are midnight-aligned in now's location. Weeks start on Sunday
// (weekday index 0) and span exactly 7 days, so this-week and last-week
// are always disjoint and adjacent, as are today and yesterday.
func Compute(kind Kind, now time.Time) (start, end time.Time) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch kind {
	case Today:
		return midnight, midnight.AddDate(0, 0, 1)
	case Yesterday:
		return midnight.AddDate(0, 0, -1), midnight
	case ThisWeek:
		start = midnight.AddDate(0, 0, -int(now.Weekday()))
		return start, start.AddDate(0, 0, 7)
	case LastWeek:
		start = midnight.AddDate(0, 0, -int(now.Weekday())-7)
		return start, start.AddDate(0, 0, 7)
	}
	return time.Time{}, time.Time{}
}

// Select returns the jobs whose DateAdded falls in the window, comparing
// by instant so a record's time of day decides boundary inclusion. The
// filter is stable: input order is preserved, and the input slice is
// never modified.
func Select(jobs []domain.Job, kind Kind, now time.Time) []domain.Job {
	start, end := Compute(kind, now)

	out := make([]domain.Job, 0, len(jobs))
	for _, j := range jobs {
		if !j.DateAdded.Before(start) && j.DateAdded.Before(end) {
			out = append(out, j)
		}
	}
	return out
}
