package report

import (
	"strings"
	"time"
)

// StatusAll is the sentinel the search forms send when no status filter is
// selected.
const StatusAll = "all"

// Search returns the records whose designated fields contain the query,
// case-insensitively. A blank or whitespace-only query returns the input
// unchanged. Input order is preserved.
func Search[T any](records []T, query string, fieldsOf func(T) []string) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return records
	}

	var out []T
	for _, rec := range records {
		for _, field := range fieldsOf(rec) {
			if strings.Contains(strings.ToLower(field), q) {
				out = append(out, rec)
				break
			}
		}
	}
	return out
}

// ByStatus returns the records whose status equals the given value.
// An empty value or the "all" sentinel disables the filter.
func ByStatus[T any](records []T, status string, statusOf func(T) string) []T {
	if status == "" || status == StatusAll {
		return records
	}

	var out []T
	for _, rec := range records {
		if statusOf(rec) == status {
			out = append(out, rec)
		}
	}
	return out
}

// ByDateRange returns the records whose designated date falls within the
// inclusive [from, to] bounds. A nil bound leaves that side open. The desk
// app's search forms always offered this filter but never applied it; the
// backend applies it for real.
func ByDateRange[T any](records []T, from, to *time.Time, dateOf func(T) time.Time) []T {
	if from == nil && to == nil {
		return records
	}

	var out []T
	for _, rec := range records {
		d := dateOf(rec)
		if from != nil && d.Before(*from) {
			continue
		}
		if to != nil && d.After(endOfDay(*to)) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
