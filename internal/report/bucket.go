package report

import (
	"sort"
	"time"
)

type Granularity int

const (
	GranularityMonth Granularity = iota
	GranularityYear
)

// Lookback windows restrict records before bucketing. They approximate
// "last 12 months" / "last 5 years" with fixed day counts; this matches
// the front-office charts rather than precise calendar arithmetic.
const (
	MonthLookback = 365 * 24 * time.Hour
	YearLookback  = 5 * 365 * 24 * time.Hour
)

// Default bucket counts for the dashboard series.
const (
	DefaultMonthBuckets = 12
	DefaultYearBuckets  = 5
)

// Bucket is one aggregated calendar period.
type Bucket struct {
	Start time.Time `json:"-"`
	Label string    `json:"label"`
	Total int64     `json:"total"`
}

// Aggregate groups records into calendar-month or calendar-year buckets and
// sums valueOf per bucket. Records older than the granularity's lookback
// window (relative to now) are excluded before bucketing. Buckets are
// returned in chronological ascending order, truncated to the last lastN.
// Periods with no contributing records do not appear.
func Aggregate[T any](records []T, timestampOf func(T) time.Time, valueOf func(T) int64, g Granularity, now time.Time, lastN int) []Bucket {
	lookback := MonthLookback
	if g == GranularityYear {
		lookback = YearLookback
	}
	cutoff := now.Add(-lookback)

	totals := make(map[time.Time]int64)
	for _, rec := range records {
		ts := timestampOf(rec)
		if ts.Before(cutoff) {
			continue
		}
		totals[bucketStart(ts, g)] += valueOf(rec)
	}

	buckets := make([]Bucket, 0, len(totals))
	for start, total := range totals {
		buckets = append(buckets, Bucket{Start: start, Label: bucketLabel(start, g), Total: total})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Start.Before(buckets[j].Start) })

	if lastN > 0 && len(buckets) > lastN {
		buckets = buckets[len(buckets)-lastN:]
	}
	return buckets
}

// Count aggregates with a constant weight of 1 per record.
func Count[T any](records []T, timestampOf func(T) time.Time, g Granularity, now time.Time, lastN int) []Bucket {
	return Aggregate(records, timestampOf, func(T) int64 { return 1 }, g, now, lastN)
}

func bucketStart(ts time.Time, g Granularity) time.Time {
	if g == GranularityYear {
		return time.Date(ts.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(ts.Year(), ts.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func bucketLabel(start time.Time, g Granularity) string {
	if g == GranularityYear {
		return start.Format("2006")
	}
	return start.Format("Jan 2006")
}
