// Package models defines data structures and domain types.
package models

import (
	"sort"
	"time"
)

// FeedingLog is an ordered collection of feeding timestamps. The canonical
// convention is ascending by time; "most recent" is the maximum. Duplicate
// timestamps are permitted and counted as distinct feedings.
type FeedingLog []time.Time

// Sorted returns a copy of the log sorted ascending by time.
func (l FeedingLog) Sorted() FeedingLog {
	out := make(FeedingLog, len(l))
	copy(out, l)
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// MostRecent returns the latest feeding timestamp. The second return value is
// false when the log is empty.
func (l FeedingLog) MostRecent() (time.Time, bool) {
	if len(l) == 0 {
		return time.Time{}, false
	}
	latest := l[0]
	for _, t := range l[1:] {
		if t.After(latest) {
			latest = t
		}
	}
	return latest, true
}

// Earliest returns the first feeding timestamp. The second return value is
// false when the log is empty.
func (l FeedingLog) Earliest() (time.Time, bool) {
	if len(l) == 0 {
		return time.Time{}, false
	}
	first := l[0]
	for _, t := range l[1:] {
		if t.Before(first) {
			first = t
		}
	}
	return first, true
}

// CountSince returns the number of feedings at or after the cutoff.
func (l FeedingLog) CountSince(cutoff time.Time) int {
	n := 0
	for _, t := range l {
		if !t.Before(cutoff) {
			n++
		}
	}
	return n
}

// Contains reports whether the log has an entry equal to t.
func (l FeedingLog) Contains(t time.Time) bool {
	for _, v := range l {
		if v.Equal(t) {
			return true
		}
	}
	return false
}
