package store

import "time"

// ScanSummary is one row of scan history: the counts without the full
// record list.
type ScanSummary struct {
	ID             int64
	CreatedAt      time.Time
	Total          int
	Owned          int
	WithEquivalent int
	Skipped        int
}
