// Package report defines the serializable result of a scan. A Report
// is an immutable value produced by one aggregation pass and handed to
// renderers, the JSON exporter, and the history store; nothing mutates
// it afterwards.
package report

import (
	"time"

	"github.com/blackwell-systems/brewscan/internal/match"
)

// TimestampLayout is the wire format for scan_timestamp in exports.
const TimestampLayout = "2006-01-02 15:04:05"

// Report holds the classified records of one scan plus the derived
// counts. Records keep discovery order; no record is ever dropped.
// Skipped counts malformed discovery entries (missing name or path)
// that were excluded before classification; they are not part of
// Total.
type Report struct {
	Timestamp      time.Time
	Total          int
	Owned          int
	NonOwned       int
	WithEquivalent int
	Skipped        int
	Records        []match.Record
}

// New builds a Report from classified records, computing the counts.
// The clock is injected by the caller so exports are reproducible in
// tests.
func New(records []match.Record, skipped int, now time.Time) *Report {
	r := &Report{
		Timestamp: now,
		Total:     len(records),
		Skipped:   skipped,
		Records:   records,
	}
	for _, rec := range records {
		if rec.Owned {
			r.Owned++
			continue
		}
		r.NonOwned++
		if rec.Equivalence == match.EquivalenceFound {
			r.WithEquivalent++
		}
	}
	return r
}
