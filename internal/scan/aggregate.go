// Package scan runs the classifier over a discovered application set
// and folds the results into a report.
package scan

import (
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/blackwell-systems/brewscan/internal/match"
	"github.com/blackwell-systems/brewscan/internal/report"
)

// Aggregate classifies every application against the catalog and
// returns the report. Malformed entries (missing name or path) are
// excluded and counted in Report.Skipped rather than folded into the
// totals. Input order is preserved in the result.
//
// Each classification reads only the immutable catalog and its own
// entry, so the set is evaluated with a bounded worker pool and results
// land in an indexed slice; no other synchronization is needed.
func Aggregate(apps []match.App, cat *match.Catalog, now time.Time) *report.Report {
	valid := make([]match.App, 0, len(apps))
	skipped := 0
	for _, app := range apps {
		if app.Name == "" || app.Path == "" {
			skipped++
			continue
		}
		valid = append(valid, app)
	}

	records := make([]match.Record, len(valid))

	var group errgroup.Group
	group.SetLimit(runtime.NumCPU())
	for i, app := range valid {
		i, app := i, app
		group.Go(func() error {
			records[i] = match.Classify(app, cat)
			return nil
		})
	}
	// Workers never return errors; Wait is only the join barrier.
	_ = group.Wait()

	return report.New(records, skipped, now)
}
