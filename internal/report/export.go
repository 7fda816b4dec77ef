package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/blackwell-systems/brewscan/internal/match"
)

// exportDoc is the JSON file shape. Nullable fields use pointers:
// brew_type and brew_equivalent are null unless set, and
// has_brew_equivalent is null for brew-managed apps (the search never
// ran for them).
type exportDoc struct {
	ScanTimestamp     string      `json:"scan_timestamp"`
	TotalApps         int         `json:"total_apps"`
	BrewManaged       int         `json:"brew_managed"`
	HasBrewEquivalent int         `json:"has_brew_equivalent"`
	SkippedEntries    int         `json:"skipped_entries"`
	Applications      []exportApp `json:"applications"`
}

type exportApp struct {
	Name              string  `json:"name"`
	Path              string  `json:"path"`
	IsBrew            bool    `json:"is_brew"`
	BrewType          *string `json:"brew_type"`
	HasBrewEquivalent *bool   `json:"has_brew_equivalent"`
	BrewEquivalent    *string `json:"brew_equivalent"`
}

// WriteJSON serializes the report to w as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	doc := exportDoc{
		ScanTimestamp:     r.Timestamp.Format(TimestampLayout),
		TotalApps:         r.Total,
		BrewManaged:       r.Owned,
		HasBrewEquivalent: r.WithEquivalent,
		SkippedEntries:    r.Skipped,
		Applications:      make([]exportApp, 0, len(r.Records)),
	}

	for _, rec := range r.Records {
		app := exportApp{
			Name:   rec.Name,
			Path:   rec.Path,
			IsBrew: rec.Owned,
		}
		if rec.Owned {
			t := string(rec.OwnedType)
			app.BrewType = &t
		}
		switch rec.Equivalence {
		case match.EquivalenceFound:
			yes := true
			app.HasBrewEquivalent = &yes
			equiv := rec.Equivalent
			app.BrewEquivalent = &equiv
		case match.EquivalenceNone:
			no := false
			app.HasBrewEquivalent = &no
		}
		doc.Applications = append(doc.Applications, app)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// Save writes the report to the given path, creating or truncating the
// file.
func (r *Report) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := r.WriteJSON(f); err != nil {
		return err
	}
	return f.Close()
}

// DefaultFilename returns the export filename for the given time, e.g.
// brew_scan_results_20240101_150405.json.
func DefaultFilename(now time.Time) string {
	return fmt.Sprintf("brew_scan_results_%s.json", now.Format("20060102_150405"))
}

// Parse reads an exported report back from r. Counts and record order
// round-trip exactly.
func Parse(rd io.Reader) (*Report, error) {
	var doc exportDoc
	if err := json.NewDecoder(rd).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}

	ts, err := time.Parse(TimestampLayout, doc.ScanTimestamp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scan_timestamp %q: %w", doc.ScanTimestamp, err)
	}

	rep := &Report{
		Timestamp:      ts,
		Total:          doc.TotalApps,
		Owned:          doc.BrewManaged,
		WithEquivalent: doc.HasBrewEquivalent,
		NonOwned:       doc.TotalApps - doc.BrewManaged,
		Skipped:        doc.SkippedEntries,
		Records:        make([]match.Record, 0, len(doc.Applications)),
	}

	for _, app := range doc.Applications {
		rec := match.Record{
			Name:  app.Name,
			Path:  app.Path,
			Owned: app.IsBrew,
		}
		if app.BrewType != nil {
			rec.OwnedType = match.PackageType(*app.BrewType)
		}
		if app.HasBrewEquivalent != nil {
			if *app.HasBrewEquivalent {
				rec.Equivalence = match.EquivalenceFound
				if app.BrewEquivalent != nil {
					rec.Equivalent = *app.BrewEquivalent
				}
			} else {
				rec.Equivalence = match.EquivalenceNone
			}
		}
		rep.Records = append(rep.Records, rec)
	}

	return rep, nil
}

// Load reads an exported report from a file.
func Load(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open report file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}
