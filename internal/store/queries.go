package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/blackwell-systems/brewscan/internal/match"
	"github.com/blackwell-systems/brewscan/internal/report"
)

// ErrNoScans is returned when the history holds no scans yet.
var ErrNoScans = errors.New("no scans recorded")

// SaveReport persists a scan report as a new history entry and returns
// its id. The report itself is never mutated; a later scan inserts a
// new row set instead of rewriting this one.
func (s *Store) SaveReport(r *report.Report) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO scans (created_at, total_apps, brew_managed, has_equivalent, skipped)
		VALUES (?, ?, ?, ?, ?)`,
		r.Timestamp.Format(time.RFC3339),
		r.Total,
		r.Owned,
		r.WithEquivalent,
		r.Skipped,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert scan: %w", err)
	}

	scanID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get scan id: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO scan_apps (scan_id, position, name, path, is_brew, brew_type, has_equivalent, equivalent)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range r.Records {
		var brewType, equivalent sql.NullString
		var hasEquivalent sql.NullBool

		if rec.Owned {
			brewType = sql.NullString{String: string(rec.OwnedType), Valid: true}
		}
		switch rec.Equivalence {
		case match.EquivalenceFound:
			hasEquivalent = sql.NullBool{Bool: true, Valid: true}
			equivalent = sql.NullString{String: rec.Equivalent, Valid: true}
		case match.EquivalenceNone:
			hasEquivalent = sql.NullBool{Bool: false, Valid: true}
		}

		if _, err := stmt.Exec(scanID, i, rec.Name, rec.Path, rec.Owned, brewType, hasEquivalent, equivalent); err != nil {
			return 0, fmt.Errorf("failed to insert record %s: %w", rec.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit scan: %w", err)
	}

	return scanID, nil
}

// ListScans returns the scan history, newest first.
func (s *Store) ListScans() ([]*ScanSummary, error) {
	rows, err := s.db.Query(`
		SELECT id, created_at, total_apps, brew_managed, has_equivalent, skipped
		FROM scans
		ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list scans: %w", err)
	}
	defer rows.Close()

	var scans []*ScanSummary
	for rows.Next() {
		var sum ScanSummary
		var createdAt string
		if err := rows.Scan(&sum.ID, &createdAt, &sum.Total, &sum.Owned, &sum.WithEquivalent, &sum.Skipped); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		sum.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		scans = append(scans, &sum)
	}

	return scans, rows.Err()
}

// GetReport loads a full stored report by scan id.
func (s *Store) GetReport(id int64) (*report.Report, error) {
	var createdAt string
	var total, owned, withEq, skipped int

	err := s.db.QueryRow(`
		SELECT created_at, total_apps, brew_managed, has_equivalent, skipped
		FROM scans WHERE id = ?`, id).
		Scan(&createdAt, &total, &owned, &withEq, &skipped)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("scan %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scan %d: %w", id, err)
	}

	ts, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	rows, err := s.db.Query(`
		SELECT name, path, is_brew, brew_type, has_equivalent, equivalent
		FROM scan_apps
		WHERE scan_id = ?
		ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load scan records: %w", err)
	}
	defer rows.Close()

	var records []match.Record
	for rows.Next() {
		var rec match.Record
		var brewType, equivalent sql.NullString
		var hasEquivalent sql.NullBool

		if err := rows.Scan(&rec.Name, &rec.Path, &rec.Owned, &brewType, &hasEquivalent, &equivalent); err != nil {
			return nil, fmt.Errorf("failed to scan record row: %w", err)
		}

		if brewType.Valid {
			rec.OwnedType = match.PackageType(brewType.String)
		}
		if hasEquivalent.Valid {
			if hasEquivalent.Bool {
				rec.Equivalence = match.EquivalenceFound
				rec.Equivalent = equivalent.String
			} else {
				rec.Equivalence = match.EquivalenceNone
			}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rep := &report.Report{
		Timestamp:      ts,
		Total:          total,
		Owned:          owned,
		NonOwned:       total - owned,
		WithEquivalent: withEq,
		Skipped:        skipped,
		Records:        records,
	}
	return rep, nil
}

// LatestReport loads the most recent stored report. Returns ErrNoScans
// when the history is empty.
func (s *Store) LatestReport() (*report.Report, error) {
	var id int64
	err := s.db.QueryRow(`SELECT id FROM scans ORDER BY id DESC LIMIT 1`).Scan(&id)
	if err == sql.ErrNoRows {
		return nil, ErrNoScans
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find latest scan: %w", err)
	}
	return s.GetReport(id)
}
