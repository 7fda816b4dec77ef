package store

const schema = `
CREATE TABLE IF NOT EXISTS scans (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP NOT NULL,
    total_apps INTEGER NOT NULL,
    brew_managed INTEGER NOT NULL,
    has_equivalent INTEGER NOT NULL,
    skipped INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS scan_apps (
    scan_id INTEGER NOT NULL,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    path TEXT NOT NULL,
    is_brew BOOLEAN NOT NULL,
    brew_type TEXT,
    has_equivalent BOOLEAN,
    equivalent TEXT,
    PRIMARY KEY (scan_id, position),
    FOREIGN KEY (scan_id) REFERENCES scans(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_scan_apps_scan ON scan_apps(scan_id);
`
