package app

import (
	"fmt"
	"os"

	"github.com/blackwell-systems/brewscan/internal/config"
	"github.com/blackwell-systems/brewscan/internal/store"
)

// openStore opens the scan history database and ensures the schema
// exists. The caller closes it.
func openStore() (*store.Store, error) {
	path, err := getDBPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get database path: %w", err)
	}

	db, err := store.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.CreateSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create database schema: %w", err)
	}

	return db, nil
}

// extraScanDirs loads user-configured extra application directories.
// Config errors degrade to an empty list with a warning on stderr; a
// broken config file must not block a scan.
func extraScanDirs() []string {
	cfgDir, err := config.Dir()
	if err != nil {
		return nil
	}

	dirs, err := config.LoadScanDirs(cfgDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not read scan-dirs config: %v\n", err)
	}
	return dirs
}
