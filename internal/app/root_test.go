package app

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestRootCommand(t *testing.T) {
	if RootCmd.Use != "brewscan" {
		t.Errorf("expected Use to be 'brewscan', got '%s'", RootCmd.Use)
	}

	if RootCmd.Short == "" {
		t.Error("expected Short description to be set")
	}

	if RootCmd.Long == "" {
		t.Error("expected Long description to be set")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	commands := RootCmd.Commands()

	expectedCommands := []string{"scan", "apps", "export", "history", "watch"}
	foundCommands := make(map[string]bool)

	for _, cmd := range commands {
		foundCommands[cmd.Use] = true
	}

	for _, expected := range expectedCommands {
		if !foundCommands[expected] {
			t.Errorf("expected command '%s' to be registered", expected)
		}
	}
}

func TestRootCommandHasPersistentFlags(t *testing.T) {
	flag := RootCmd.PersistentFlags().Lookup("db")
	if flag == nil {
		t.Fatal("expected --db flag to be registered")
	}

	if flag.Usage == "" {
		t.Error("expected --db flag to have usage text")
	}
}

func TestGetDBPath(t *testing.T) {
	oldDBPath := dbPath
	defer func() { dbPath = oldDBPath }()

	// Custom path wins over the default.
	dbPath = filepath.Join(t.TempDir(), "custom.db")
	path, err := getDBPath()
	if err != nil {
		t.Fatalf("getDBPath() error = %v", err)
	}
	if path != dbPath {
		t.Errorf("getDBPath() = %q, want %q", path, dbPath)
	}

	// Default lands in ~/.brewscan.
	dbPath = ""
	path, err = getDBPath()
	if err != nil {
		t.Fatalf("getDBPath() error = %v", err)
	}
	if !strings.HasSuffix(path, filepath.Join(".brewscan", "brewscan.db")) {
		t.Errorf("default path = %q, want ~/.brewscan/brewscan.db", path)
	}
}

func TestScanCommandFlags(t *testing.T) {
	for _, name := range []string{"quiet", "no-save", "json"} {
		if scanCmd.Flags().Lookup(name) == nil {
			t.Errorf("expected scan --%s flag to be registered", name)
		}
	}

	// --json without a value falls back to the timestamped default name.
	if got := scanCmd.Flags().Lookup("json").NoOptDefVal; got != "auto" {
		t.Errorf("json NoOptDefVal = %q, want auto", got)
	}
}

func TestAppsCommandFlags(t *testing.T) {
	for _, name := range []string{"brew", "non-brew", "equivalent"} {
		if appsCmd.Flags().Lookup(name) == nil {
			t.Errorf("expected apps --%s flag to be registered", name)
		}
	}
}
