package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadScanDirs_FileNotFound(t *testing.T) {
	dir := t.TempDir()
	dirs, err := LoadScanDirs(dir)
	if err != nil {
		t.Fatalf("LoadScanDirs() returned error for missing file: %v", err)
	}
	if len(dirs) != 0 {
		t.Errorf("expected no dirs, got %v", dirs)
	}
}

func TestLoadScanDirs_CommentsAndBlankLinesSkipped(t *testing.T) {
	dir := t.TempDir()
	content := `# extra application directories


/opt/custom/Applications
# trailing comment
`
	if err := os.WriteFile(filepath.Join(dir, "scan-dirs"), []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	dirs, err := LoadScanDirs(dir)
	if err != nil {
		t.Fatalf("LoadScanDirs() error: %v", err)
	}
	want := []string{"/opt/custom/Applications"}
	if !reflect.DeepEqual(dirs, want) {
		t.Errorf("LoadScanDirs() = %v, want %v", dirs, want)
	}
}

func TestLoadScanDirs_TildeExpansion(t *testing.T) {
	dir := t.TempDir()
	content := "~/MyApps\n"
	if err := os.WriteFile(filepath.Join(dir, "scan-dirs"), []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	dirs, err := LoadScanDirs(dir)
	if err != nil {
		t.Fatalf("LoadScanDirs() error: %v", err)
	}
	if len(dirs) != 1 {
		t.Fatalf("expected 1 dir, got %v", dirs)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}
	if want := filepath.Join(home, "MyApps"); dirs[0] != want {
		t.Errorf("dirs[0] = %q, want %q", dirs[0], want)
	}
}
