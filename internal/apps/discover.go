// Package apps enumerates installed applications from the platform's
// application directories.
package apps

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/blackwell-systems/brewscan/internal/match"
)

// Root is one directory to enumerate: entries carrying Suffix are
// reported as applications with the given origin category. The suffix
// is stripped here so downstream comparison never sees it; display
// case is preserved.
type Root struct {
	Path   string
	Suffix string
	Origin match.PackageType
}

// DefaultRoots returns the application directories for the current
// platform. macOS reports .app bundles as cask-like, Linux reports
// .desktop entries as formula-like. Unsupported platforms are an
// error.
func DefaultRoots() ([]Root, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}

	switch runtime.GOOS {
	case "darwin":
		return []Root{
			{Path: "/Applications", Suffix: ".app", Origin: match.Cask},
			{Path: "/System/Applications", Suffix: ".app", Origin: match.Cask},
			{Path: filepath.Join(home, "Applications"), Suffix: ".app", Origin: match.Cask},
		}, nil
	case "linux":
		return []Root{
			{Path: "/usr/share/applications", Suffix: ".desktop", Origin: match.Formula},
			{Path: filepath.Join(home, ".local/share/applications"), Suffix: ".desktop", Origin: match.Formula},
		}, nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// DiscoverIn enumerates the given roots in order and returns the raw
// application records. Missing directories are skipped; entries not
// carrying the root's suffix are ignored. Directory read order follows
// os.ReadDir (sorted by filename), so repeated scans see the same
// order.
func DiscoverIn(roots []Root) ([]match.App, error) {
	var apps []match.App

	for _, root := range roots {
		entries, err := os.ReadDir(root.Path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to read %s: %w", root.Path, err)
		}

		for _, entry := range entries {
			name := entry.Name()
			if !strings.HasSuffix(name, root.Suffix) {
				continue
			}
			apps = append(apps, match.App{
				Name:   strings.TrimSuffix(name, root.Suffix),
				Path:   filepath.Join(root.Path, name),
				Origin: root.Origin,
			})
		}
	}

	return apps, nil
}

// Discover enumerates the platform default roots plus any extra
// directories, which are scanned with the platform's suffix and
// origin.
func Discover(extraDirs []string) ([]match.App, error) {
	roots, err := DefaultRoots()
	if err != nil {
		return nil, err
	}

	suffix, origin := roots[0].Suffix, roots[0].Origin
	for _, dir := range extraDirs {
		roots = append(roots, Root{Path: dir, Suffix: suffix, Origin: origin})
	}

	return DiscoverIn(roots)
}
