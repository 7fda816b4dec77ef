// Package config provides configuration file parsing for brewscan.
package config

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// Dir returns the brewscan config directory, respecting XDG_CONFIG_HOME.
// Defaults to ~/.config/brewscan if XDG_CONFIG_HOME is not set.
func Dir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "brewscan"), nil
}

// LoadScanDirs reads the scan-dirs file at {dir}/scan-dirs and returns
// the extra application directories to enumerate, one per line. Blank
// lines and # comments are skipped; a leading ~/ expands to the user's
// home. If the file does not exist, an empty list is returned without
// an error.
func LoadScanDirs(dir string) ([]string, error) {
	path := filepath.Join(dir, "scan-dirs")
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var dirs []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "~/") {
			home, err := os.UserHomeDir()
			if err == nil {
				line = filepath.Join(home, line[2:])
			}
		}

		dirs = append(dirs, line)
	}

	if err := scanner.Err(); err != nil {
		return dirs, err
	}

	return dirs, nil
}
