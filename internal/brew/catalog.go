// Package brew shells out to Homebrew to fetch the installed package
// catalog.
package brew

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/blackwell-systems/brewscan/internal/match"
)

// ListFormulae returns the names of all installed formulae in brew's
// output order.
func ListFormulae() ([]string, error) {
	cmd := exec.Command("brew", "list", "--formula")
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return nil, fmt.Errorf("brew list --formula failed: %w (stderr: %s)", err, string(exitErr.Stderr))
		}
		return nil, fmt.Errorf("brew list --formula failed: %w", err)
	}
	return splitNames(string(output)), nil
}

// ListCasks returns the names of all installed casks in brew's output
// order. Fails on Linux, where brew has no cask support.
func ListCasks() ([]string, error) {
	cmd := exec.Command("brew", "list", "--cask")
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return nil, fmt.Errorf("brew list --cask failed: %w (stderr: %s)", err, string(exitErr.Stderr))
		}
		return nil, fmt.Errorf("brew list --cask failed: %w", err)
	}
	return splitNames(string(output)), nil
}

// FetchCatalog fetches both catalogs. A formula listing failure aborts:
// without formulae no classification is possible. A cask listing
// failure degrades to an empty cask set (brew on Linux has no casks);
// the caskErr return tells the caller why, for a warning, and is not a
// fatal condition.
func FetchCatalog() (cat *match.Catalog, caskErr error, err error) {
	formulae, err := ListFormulae()
	if err != nil {
		return nil, nil, err
	}

	casks, caskErr := ListCasks()
	if caskErr != nil {
		casks = nil
	}

	return match.NewCatalog(formulae, casks), caskErr, nil
}

// splitNames turns brew's line-per-name listing into a slice, dropping
// blank lines.
func splitNames(output string) []string {
	trimmed := strings.TrimSpace(output)
	if trimmed == "" {
		return nil
	}

	var names []string
	for _, line := range strings.Split(trimmed, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		names = append(names, line)
	}
	return names
}
