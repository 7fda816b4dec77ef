// Package output provides terminal output utilities for brewscan.
//
// This package includes:
//   - Summary and grouped application rendering for scan reports
//   - A history table for stored scans
//   - A spinner for indeterminate operations
//
// All rendering uses ASCII characters and ANSI color codes for terminal
// output. Color is suppressed when stdout is not a TTY or NO_COLOR is
// set.
package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/blackwell-systems/brewscan/internal/match"
	"github.com/blackwell-systems/brewscan/internal/report"
	"github.com/blackwell-systems/brewscan/internal/store"
)

// ANSI color codes for classification display
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorCyan   = "\033[36m"
)

// IsColorEnabled returns true if ANSI color codes should be emitted.
// It checks that os.Stdout is a TTY and that the NO_COLOR env var is not set.
func IsColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// colorize wraps text in the given ANSI color code if color is enabled,
// otherwise returns the plain text.
func colorize(color, text string) string {
	if IsColorEnabled() {
		return color + text + colorReset
	}
	return text
}

// RenderSummary renders the scan totals plus the list of apps with
// brew equivalents.
func RenderSummary(rep *report.Report) string {
	var sb strings.Builder

	sb.WriteString(colorize(colorCyan, "Scan Summary"))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("─", 60))
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "Total Applications:   %d\n", rep.Total)
	fmt.Fprintf(&sb, "Brew Managed:         %d\n", rep.Owned)
	fmt.Fprintf(&sb, "Non-Brew:             %d\n", rep.NonOwned)
	fmt.Fprintf(&sb, "Has Brew Equivalent:  %d\n", rep.WithEquivalent)
	if rep.Skipped > 0 {
		fmt.Fprintf(&sb, "Skipped Entries:      %d\n", rep.Skipped)
	}

	if rep.WithEquivalent > 0 {
		sb.WriteString("\nApps with Brew Equivalents:\n")
		for _, rec := range rep.Records {
			if rec.Equivalence != match.EquivalenceFound {
				continue
			}
			fmt.Fprintf(&sb, "  • %s → %s\n", rec.Name, colorize(colorGreen, rec.Equivalent))
		}
	}

	return sb.String()
}

// RenderAppTable renders records grouped by classification:
// brew-managed first, then apps with an equivalent, then the rest.
// Input order is kept within each group.
func RenderAppTable(records []match.Record) string {
	if len(records) == 0 {
		return "No applications found.\n"
	}

	var owned, withEq, noEq []match.Record
	for _, rec := range records {
		switch {
		case rec.Owned:
			owned = append(owned, rec)
		case rec.Equivalence == match.EquivalenceFound:
			withEq = append(withEq, rec)
		default:
			noEq = append(noEq, rec)
		}
	}

	var sb strings.Builder

	if len(owned) > 0 {
		fmt.Fprintf(&sb, "%s (%d)\n", colorize(colorGreen, "Brew-Managed"), len(owned))
		for _, rec := range owned {
			fmt.Fprintf(&sb, "  ✓ %-32s %s (%s)\n", truncate(rec.Name, 32), rec.Path, rec.OwnedType)
		}
		sb.WriteString("\n")
	}

	if len(withEq) > 0 {
		fmt.Fprintf(&sb, "%s (%d)\n", colorize(colorYellow, "Brew Equivalent Available"), len(withEq))
		for _, rec := range withEq {
			fmt.Fprintf(&sb, "  ~ %-32s → %s\n", truncate(rec.Name, 32), rec.Equivalent)
		}
		sb.WriteString("\n")
	}

	if len(noEq) > 0 {
		fmt.Fprintf(&sb, "%s (%d)\n", colorize(colorRed, "No Brew Equivalent"), len(noEq))
		for _, rec := range noEq {
			fmt.Fprintf(&sb, "  ✗ %-32s %s\n", truncate(rec.Name, 32), rec.Path)
		}
	}

	return sb.String()
}

// RenderHistoryTable renders stored scans, one row each. Expects
// newest-first input from the store.
func RenderHistoryTable(scans []*store.ScanSummary) string {
	if len(scans) == 0 {
		return "No scans recorded. Run 'brewscan scan' first.\n"
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-5s %-17s %-8s %-8s %-12s %s\n",
		"ID", "Created", "Apps", "Brew", "Equivalent", "Skipped"))
	sb.WriteString(strings.Repeat("─", 64))
	sb.WriteString("\n")

	for _, scan := range scans {
		sb.WriteString(fmt.Sprintf("%-5d %-17s %-8d %-8d %-12d %d\n",
			scan.ID,
			formatRelativeTime(scan.CreatedAt),
			scan.Total,
			scan.Owned,
			scan.WithEquivalent,
			scan.Skipped))
	}

	return sb.String()
}

// formatRelativeTime converts a timestamp to relative time (e.g., "2 days ago").
func formatRelativeTime(t time.Time) string {
	if t.IsZero() {
		return "never"
	}

	diff := time.Since(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		mins := int(diff.Minutes())
		if mins == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", mins)
	case diff < 24*time.Hour:
		hours := int(diff.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	case diff < 7*24*time.Hour:
		days := int(diff.Hours() / 24)
		if days == 1 {
			return "1 day ago"
		}
		return fmt.Sprintf("%d days ago", days)
	case diff < 30*24*time.Hour:
		weeks := int(diff.Hours() / 24 / 7)
		if weeks == 1 {
			return "1 week ago"
		}
		return fmt.Sprintf("%d weeks ago", weeks)
	default:
		return t.Format("2006-01-02")
	}
}

// truncate truncates a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
