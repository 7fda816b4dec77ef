package app

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/brewscan/internal/report"
)

var (
	exportOutput string

	exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Export the latest scan results to a JSON file",
		Long: `Write the most recent scan's full results to a JSON file. The file
contains the scan timestamp, the summary counts, and one entry per
application with its classification.`,
		Example: `  # Export with a timestamped default filename
  brewscan export

  # Export to a specific file
  brewscan export --output results.json`,
		RunE: runExport,
	}
)

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: brew_scan_results_<timestamp>.json)")
}

func runExport(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	rep, err := db.LatestReport()
	if err != nil {
		return fmt.Errorf("no scan data available, run 'brewscan scan' first: %w", err)
	}

	path := exportOutput
	if path == "" {
		path = report.DefaultFilename(time.Now())
	}

	if err := rep.Save(path); err != nil {
		return fmt.Errorf("failed to export results: %w", err)
	}

	fmt.Printf("✓ Results exported to %s\n", path)
	return nil
}
