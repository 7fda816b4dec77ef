package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/brewscan/internal/output"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded scans",
	Long: `Show the scan history recorded in the brewscan database, newest
first, with per-scan summary counts.`,
	Example: `  brewscan history`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		scans, err := db.ListScans()
		if err != nil {
			return fmt.Errorf("failed to list scans: %w", err)
		}

		fmt.Print(output.RenderHistoryTable(scans))
		return nil
	},
}
