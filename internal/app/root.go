package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	dbPath string

	// RootCmd is the root command for brewscan
	RootCmd = &cobra.Command{
		Use:   "brewscan",
		Short: "Audit installed applications against the Homebrew catalog",
		Long: `brewscan inventories the applications installed on this machine, flags
which ones are already managed by Homebrew, and suggests brew-installable
equivalents for the rest.

Quick Start:
  1. brewscan scan
  2. brewscan apps --equivalent
  3. brewscan export

Features:
  • Detects brew-managed applications (formulae and casks)
  • Suggests brew equivalents for manually installed apps
  • Scan history stored locally for comparison over time
  • JSON export of full scan results
  • Live watch mode for newly installed applications

Examples:
  # Scan applications and show the summary
  brewscan scan

  # Browse apps that have a brew equivalent
  brewscan apps --equivalent

  # Export the latest scan to JSON
  brewscan export --output results.json

  # Watch application directories for changes
  brewscan watch`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := getDBPath()
			if _, err := os.Stat(path); os.IsNotExist(err) {
				fmt.Println("brewscan: audit installed applications against Homebrew")
				fmt.Println()
				fmt.Println("Run 'brewscan scan' to get started.")
				fmt.Println("Run 'brewscan --help' for the full reference.")
			} else {
				fmt.Println("brewscan: audit installed applications against Homebrew")
				fmt.Println()
				fmt.Println("Tip: Run 'brewscan apps' to browse the latest scan.")
				fmt.Println("     Run 'brewscan history' to list past scans.")
				fmt.Println("     Run 'brewscan --help' for all commands.")
			}
			return nil
		},
	}
)

func init() {
	// Global flags
	RootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database path (default: ~/.brewscan/brewscan.db)")

	// Enable cobra's built-in suggestion feature for unknown subcommands
	RootCmd.SuggestionsMinimumDistance = 2

	// Register subcommands
	RootCmd.AddCommand(scanCmd)
	RootCmd.AddCommand(appsCmd)
	RootCmd.AddCommand(exportCmd)
	RootCmd.AddCommand(historyCmd)
	RootCmd.AddCommand(watchCmd)
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}

// getDBPath returns the database path, using the flag value or default
func getDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	// Create .brewscan directory if it doesn't exist
	brewscanDir := filepath.Join(home, ".brewscan")
	if err := os.MkdirAll(brewscanDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create brewscan directory: %w", err)
	}

	return filepath.Join(brewscanDir, "brewscan.db"), nil
}
