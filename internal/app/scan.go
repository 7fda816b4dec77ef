package app

import (
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/brewscan/internal/apps"
	"github.com/blackwell-systems/brewscan/internal/brew"
	"github.com/blackwell-systems/brewscan/internal/output"
	"github.com/blackwell-systems/brewscan/internal/report"
	"github.com/blackwell-systems/brewscan/internal/scan"
)

var (
	scanQuiet  bool
	scanNoSave bool
	scanJSON   string

	scanCmd = &cobra.Command{
		Use:   "scan",
		Short: "Scan installed applications and match them against Homebrew",
		Long: `Scan the platform's application directories, fetch the installed
Homebrew catalog, and classify every application: already brew-managed,
brew equivalent available, or no match.

Results are printed as a summary plus a grouped table, and stored in the
brewscan database so 'apps', 'export' and 'history' can work without
re-scanning.

Extra directories to scan can be listed one per line in
~/.config/brewscan/scan-dirs.`,
		Example: `  # Scan and show results
  brewscan scan

  # Scan and also write a JSON export
  brewscan scan --json results.json

  # Scan without recording history
  brewscan scan --no-save

  # Scan quietly (suppress output)
  brewscan scan --quiet`,
		RunE: runScan,
	}
)

func init() {
	scanCmd.Flags().BoolVar(&scanQuiet, "quiet", false, "suppress output")
	scanCmd.Flags().BoolVar(&scanNoSave, "no-save", false, "do not record this scan in history")
	scanCmd.Flags().StringVar(&scanJSON, "json", "", "also export results to the given JSON file")
	scanCmd.Flags().Lookup("json").NoOptDefVal = "auto"
}

func runScan(cmd *cobra.Command, args []string) error {
	isTTY := isatty.IsTerminal(os.Stdout.Fd())
	var spinner *output.Spinner

	if !scanQuiet && isTTY {
		spinner = output.NewSpinner("Scanning Homebrew packages...")
		spinner.Start()
	} else if !scanQuiet {
		fmt.Println("Scanning Homebrew packages...")
	}

	cat, caskErr, err := brew.FetchCatalog()
	if err != nil {
		if spinner != nil {
			spinner.Stop()
		}
		return fmt.Errorf("failed to fetch Homebrew catalog: %w", err)
	}

	if !scanQuiet {
		msg := fmt.Sprintf("✓ Found %d formulae and %d casks", cat.FormulaCount(), cat.CaskCount())
		if spinner != nil {
			spinner.StopWithMessage(msg)
		} else {
			fmt.Println(msg)
		}
		if caskErr != nil {
			fmt.Println("⚠ Casks not available (likely not on macOS)")
		}
	}

	discovered, err := apps.Discover(extraScanDirs())
	if err != nil {
		return fmt.Errorf("failed to discover applications: %w", err)
	}
	if !scanQuiet {
		fmt.Printf("✓ Found %d installed applications\n", len(discovered))
	}

	rep := scan.Aggregate(discovered, cat, time.Now())

	if !scanNoSave {
		db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		if _, err := db.SaveReport(rep); err != nil {
			return fmt.Errorf("failed to save scan: %w", err)
		}
	}

	if scanJSON != "" {
		path := scanJSON
		if path == "auto" {
			path = report.DefaultFilename(rep.Timestamp)
		}
		if err := rep.Save(path); err != nil {
			return fmt.Errorf("failed to export results: %w", err)
		}
		if !scanQuiet {
			fmt.Printf("✓ Results exported to %s\n", path)
		}
	}

	if !scanQuiet {
		fmt.Println()
		fmt.Print(output.RenderSummary(rep))
		fmt.Println()
		fmt.Print(output.RenderAppTable(rep.Records))
	}

	return nil
}
