package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/brewscan/internal/match"
	"github.com/blackwell-systems/brewscan/internal/output"
)

var (
	appsBrewOnly    bool
	appsNonBrewOnly bool
	appsEquivalent  bool

	appsCmd = &cobra.Command{
		Use:   "apps",
		Short: "Browse the applications from the latest scan",
		Long: `Show the classified applications recorded by the most recent scan,
optionally filtered by classification.`,
		Example: `  # All applications, grouped by classification
  brewscan apps

  # Only brew-managed applications
  brewscan apps --brew

  # Only apps that are not brew-managed
  brewscan apps --non-brew

  # Only apps with a brew equivalent available
  brewscan apps --equivalent`,
		RunE: runApps,
	}
)

func init() {
	appsCmd.Flags().BoolVar(&appsBrewOnly, "brew", false, "show only brew-managed applications")
	appsCmd.Flags().BoolVar(&appsNonBrewOnly, "non-brew", false, "show only applications not managed by brew")
	appsCmd.Flags().BoolVar(&appsEquivalent, "equivalent", false, "show only applications with a brew equivalent")
	appsCmd.MarkFlagsMutuallyExclusive("brew", "non-brew", "equivalent")
}

func runApps(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	rep, err := db.LatestReport()
	if err != nil {
		return fmt.Errorf("no scan data available, run 'brewscan scan' first: %w", err)
	}

	records := rep.Records
	switch {
	case appsBrewOnly:
		records = filterRecords(records, func(r match.Record) bool { return r.Owned })
	case appsNonBrewOnly:
		records = filterRecords(records, func(r match.Record) bool { return !r.Owned })
	case appsEquivalent:
		records = filterRecords(records, func(r match.Record) bool {
			return !r.Owned && r.Equivalence == match.EquivalenceFound
		})
	}

	fmt.Print(output.RenderAppTable(records))
	return nil
}

func filterRecords(records []match.Record, keep func(match.Record) bool) []match.Record {
	var out []match.Record
	for _, rec := range records {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	return out
}
