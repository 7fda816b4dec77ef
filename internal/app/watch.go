package app

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/brewscan/internal/apps"
	"github.com/blackwell-systems/brewscan/internal/brew"
	"github.com/blackwell-systems/brewscan/internal/match"
	"github.com/blackwell-systems/brewscan/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch application directories and classify new installs",
	Long: `Watch the platform's application directories and print a
classification for every application that appears or disappears.
The Homebrew catalog is fetched once at startup; run a new 'watch'
to pick up catalog changes. Stop with Ctrl-C.`,
	Example: `  brewscan watch`,
	RunE:    runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	fmt.Println("Fetching Homebrew catalog...")
	cat, caskErr, err := brew.FetchCatalog()
	if err != nil {
		return fmt.Errorf("failed to fetch Homebrew catalog: %w", err)
	}
	if caskErr != nil {
		fmt.Println("⚠ Casks not available (likely not on macOS)")
	}

	roots, err := apps.DefaultRoots()
	if err != nil {
		return err
	}
	for _, dir := range extraScanDirs() {
		roots = append(roots, apps.Root{Path: dir, Suffix: roots[0].Suffix, Origin: roots[0].Origin})
	}

	w, err := watcher.New(roots, cat)
	if err != nil {
		return err
	}

	var paths []string
	for _, root := range w.Roots() {
		paths = append(paths, root.Path)
	}
	fmt.Printf("Watching %s (Ctrl-C to stop)\n", strings.Join(paths, ", "))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return w.Run(ctx, printWatchEvent)
}

func printWatchEvent(e watcher.Event) {
	if e.Removed {
		fmt.Printf("- %s removed (%s)\n", e.App.Name, e.App.Path)
		return
	}

	switch {
	case e.Record.Owned:
		fmt.Printf("+ %s is brew-managed (%s)\n", e.App.Name, e.Record.OwnedType)
	case e.Record.Equivalence == match.EquivalenceFound:
		fmt.Printf("+ %s has a brew equivalent: %s\n", e.App.Name, e.Record.Equivalent)
	default:
		fmt.Printf("+ %s has no brew equivalent\n", e.App.Name)
	}
}
