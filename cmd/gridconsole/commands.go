package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/young1lin/gridconsole/console"
	"github.com/young1lin/gridconsole/internal/builder"
	"github.com/young1lin/gridconsole/internal/config"
	"github.com/young1lin/gridconsole/internal/update"
)

// Command flags
var (
	historyLimit int
	historyTop   bool
	historyPrune time.Duration
)

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of activations to show")
	historyCmd.Flags().BoolVar(&historyTop, "top", false, "Show the most activated elements instead of the latest")
	historyCmd.Flags().DurationVar(&historyPrune, "prune", 0, "Delete activations older than this age (e.g. 720h) before showing")
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Show the layout full screen (default)",
	Long: `Draw the layout directly on the terminal and handle keys until Escape is
pressed at the top level.

With app.watch enabled in the layout file, saving the file swaps in the
new layout without restarting.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	return runTerminal(deps, options())
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Show the layout inside a bubbletea interface with a status line",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(deps, options())
	},
}

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a layout file and print its computed geometry",
	Example: `  # Validate the project layout
  gridconsole check .gridconsole.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return checkLayout(deps.Stdout, args[0])
	},
}

// checkLayout validates path, builds it against an off-screen buffer and
// describes the resulting geometry
func checkLayout(w io.Writer, path string) error {
	cfg, err := config.LoadFile(path)
	if err != nil {
		if problems := config.Problems(err); len(problems) > 0 {
			for _, p := range problems {
				fmt.Fprintf(w, "  %s\n", p.Error())
			}
			return fmt.Errorf("%s: %d problem(s) found", path, len(problems))
		}
		return err
	}

	buffer := console.NewBuffer(200, 100)
	root, err := builder.Build(&cfg.Layout, builder.Options{Target: buffer})
	if err != nil {
		return err
	}
	root.Render()

	fmt.Fprintf(w, "%s: layout version %s is valid\n", path, cfg.Version)
	return builder.Describe(w, root)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded activations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if historyPrune > 0 {
			if err := pruneHistory(deps, deps.Stdout, time.Now().Add(-historyPrune)); err != nil {
				return err
			}
		}
		return showHistory(deps, deps.Stdout, historyLimit, historyTop)
	},
}

// showHistory prints the latest activations, or the per-element totals when
// top is set
func showHistory(deps *AppDependencies, w io.Writer, limit int, top bool) error {
	if limit <= 0 {
		return errors.New("--limit must be positive")
	}

	db, err := deps.DBOpener(deps.HistoryDBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if top {
		counts, err := db.CountByPath(limit)
		if err != nil {
			return err
		}
		if len(counts) == 0 {
			fmt.Fprintln(w, "No activations recorded.")
			return nil
		}
		fmt.Fprintln(tw, "COUNT\tLAST\tELEMENT")
		for _, c := range counts {
			fmt.Fprintf(tw, "%d\t%s\t%s\n", c.Count, c.Last.Format("2006-01-02 15:04"), c.Path)
		}
		return tw.Flush()
	}

	records, err := db.GetRecentActivations(limit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(w, "No activations recorded.")
		return nil
	}
	fmt.Fprintln(tw, "TIME\tKIND\tELEMENT\tPARAMETER")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			r.Timestamp.Format("2006-01-02 15:04:05"), r.Kind, r.Path, dash(r.Parameter))
	}
	return tw.Flush()
}

// pruneHistory removes activations recorded before cutoff
func pruneHistory(deps *AppDependencies, w io.Writer, cutoff time.Time) error {
	db, err := deps.DBOpener(deps.HistoryDBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	n, err := db.DeleteBefore(cutoff)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Pruned %d activation(s) before %s.\n", n, cutoff.Format("2006-01-02 15:04"))
	return nil
}

func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

var versionCheck bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var checker *update.Checker
		if versionCheck {
			checker = deps.UpdateChecker()
		}
		return printVersion(cmd.Context(), deps.Stdout, checker)
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionCheck, "check", false, "Also check GitHub for a newer release")
}

// printVersion writes the build version and, with a checker, whether a
// newer release exists
func printVersion(ctx context.Context, w io.Writer, checker *update.Checker) error {
	fmt.Fprintf(w, "gridconsole %s (commit %s, layout schema %s)\n", update.Version, update.Commit, config.SchemaVersion)
	if checker == nil {
		return nil
	}

	release, err := checker.Check(ctx, true)
	if err != nil {
		return err
	}
	if release == nil {
		fmt.Fprintln(w, "You are running the latest release.")
		return nil
	}
	fmt.Fprintf(w, "Update available: %s -> %s\n", update.Version, release.TagName)
	if release.HTMLURL != "" {
		fmt.Fprintf(w, "Visit %s to download\n", release.HTMLURL)
	}
	return nil
}
