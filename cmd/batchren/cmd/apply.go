package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"

	"github.com/spf13/cobra"

	"batchren/internal/adapters/filesystem"
	"batchren/internal/application"
	"batchren/internal/application/commands"
	"batchren/internal/config"
)

var (
	applyDest    string
	applyWorkers int
	applyForce   bool
)

var applyCmd = &cobra.Command{
	Use:   "apply <dir|files...>",
	Short: "Rename the files",
	Long: `Check the plan for conflicts, then rename every file of the batch.
Failures are reported per file and never abort the rest of the batch;
completed renames are not rolled back.

--force skips the conflict gate for existing-file and invalid-name
conflicts. Duplicate targets are always refused.

Examples:
  batchren apply ./photos --prefix vacation_ --number
  batchren apply ./photos --template holiday --number --dest ./sorted`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		batch, err := batchFromArgs(args)
		if err != nil {
			return err
		}

		fs := filesystem.New()
		scheme := schemeFromFlags()

		checkCmd := commands.NewCheckCommand(fs, batch, scheme, applyDest)
		checked, err := checkCmd.Execute(context.Background())
		if err != nil {
			return err
		}

		if !checked.Report.Empty() {
			printReport(checked.Report)
			if !applyForce || len(checked.Report.Duplicates) > 0 {
				return &application.ConflictError{
					Duplicates: len(checked.Report.Duplicates),
					Invalid:    len(checked.Report.InvalidNames),
					Existing:   len(checked.Report.Existing),
				}
			}
			fmt.Println("continuing despite conflicts (--force)")
		}

		// Ctrl-C stops dispatching further files; moves already under way
		// finish and are reported.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		applyCmd := commands.NewApplyCommand(fs, checked.Plan, applyDest, applyWorkers)
		stream, err := applyCmd.Execute(ctx)
		if err != nil {
			return err
		}

		var results []application.ApplyResult
		for result := range stream {
			results = append(results, result)
		}

		sort.Slice(results, func(i, j int) bool {
			return results[i].Index < results[j].Index
		})
		for _, r := range results {
			if r.Err != nil {
				fmt.Printf("FAIL %s: %s\n", r.Path, r.Err.Message)
			} else {
				fmt.Printf("ok   %s -> %s\n", r.Path, r.NewPath)
			}
		}

		summary := application.Summarize(results)
		fmt.Printf("renamed %d files", summary.Succeeded)
		if summary.Failed > 0 {
			fmt.Printf(", %d failed", summary.Failed)
			for kind, n := range summary.ByKind {
				fmt.Printf(" (%s: %d)", kind, n)
			}
		}
		if skipped := len(checked.Plan) - len(results); skipped > 0 {
			fmt.Printf(", %d not started", skipped)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	applyCmd.Flags().StringVar(&applyDest, "dest", "", "move renamed files into this directory")
	applyCmd.Flags().IntVar(&applyWorkers, "workers", config.Workers(), "parallel move workers")
	applyCmd.Flags().BoolVar(&applyForce, "force", false, "apply despite non-duplicate conflicts")
	rootCmd.AddCommand(applyCmd)
}
