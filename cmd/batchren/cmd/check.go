package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"batchren/internal/adapters/filesystem"
	"batchren/internal/application"
	"batchren/internal/application/commands"
)

var checkDest string

var checkCmd = &cobra.Command{
	Use:   "check <dir|files...>",
	Short: "Detect conflicts before renaming",
	Long: `Compute the full rename plan and report duplicate targets, invalid
names, and collisions with existing files. Exits non-zero when the plan
is not safe to apply.

Examples:
  batchren check ./photos --find IMG --replace vacation
  batchren check ./photos --number --dest ./sorted`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		batch, err := batchFromArgs(args)
		if err != nil {
			return err
		}

		checkCmd := commands.NewCheckCommand(filesystem.New(), batch, schemeFromFlags(), checkDest)
		result, err := checkCmd.Execute(context.Background())
		if err != nil {
			return err
		}

		if result.Report.Empty() {
			fmt.Printf("No conflicts: %d files ready to rename\n", len(result.Plan))
			return nil
		}

		printReport(result.Report)
		return &application.ConflictError{
			Duplicates: len(result.Report.Duplicates),
			Invalid:    len(result.Report.InvalidNames),
			Existing:   len(result.Report.Existing),
		}
	},
}

func printReport(report *application.ConflictReport) {
	for _, group := range report.Duplicates {
		fmt.Printf("duplicate target %q:\n", group.NewName)
		for _, path := range group.Paths {
			fmt.Printf("  %s\n", path)
		}
	}
	for _, inv := range report.InvalidNames {
		fmt.Printf("invalid name %q (%s): %s\n", inv.NewName, inv.Reason, inv.Path)
	}
	for _, ex := range report.Existing {
		fmt.Printf("target exists %q: %s\n", ex.NewPath, ex.Path)
	}
	fmt.Println(strings.Repeat("-", 40))
	fmt.Printf("%d duplicate groups, %d invalid names, %d existing files\n",
		len(report.Duplicates), len(report.InvalidNames), len(report.Existing))
}

func init() {
	checkCmd.Flags().StringVar(&checkDest, "dest", "", "move renamed files into this directory")
	rootCmd.AddCommand(checkCmd)
}
