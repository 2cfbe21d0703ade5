package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"batchren/internal/application/commands"
)

var previewCount int

var previewCmd = &cobra.Command{
	Use:   "preview <dir|files...>",
	Short: "Show a sample of the computed names",
	Long: `Show how the first files of the batch would be renamed, without
touching the filesystem.

Examples:
  batchren preview ./photos --prefix vacation_ --number
  batchren preview a.jpg b.jpg --case title --count 2`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		batch, err := batchFromArgs(args)
		if err != nil {
			return err
		}

		previewCmd := commands.NewPreviewCommand(batch, schemeFromFlags(), previewCount)
		pairs, err := previewCmd.Execute(context.Background())
		if err != nil {
			return err
		}

		for _, pair := range pairs {
			fmt.Printf("%s -> %s\n", pair.OriginalName, pair.NewName)
		}
		if len(batch) > len(pairs) {
			fmt.Printf("... and %d more\n", len(batch)-len(pairs))
		}
		return nil
	},
}

func init() {
	previewCmd.Flags().IntVar(&previewCount, "count", commands.DefaultPreviewCount, "number of sample pairs to show")
	rootCmd.AddCommand(previewCmd)
}
