package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"batchren/internal/domain"
)

var (
	prefix       string
	suffix       string
	find         string
	replace      string
	caseOption   string
	numbering    bool
	padding      int
	start        int
	step         int
	numberPos    string
	separator    string
	nameTemplate string
)

var rootCmd = &cobra.Command{
	Use:   "batchren",
	Short: "Batch-rename files with a composable naming scheme",
	Long: `batchren renames sets of files according to a composable naming scheme:
prefix/suffix, find/replace, case transform, sequential numbering, or a
whole-name template.

Preview the result, check for conflicts, then apply:

  batchren preview ./photos --prefix vacation_ --number
  batchren check   ./photos --prefix vacation_ --number
  batchren apply   ./photos --prefix vacation_ --number --dest ./sorted`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&prefix, "prefix", "", "text prepended to each name")
	pf.StringVar(&suffix, "suffix", "", "text appended to each base name")
	pf.StringVar(&find, "find", "", "substring to find in the base name")
	pf.StringVar(&replace, "replace", "", "replacement for --find matches")
	pf.StringVar(&caseOption, "case", "preserve", "case transform: preserve, lower, upper, title")
	pf.BoolVar(&numbering, "number", false, "append sequential numbers")
	pf.IntVar(&padding, "padding", 2, "zero-pad numbers to this many digits (0 for none)")
	pf.IntVar(&start, "start", 1, "first number of the sequence")
	pf.IntVar(&step, "step", 1, "increment between numbers")
	pf.StringVar(&numberPos, "number-position", "suffix", "number position: prefix or suffix")
	pf.StringVar(&separator, "separator", "_", "separator between name and number")
	pf.StringVar(&nameTemplate, "template", "", "replace the whole base name with this template")
}

// schemeFromFlags assembles the scheme the subcommands share.
func schemeFromFlags() domain.Scheme {
	return domain.Scheme{
		Prefix:  prefix,
		Suffix:  suffix,
		Find:    find,
		Replace: replace,
		Case:    domain.CaseOption(caseOption),
		Number: domain.Numbering{
			Enabled:   numbering,
			Padding:   padding,
			Start:     start,
			Step:      step,
			Position:  domain.NumberPosition(numberPos),
			Separator: separator,
		},
		NameTemplate: nameTemplate,
	}
}

// batchFromArgs finalizes the batch: a single directory argument selects
// its regular files in natural order, otherwise the arguments themselves
// form the batch in the given order.
func batchFromArgs(args []string) (domain.Batch, error) {
	if len(args) == 1 {
		info, err := os.Stat(args[0])
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			return domain.BatchFromDir(args[0])
		}
	}
	return domain.NewBatch(args), nil
}
