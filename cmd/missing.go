package cmd

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/tabstat-cli/internal/analysis"
	"github.com/spf13/cobra"
)

var (
	misOnly     bool
	misPatterns bool
	misOutput   string
)

var missingCmd = &cobra.Command{
	Use:   "missing <file>",
	Short: "Missing data counts and co-occurrence patterns",
	Example: `  tabstat missing data.csv --only-missing
  tabstat missing survey.tsv --patterns -o missing.md`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(args[0])
		if err != nil {
			return err
		}
		f := formatter(misOutput != "")
		infos := analysis.AnalyzeMissing(ds)

		var b strings.Builder
		if misOnly {
			if only := analysis.OnlyMissing(infos); len(only) == 0 {
				b.WriteString("No missing data found.")
			} else {
				b.WriteString(f.FormatMissing(only))
			}
		} else {
			b.WriteString(f.FormatMissing(infos))
		}

		if misPatterns {
			b.WriteString(f.FormatMissingPatterns(analysis.MissingPatterns(ds)))
		} else if n, total := analysis.RowsWithMissing(ds), ds.NRows(); n > 0 && total > 0 {
			fmt.Fprintf(&b, "\n%.2f%% of observations have at least one missing value",
				float64(n)/float64(total)*100)
		}
		return emit(cmd, []string{ds.Name}, b.String(), misOutput)
	},
}

func init() {
	rootCmd.AddCommand(missingCmd)
	missingCmd.Flags().BoolVar(&misOnly, "only-missing", false, "show only columns with missing values")
	missingCmd.Flags().BoolVar(&misPatterns, "patterns", false, "show which columns are missing together")
	missingCmd.Flags().StringVarP(&misOutput, "output", "o", "", "write to file (.json/.yaml envelope, anything else plain text)")
}
