package cmd

import (
	"errors"
	"strings"

	"github.com/KaramelBytes/tabstat-cli/internal/analysis"
	"github.com/KaramelBytes/tabstat-cli/internal/dataset"
	"github.com/spf13/cobra"
)

var (
	sumVars   []string
	sumAll    bool
	sumStdin  bool
	sumOutput string
)

var summaryCmd = &cobra.Command{
	Use:   "summary [file]",
	Short: "Descriptive statistics for numeric columns",
	Long: `Compute count, mean, std, min, Q1, median, Q3 and max for numeric columns.
Use --all to also include categorical summaries (top values, unique counts).`,
	Example: `  tabstat summary data.csv
  tabstat summary data.csv --vars age,income --all
  cat data.csv | tabstat summary --stdin -o summary.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var ds *dataset.Dataset
		var err error
		switch {
		case sumStdin:
			opt, oerr := loadOptions()
			if oerr != nil {
				return oerr
			}
			ds, err = dataset.ReadStdin(cmd.InOrStdin(), opt)
			if err == nil {
				logLoaded(ds)
			}
		case len(args) == 1:
			ds, err = loadDataset(args[0])
		default:
			return errors.New("no file specified; use --stdin to read from stdin")
		}
		if err != nil {
			return err
		}

		vars := cleanVars(sumVars)
		var stats []analysis.DescriptiveStats
		if len(vars) > 0 {
			warnMissingColumns(cmd, ds, vars)
			stats = analysis.DescribeSelected(ds, vars)
		} else {
			stats = analysis.DescribeAll(ds)
		}

		f := formatter(sumOutput != "")
		var b strings.Builder
		if len(stats) > 0 {
			b.WriteString(f.FormatSummary(stats))
		}
		if sumAll {
			if cats := analysis.CategoricalSummaries(ds); len(cats) > 0 {
				b.WriteString("\n\nCategorical Variables:\n")
				b.WriteString(f.FormatCategorical(cats))
			}
		}
		if b.Len() == 0 {
			b.WriteString("No numeric columns found in the dataset.")
		}
		return emit(cmd, []string{ds.Name}, b.String(), sumOutput)
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().StringSliceVar(&sumVars, "vars", nil, "comma-separated column names")
	summaryCmd.Flags().BoolVar(&sumAll, "all", false, "include categorical columns")
	summaryCmd.Flags().BoolVar(&sumStdin, "stdin", false, "read delimited data from stdin")
	summaryCmd.Flags().StringVarP(&sumOutput, "output", "o", "", "write to file (.json/.yaml envelope, anything else plain text)")
}

// cleanVars trims names and drops empties from a --vars list.
func cleanVars(in []string) []string {
	var out []string
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
