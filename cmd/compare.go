package cmd

import (
	"github.com/KaramelBytes/tabstat-cli/internal/analysis"
	"github.com/spf13/cobra"
)

var (
	cmpVars   []string
	cmpOutput string
)

var compareCmd = &cobra.Command{
	Use:   "compare <file1> <file2>",
	Short: "Compare statistics and missing data of two datasets",
	Example: `  tabstat compare train.csv test.csv
  tabstat compare 2023.csv 2024.csv --vars revenue,users -o diff.md`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		left, err := loadDataset(args[0])
		if err != nil {
			return err
		}
		right, err := loadDataset(args[1])
		if err != nil {
			return err
		}
		c := analysis.Compare(left, right, cleanVars(cmpVars))
		text := formatter(cmpOutput != "").FormatComparison(c)
		return emit(cmd, []string{left.Name, right.Name}, text, cmpOutput)
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().StringSliceVar(&cmpVars, "vars", nil, "comma-separated column names to compare")
	compareCmd.Flags().StringVarP(&cmpOutput, "output", "o", "", "write to file (.json/.yaml envelope, anything else plain text)")
}
