package cmd

import (
	"errors"

	"github.com/KaramelBytes/tabstat-cli/internal/analysis"
	"github.com/spf13/cobra"
)

var (
	corVars   []string
	corMin    float64
	corOutput string
)

var correlationCmd = &cobra.Command{
	Use:     "correlation <file>",
	Aliases: []string{"corr"},
	Short:   "Pearson correlation matrix over pairwise-complete observations",
	Example: `  tabstat correlation data.csv --min 0.7
  tabstat correlation data.csv --vars x1,x2,x3 -o corr.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(args[0])
		if err != nil {
			return err
		}
		threshold := corMin
		if !cmd.Flags().Changed("min") && cfg != nil {
			threshold = cfg.CorrThreshold
		}

		var names []string
		if vars := cleanVars(corVars); len(vars) > 0 {
			warnMissingColumns(cmd, ds, vars)
			names = vars
		}
		m := analysis.CorrelationMatrix(ds, names)
		if len(m.Columns) == 0 {
			return errors.New("no numeric columns found for correlation analysis")
		}

		f := formatter(corOutput != "")
		text := f.FormatCorrelation(m) + f.FormatHighCorrelations(analysis.HighCorrelations(m, threshold), threshold)
		return emit(cmd, []string{ds.Name}, text, corOutput)
	},
}

func init() {
	rootCmd.AddCommand(correlationCmd)
	correlationCmd.Flags().StringSliceVar(&corVars, "vars", nil, "comma-separated column names")
	correlationCmd.Flags().Float64Var(&corMin, "min", 0.5, "minimum |r| to list as a high correlation")
	correlationCmd.Flags().StringVarP(&corOutput, "output", "o", "", "write to file (.json/.yaml envelope, anything else plain text)")
}
