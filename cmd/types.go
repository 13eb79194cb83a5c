package cmd

import (
	"github.com/KaramelBytes/tabstat-cli/internal/analysis"
	"github.com/spf13/cobra"
)

var typShowLevels bool

var typesCmd = &cobra.Command{
	Use:   "types <file>",
	Short: "Infer column types (Numeric, Boolean, Categorical)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(args[0])
		if err != nil {
			return err
		}
		text := formatter(false).FormatTypes(analysis.InferTypes(ds), typShowLevels)
		return emit(cmd, []string{ds.Name}, text, "")
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
	typesCmd.Flags().BoolVar(&typShowLevels, "show-levels", false, "list distinct values of categorical and boolean columns")
}
