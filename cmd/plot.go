package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/KaramelBytes/tabstat-cli/internal/plot"
	"github.com/spf13/cobra"
)

var (
	plotVar    string
	plotVars   []string
	plotType   string
	plotWidth  int
	plotHeight int
	plotOutput string
)

var plotCmd = &cobra.Command{
	Use:   "plot <file>",
	Short: "ASCII histogram, boxplot or scatter plot",
	Example: `  tabstat plot data.csv --var age --type histogram
  tabstat plot data.csv --var income --type box
  tabstat plot data.csv --vars age,income --type scatter -o scatter.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(args[0])
		if err != nil {
			return err
		}
		vars := cleanVars(plotVars)
		width := plotWidth
		if width <= 0 && cfg != nil {
			width = cfg.PlotWidth
		}

		var text string
		var ok bool
		switch strings.ToLower(plotType) {
		case "histogram", "hist":
			col, cerr := singleColumn(vars)
			if cerr != nil {
				return cerr
			}
			h := plotHeight
			if h <= 0 && cfg != nil {
				h = cfg.HistogramHeight
			}
			if text, ok = plot.HistogramColumn(ds, col, width, h); !ok {
				return fmt.Errorf("cannot create histogram: column '%s' not found", col)
			}
		case "boxplot", "box":
			col, cerr := singleColumn(vars)
			if cerr != nil {
				return cerr
			}
			if text, ok = plot.BoxplotColumn(ds, col, width); !ok {
				return fmt.Errorf("cannot create boxplot: column '%s' not found", col)
			}
		case "scatter":
			if len(vars) < 2 {
				return errors.New("scatter plot requires two columns: --vars x,y")
			}
			h := plotHeight
			if h <= 0 && cfg != nil {
				h = cfg.ScatterHeight
			}
			if text, ok = plot.ScatterColumns(ds, vars[0], vars[1], width, h); !ok {
				return fmt.Errorf("cannot create scatter plot for columns '%s' and '%s'", vars[0], vars[1])
			}
		default:
			return fmt.Errorf("unknown plot type '%s' (use histogram, boxplot or scatter)", plotType)
		}
		return emit(cmd, []string{ds.Name}, text, plotOutput)
	},
}

// singleColumn picks --var, falling back to the first --vars entry.
func singleColumn(vars []string) (string, error) {
	if c := strings.TrimSpace(plotVar); c != "" {
		return c, nil
	}
	if len(vars) > 0 {
		return vars[0], nil
	}
	return "", errors.New("please specify a column with --var")
}

func init() {
	rootCmd.AddCommand(plotCmd)
	plotCmd.Flags().StringVar(&plotVar, "var", "", "column to plot (histogram, boxplot)")
	plotCmd.Flags().StringSliceVar(&plotVars, "vars", nil, "x,y columns for scatter")
	plotCmd.Flags().StringVar(&plotType, "type", "histogram", "plot type: histogram|hist|boxplot|box|scatter")
	plotCmd.Flags().IntVar(&plotWidth, "width", 0, "plot width in characters (default from config)")
	plotCmd.Flags().IntVar(&plotHeight, "height", 0, "plot height in rows (default from config)")
	plotCmd.Flags().StringVarP(&plotOutput, "output", "o", "", "write to file (.json/.yaml envelope, anything else plain text)")
}
