package cmd

import (
	"fmt"
	"strconv"

	"github.com/KaramelBytes/tabstat-cli/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set tabstat configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if cfg == nil {
			fmt.Fprintln(out, "No config loaded")
			return nil
		}
		fmt.Fprintf(out, "plot_width: %d\n", cfg.PlotWidth)
		fmt.Fprintf(out, "histogram_height: %d\n", cfg.HistogramHeight)
		fmt.Fprintf(out, "scatter_height: %d\n", cfg.ScatterHeight)
		fmt.Fprintf(out, "corr_threshold: %.2f\n", cfg.CorrThreshold)
		fmt.Fprintf(out, "color: %t\n", cfg.Color)
		fmt.Fprintf(out, "max_rows: %d\n", cfg.MaxRows)
		if cfg.Delimiter != "" {
			fmt.Fprintf(out, "delimiter: %q\n", cfg.Delimiter)
		}
		if cfg.OutputDir != "" {
			fmt.Fprintf(out, "output_dir: %s\n", cfg.OutputDir)
		}
		fmt.Fprintf(out, "log_level: %s\n", cfg.LogLevel)
		fmt.Fprintf(out, "log_encoding: %s\n", cfg.LogEncoding)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "plot_width", "histogram_height", "scatter_height", "max_rows":
			i, err := strconv.Atoi(val)
			if err != nil || i < 0 {
				return fmt.Errorf("invalid non-negative int for %s: %v", key, val)
			}
			switch key {
			case "plot_width":
				cfg.PlotWidth = i
			case "histogram_height":
				cfg.HistogramHeight = i
			case "scatter_height":
				cfg.ScatterHeight = i
			case "max_rows":
				cfg.MaxRows = i
			}
		case "corr_threshold":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f < 0 || f > 1 {
				return fmt.Errorf("invalid corr_threshold: %v (use a number in [0,1])", val)
			}
			cfg.CorrThreshold = f
		case "color":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid bool for color: %w", err)
			}
			cfg.Color = b
		case "delimiter":
			switch val {
			case ",", ";", "tab", "":
				cfg.Delimiter = val
			default:
				return fmt.Errorf("invalid delimiter: %s (use ',', ';' or 'tab')", val)
			}
		case "output_dir":
			cfg.OutputDir = val
		case "log_level":
			switch val {
			case "debug", "info", "warn", "error":
				cfg.LogLevel = val
			default:
				return fmt.Errorf("invalid log_level: %s (use debug, info, warn or error)", val)
			}
		case "log_encoding":
			switch val {
			case "console", "json":
				cfg.LogEncoding = val
			default:
				return fmt.Errorf("invalid log_encoding: %s (use console or json)", val)
			}
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := config.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
