package cmd

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/KaramelBytes/tabstat-cli/internal/config"
	"github.com/KaramelBytes/tabstat-cli/internal/dataset"
	"github.com/KaramelBytes/tabstat-cli/internal/logging"
	"github.com/KaramelBytes/tabstat-cli/internal/report"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile       string
	debug         bool
	flagDelimiter string
	flagSheet     string
	flagMaxRows   int
	flagNoColor   bool

	// Loaded configuration
	cfg *config.Global
)

var rootCmd = &cobra.Command{
	Use:   "tabstat",
	Short: "Quick statistics, missing-data reports and terminal plots for CSV/TSV/XLSX data",
	Long: `tabstat loads a table from CSV, TSV or XLSX and reports descriptive statistics,
Pearson correlations, missing values and their patterns, inferred column types,
and ASCII histograms, boxplots and scatter plots.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	defer logging.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)

	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.tabstat/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging on stderr")
	rootCmd.PersistentFlags().StringVar(&flagDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab' (sniffed if omitted)")
	rootCmd.PersistentFlags().StringVar(&flagSheet, "sheet", "", "XLSX: sheet name or 1-based index (default first sheet)")
	rootCmd.PersistentFlags().IntVar(&flagMaxRows, "max-rows", 0, "maximum rows to load (0 = unlimited)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")
}

func loadConfig() {
	c, err := config.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to built-in defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = config.Defaults()
	}
	cfg = c

	// Apply CLI overrides if provided
	f := rootCmd.PersistentFlags()
	if f.Changed("delimiter") {
		cfg.Delimiter = flagDelimiter
	}
	if f.Changed("max-rows") {
		cfg.MaxRows = flagMaxRows
	}
	if flagNoColor {
		cfg.Color = false
	}

	lc := logging.Config{Level: cfg.LogLevel, Encoding: cfg.LogEncoding}
	if debug {
		lc = logging.Config{Level: "debug", Encoding: "console", Development: true}
	}
	if err := logging.Init(lc); err != nil {
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to init logging: %v\n", err)
	}
}

// loadOptions translates the effective configuration into loader options.
func loadOptions() (dataset.Options, error) {
	opt := dataset.Options{Sheet: flagSheet}
	if cfg == nil {
		return opt, nil
	}
	opt.MaxRows = cfg.MaxRows
	switch cfg.Delimiter {
	case "":
	case ",":
		opt.Delimiter = ','
	case "\t", "tab":
		opt.Delimiter = '\t'
	case ";":
		opt.Delimiter = ';'
	default:
		return opt, fmt.Errorf("unsupported --delimiter: %s", cfg.Delimiter)
	}
	return opt, nil
}

// loadDataset reads one input file with the global loader options.
func loadDataset(path string) (*dataset.Dataset, error) {
	opt, err := loadOptions()
	if err != nil {
		return nil, err
	}
	ds, err := dataset.Load(path, opt)
	if err != nil {
		return nil, err
	}
	logLoaded(ds)
	return ds, nil
}

func logLoaded(ds *dataset.Dataset) {
	logging.L().Debug("dataset loaded",
		zap.String("name", ds.Name),
		zap.Int("rows", ds.NRows()),
		zap.Int("cols", ds.NCols()),
		zap.Int("skipped", ds.Skipped))
	if ds.Skipped > 0 {
		fmt.Fprintf(os.Stderr, "⚠ Warning: processed only %d/%d rows due to --max-rows\n", ds.NRows(), ds.NRows()+ds.Skipped)
	}
}

// formatter returns the renderer for a destination; files never get color.
func formatter(toFile bool) report.Formatter {
	color := cfg == nil || cfg.Color
	return report.Formatter{Color: color && !toFile}
}

// warnMissingColumns notes requested columns that the dataset lacks.
// The analyses skip them.
func warnMissingColumns(cmd *cobra.Command, ds *dataset.Dataset, names []string) {
	for _, n := range names {
		if !ds.Has(n) {
			fmt.Fprintf(cmd.ErrOrStderr(), "⚠ Warning: column '%s' not found in %s\n", n, ds.Name)
		}
	}
}
