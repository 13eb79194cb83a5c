package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/KaramelBytes/tabstat-cli/internal/analysis"
	"github.com/KaramelBytes/tabstat-cli/internal/logging"
	"github.com/KaramelBytes/tabstat-cli/internal/report"
	"github.com/KaramelBytes/tabstat-cli/internal/utils"
	"github.com/spf13/cobra"
)

var (
	anaOutputDir  string
	anaSampleRows int
	anaCorr       bool
	anaMin        float64
	anaQuiet      bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <files...>",
	Short: "Write a full Markdown report for one or more datasets",
	Long: `Run every analysis (types, statistics, missing patterns, correlations) over each
input and write <name>.summary.md. Glob patterns are expanded; when two inputs
share a base name the later report is written as <name>__2.summary.md.
Without --output-dir reports are printed to stdout.`,
	Example: `  tabstat analyze data.csv
  tabstat analyze "exports/*.csv" --output-dir reports --correlations`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := utils.ExpandInputs(args)
		if err != nil {
			return err
		}

		opt := analysis.DefaultReportOptions()
		opt.Correlations = anaCorr
		if anaSampleRows >= 0 {
			opt.SampleRows = anaSampleRows
		}
		opt.CorrThreshold = anaMin
		if !cmd.Flags().Changed("min") && cfg != nil {
			opt.CorrThreshold = cfg.CorrThreshold
		}

		outDir := anaOutputDir
		if outDir == "" && cfg != nil {
			outDir = cfg.OutputDir
		}
		if outDir != "" {
			if err := utils.EnsureDir(outDir); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}
		}

		out := cmd.OutOrStdout()
		total := len(files)
		for i, path := range files {
			if !anaQuiet {
				fmt.Fprintf(out, "[%d/%d] Processing %s...\n", i+1, total, filepath.Base(path))
			}
			start := time.Now()
			ds, err := loadDataset(path)
			if err != nil {
				return err
			}
			md := report.Markdown(analysis.BuildReport(ds, opt))
			logging.L().Debug("report built", zap.String("file", path), zap.Duration("elapsed", time.Since(start)))

			if outDir == "" {
				fmt.Fprintln(out, md)
				continue
			}
			outFile := utils.UniquePath(outDir, utils.Stem(path), ".summary.md")
			if !anaQuiet && filepath.Base(outFile) != utils.Stem(path)+".summary.md" {
				fmt.Fprintf(out, "⚠ Detected existing summary, writing to %s to avoid overwrite.\n", filepath.Base(outFile))
			}
			if err := utils.SafeWriteFile(outFile, []byte(md)); err != nil {
				return fmt.Errorf("write summary: %w", err)
			}
			if !anaQuiet {
				fmt.Fprintf(out, "✓ Wrote analysis to %s\n", outFile)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVar(&anaOutputDir, "output-dir", "", "directory for <name>.summary.md reports (default stdout)")
	analyzeCmd.Flags().IntVar(&anaSampleRows, "sample-rows", 5, "number of sample rows to include (0 disables)")
	analyzeCmd.Flags().BoolVar(&anaCorr, "correlations", false, "compute Pearson correlations among numeric columns")
	analyzeCmd.Flags().Float64Var(&anaMin, "min", 0.5, "|r| threshold for noting strong correlations")
	analyzeCmd.Flags().BoolVar(&anaQuiet, "quiet", false, "suppress progress and non-essential output")
}
