package cmd

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/KaramelBytes/tabstat-cli/internal/logging"
	"github.com/KaramelBytes/tabstat-cli/internal/report"
	"github.com/KaramelBytes/tabstat-cli/internal/utils"
	"github.com/spf13/cobra"
)

// emit prints text, or writes it to outPath in the format its extension selects.
func emit(cmd *cobra.Command, sources []string, text, outPath string) error {
	if outPath == "" {
		out := cmd.OutOrStdout()
		fmt.Fprint(out, text)
		if !strings.HasSuffix(text, "\n") {
			fmt.Fprintln(out)
		}
		return nil
	}
	b, err := report.Encode(outPath, report.NewEnvelope(cmd.Name(), sources, text))
	if err != nil {
		return err
	}
	if err := utils.SafeWriteFile(outPath, b); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logging.L().Debug("output written", zap.String("path", outPath), zap.Int("bytes", len(b)))
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote output to %s\n", outPath)
	return nil
}
