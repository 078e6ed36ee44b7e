package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"node-config/feature/nodeconfig"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate every node override file",
	Long: `Decodes all override files in the configured source and reports the ones
that nodes would silently ignore (malformed or unreadable), plus keys that have
no default. Exits with an error when any file fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		startTime := time.Now()
		jsonOutput, _ := cmd.Flags().GetBool("json")

		_, logg, resolver, err := setup()
		if err != nil {
			return err
		}
		defer logg.Sync()

		report, err := nodeconfig.Check(cmd.Context(), resolver)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Fprintln(out, string(data))
		} else {
			fmt.Fprintln(out, "\n=== Node Override Check ===")
			for _, fr := range report.Files {
				line := fmt.Sprintf("%-24s %-12s %s", fr.Node, fr.Status, fr.File)
				if fr.Error != "" {
					line += "\n    " + fr.Error
				}
				if len(fr.UnknownKeys) > 0 {
					line += "\n    unknown keys: " + strings.Join(fr.UnknownKeys, ", ")
				}
				fmt.Fprintln(out, line)
			}
			fmt.Fprintf(out, "Total Files: %d\n", len(report.Files))
			fmt.Fprintf(out, "Failed: %d\n", report.Failed)
		}

		logg.Info("Override check completed",
			zap.Int("total", len(report.Files)),
			zap.Int("failed", report.Failed),
			zap.Duration("execution_time", time.Since(startTime)),
		)

		if report.Failed > 0 {
			return fmt.Errorf("%d of %d override files failed", report.Failed, len(report.Files))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Bool("json", false, "Output the report as JSON")
}
