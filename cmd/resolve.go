package cmd

import (
	"encoding/json"
	"fmt"

	"node-config/feature/nodeconfig"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:   "resolve <node-name>",
	Short: "Print the configuration a node would receive",
	Long: `Resolves the configuration for a node exactly as GET /<node-name> would
and prints it as JSON. Problems with the override file are reported as warnings.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logg, resolver, err := setup()
		if err != nil {
			return err
		}
		defer logg.Sync()

		node := nodeconfig.NodeName(nodeconfig.TrimPath(args[0]))
		conf, err := resolver.Inspect(cmd.Context(), node)
		if err != nil {
			logg.Warn("Serving defaults", zap.String("node", node), zap.Error(err))
		}

		data, err := json.MarshalIndent(conf, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(resolveCmd)
}
