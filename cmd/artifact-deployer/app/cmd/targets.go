package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neutree-ai/artifact-deployer/internal/deploy"
)

func newTargetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List the supported target and packaging combinations",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "%-20s %s\n", "TARGET", "PACKAGING")

			for _, c := range deploy.SupportedCombinations() {
				fmt.Fprintf(out, "%-20s %s\n", c.Target, c.Packaging)
			}
		},
	}
}
