package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/pack/internal/engine/emitter"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Emit all assets and chunks once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := c.app.Build(cmd.Context(), buildOptions(cmd))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, res := range report.Results {
				mark := "+"
				if res.Status == emitter.StatusUnchanged {
					mark = "="
				}
				_, _ = fmt.Fprintf(out, "%s %s %s\n", mark, res.Hash, res.Path)
			}
			return nil
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Rewrite every output even if unchanged")
	return cmd
}
