package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tspmtz/matrixfile"
)

// samplesCommand creates the samples command.
func (c *CLI) samplesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "samples [name]",
		Short: "List the built-in instances, or print one as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				in, err := matrixfile.Sample(args[0])
				if err != nil {
					return err
				}
				return matrixfile.Write(out, []matrixfile.Instance{in})
			}

			for _, in := range matrixfile.Samples() {
				opt := StyleDim.Render("unknown")
				if in.Optimum != nil {
					opt = StyleNumber.Render(fmt.Sprint(*in.Optimum))
				}
				printInfo(out, "%-12s %2d cities  optimum %s  %s",
					StyleTitle.Render(in.Name), len(in.Distances), opt, StyleDim.Render(in.Description))
			}
			return nil
		},
	}
}
