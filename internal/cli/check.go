package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tspmtz/bruteforce"
	"github.com/katalvlaran/tspmtz/matrixfile"
	"github.com/katalvlaran/tspmtz/tsp"
)

// checkCommand creates the check command.
func (c *CLI) checkCommand() *cobra.Command {
	var maxCities int

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Solve instances and cross-check every tour by exhaustive search",
		Long: `Check solves every instance of FILE (default: the built-in samples) and
compares each tour against the exhaustive optimum and the recorded optimum.
Instances with more than --max-cities cities are skipped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			instances := matrixfile.Samples()
			if len(args) == 1 {
				var err error
				if instances, err = matrixfile.Load(args[0]); err != nil {
					return err
				}
			}
			if maxCities > bruteforce.MaxCities {
				return fmt.Errorf("--max-cities must be at most %d", bruteforce.MaxCities)
			}
			o, err := c.solveOptions()
			if err != nil {
				return err
			}
			return c.runCheck(cmd, instances, o, maxCities)
		},
	}

	cmd.Flags().IntVar(&maxCities, "max-cities", 8, "skip instances larger than this")

	return cmd
}

func (c *CLI) runCheck(cmd *cobra.Command, instances []matrixfile.Instance, o tsp.Options, maxCities int) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	solver := tsp.NewSolver(o)

	var passed, failed, skipped int
	for _, in := range instances {
		if len(in.Distances) > maxCities {
			skipped++
			printInfo(out, "%s skipped (%d cities)", in.Name, len(in.Distances))
			continue
		}
		dist, err := in.Distance()
		if err != nil {
			return fmt.Errorf("%s: %w", in.Name, err)
		}
		res, err := solver.Solve(ctx, dist)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			failed++
			printError(out, "%s: %s: %v", in.Name, tsp.Outcome(err), err)
			continue
		}
		rep, err := bruteforce.CrossCheck(bruteforce.Default, dist, res.Tour, res.Cost)
		if err != nil {
			return fmt.Errorf("%s: %w", in.Name, err)
		}
		problems := rep.Problems
		if in.Optimum != nil && *in.Optimum != rep.Optimum.Cost {
			problems = append(problems, fmt.Sprintf("recorded optimum %d differs from enumerated %d", *in.Optimum, rep.Optimum.Cost))
		}
		if len(problems) > 0 {
			failed++
			printError(out, "%s", in.Name)
			for _, p := range problems {
				printDetail(out, "%s", p)
			}
			continue
		}
		passed++
		printSuccess(out, "%s cost %s", in.Name, StyleNumber.Render(fmt.Sprint(res.Cost)))
	}

	printInfo(out, "%d passed, %d failed, %d skipped", passed, failed, skipped)
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d instances", ErrCheckFailed, failed, passed+failed)
	}

	return nil
}
