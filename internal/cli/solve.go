package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tspmtz/bruteforce"
	"github.com/katalvlaran/tspmtz/matrix"
	"github.com/katalvlaran/tspmtz/matrixfile"
	"github.com/katalvlaran/tspmtz/tsp"
)

// ErrCheckFailed is returned when a cross-check finds a discrepancy.
var ErrCheckFailed = errors.New("cross-check failed")

// solveOpts holds flags for the solve command.
type solveOpts struct {
	sample      string
	timeout     time.Duration
	formulation string
	distinct    bool
	detail      bool
	check       bool
}

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	opts := solveOpts{}

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve an instance file or a built-in sample",
		Long: `Solve reads a distance matrix (a bare YAML/JSON matrix or an instance set)
and prints an optimal tour starting and ending at city 0.

Use "-" to read from stdin, or --sample NAME for a built-in instance.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			instances, err := c.loadInstances(args, opts.sample)
			if err != nil {
				return err
			}
			solveOptions, err := c.solveOptionsWith(cmd, opts)
			if err != nil {
				return err
			}
			return c.runSolve(cmd, instances, solveOptions, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.sample, "sample", "s", "", "solve the built-in instance NAME (see 'samples')")
	cmd.Flags().DurationVarP(&opts.timeout, "timeout", "t", 0, "solver time budget (overrides config)")
	cmd.Flags().StringVar(&opts.formulation, "formulation", "", "subtour elimination form: successor|inequality")
	cmd.Flags().BoolVar(&opts.distinct, "distinct", false, "add redundant x[i][j] => u[i] != u[j] constraints")
	cmd.Flags().BoolVar(&opts.detail, "detail", false, "print the edges selected by the solver")
	cmd.Flags().BoolVar(&opts.check, "check", false, "cross-check the tour by exhaustive search (small instances)")

	return cmd
}

// loadInstances resolves the positional file or --sample flag.
func (c *CLI) loadInstances(args []string, sample string) ([]matrixfile.Instance, error) {
	switch {
	case len(args) == 1 && sample != "":
		return nil, fmt.Errorf("give either a file or --sample, not both")
	case sample != "":
		in, err := matrixfile.Sample(sample)
		if err != nil {
			return nil, err
		}
		return []matrixfile.Instance{in}, nil
	case len(args) == 1:
		return matrixfile.Load(args[0])
	default:
		return nil, fmt.Errorf("no input: give a file, \"-\" for stdin, or --sample NAME")
	}
}

// solveOptionsWith applies explicitly set flags over the configuration.
func (c *CLI) solveOptionsWith(cmd *cobra.Command, opts solveOpts) (tsp.Options, error) {
	o, err := c.solveOptions()
	if err != nil {
		return tsp.Options{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("timeout") {
		o.Timeout = opts.timeout
	}
	if flags.Changed("formulation") {
		if o.Formulation, err = tsp.ParseFormulation(opts.formulation); err != nil {
			return tsp.Options{}, err
		}
	}
	if flags.Changed("distinct") {
		o.RedundantDistinct = opts.distinct
	}
	o.KeepAssignment = opts.detail

	return o, nil
}

func (c *CLI) runSolve(cmd *cobra.Command, instances []matrixfile.Instance, o tsp.Options, opts solveOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	out := cmd.OutOrStdout()

	dists := make([]*matrix.Distance, len(instances))
	for i, in := range instances {
		d, err := in.Distance()
		if err != nil {
			return fmt.Errorf("%s: %w", in.Name, err)
		}
		dists[i] = d
	}

	if len(instances) == 1 {
		o.Progress = c.indicator(cmd.ErrOrStderr(), fmt.Sprintf("Solving %s (%d cities)", instances[0].Name, dists[0].N()))
		res, err := tsp.NewSolver(o).Solve(ctx, dists[0])
		if err != nil {
			return fmt.Errorf("%s: %w", instances[0].Name, err)
		}
		return printSolved(out, instances[0], dists[0], res, opts)
	}

	logger.Debug("solving instance set", "instances", len(instances), "workers", c.cfg.Workers)
	items := tsp.NewSolver(o).SolveBatch(ctx, dists, c.cfg.Workers)

	var errs []error
	for _, it := range items {
		in := instances[it.Index]
		if it.Err != nil {
			printError(out, "%s: %s", in.Name, tsp.Outcome(it.Err))
			logger.Debug("instance failed", "instance", in.Name, "err", it.Err)
			errs = append(errs, fmt.Errorf("%s: %w", in.Name, it.Err))
			continue
		}
		if err := printSolved(out, in, dists[it.Index], it.Result, opts); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d of %d instances failed: %w", len(errs), len(items), errors.Join(errs...))
	}

	return nil
}

// printSolved writes one result and, when requested, its cross-check.
func printSolved(w io.Writer, in matrixfile.Instance, dist *matrix.Distance, res tsp.Result, opts solveOpts) error {
	printSuccess(w, "%s %s", StyleTitle.Render(in.Name), StyleDim.Render(fmt.Sprintf("(%d cities)", dist.N())))
	printDetail(w, "tour:  %s", formatTour(res.Tour))
	printDetail(w, "cost:  %s", StyleNumber.Render(fmt.Sprint(res.Cost)))
	printDetail(w, "model: %d vars, %d constraints (%s, %s)",
		res.Stats.Vars, res.Stats.Constraints, res.Stats.Formulation, res.Stats.Backend)
	printDetail(w, "time:  %s", res.Stats.Elapsed.Round(time.Millisecond))

	if opts.detail {
		printEdges(w, dist, res.Assignment)
	}

	var problems []string
	if in.Optimum != nil && *in.Optimum != res.Cost {
		problems = append(problems, fmt.Sprintf("recorded optimum is %d, solver returned %d", *in.Optimum, res.Cost))
	}
	if opts.check {
		p, err := crossCheck(w, dist, res)
		if err != nil {
			return fmt.Errorf("%s: %w", in.Name, err)
		}
		problems = append(problems, p...)
	}
	if len(problems) == 0 {
		return nil
	}
	for _, p := range problems {
		printWarning(w, "%s", p)
	}

	return fmt.Errorf("%w: %s", ErrCheckFailed, in.Name)
}

// crossCheck compares res with the exhaustive optimum. Instances above
// bruteforce.MaxCities are skipped with a notice.
func crossCheck(w io.Writer, dist *matrix.Distance, res tsp.Result) ([]string, error) {
	rep, err := bruteforce.CrossCheck(bruteforce.Default, dist, res.Tour, res.Cost)
	if errors.Is(err, bruteforce.ErrTooLarge) {
		printInfo(w, "cross-check skipped: more than %d cities", bruteforce.MaxCities)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if rep.OK() {
		printDetail(w, "check: optimal (%d tours enumerated)", rep.Optimum.Evaluated)
	}

	return rep.Problems, nil
}

// printEdges lists the x[i][j] set to true.
func printEdges(w io.Writer, dist *matrix.Distance, assignment [][]bool) {
	printDetail(w, "edges:")
	for i, row := range assignment {
		for j, used := range row {
			if used {
				printDetail(w, "  x[%d][%d] = 1  (d = %d)", i, j, dist.Cost(i, j))
			}
		}
	}
}
