package cli

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tspmtz/metrics"
	"github.com/katalvlaran/tspmtz/server"
	"github.com/katalvlaran/tspmtz/tsp"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP solve API",
		Long: `Serve exposes POST /v1/solve, GET /healthz and GET /metrics.
The server stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = c.cfg.Server.Addr
			}
			srv, err := c.newServer()
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Info("listening", "addr", addr)
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	return cmd
}

// newServer wires the solver, metrics registry and HTTP router.
func (c *CLI) newServer() (*server.Server, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	rec, err := metrics.New(reg)
	if err != nil {
		return nil, err
	}

	o, err := c.solveOptions()
	if err != nil {
		return nil, err
	}
	o.Recorder = rec

	return server.New(server.Options{
		Solver:     tsp.NewSolver(o),
		Logger:     c.Logger,
		MaxCities:  c.cfg.Server.MaxCities,
		MaxTimeout: c.cfg.Timeout,
		Metrics:    promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
	}), nil
}
