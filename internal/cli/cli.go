// Package cli implements the tspmtz command-line interface.
//
// # Commands
//
//   - solve:   solve an instance file or a built-in sample exactly
//   - samples: list or print the built-in instances
//   - check:   solve instances and cross-check them by exhaustive search
//   - serve:   run the HTTP API
//   - version: print build information
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// passed through context.Context.
//
// # Configuration
//
// --config FILE loads TOML settings (see package config); explicit flags
// override file values.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tspmtz/config"
	"github.com/katalvlaran/tspmtz/internal/buildinfo"
	"github.com/katalvlaran/tspmtz/progress"
	"github.com/katalvlaran/tspmtz/tsp"
)

const appName = "tspmtz"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	verbose    bool
	cfg        config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetVerbose forces debug logging regardless of the configured log_level.
func (c *CLI) SetVerbose(v bool) { c.verbose = v }

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "tspmtz solves small Travelling Salesman instances exactly",
		Long:         `tspmtz encodes a TSP instance as a boolean/integer model with Miller–Tucker–Zemlin subtour elimination, hands it to a pseudo-boolean optimizer and decodes the optimal tour.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "TOML configuration file")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.samplesCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.versionCommand())

	return root
}

// loadConfig reads --config, if any, and applies log_level unless verbose.
func (c *CLI) loadConfig() error {
	if c.configPath != "" {
		cfg, err := config.Load(c.configPath)
		if err != nil {
			return err
		}
		c.cfg = cfg
	}
	if c.verbose {
		c.SetLogLevel(LogDebug)
		return nil
	}
	level, err := log.ParseLevel(c.cfg.LogLevel)
	if err != nil {
		return err
	}
	c.SetLogLevel(level)

	return nil
}

// solveOptions maps the configuration to tsp.Options and attaches the logger.
func (c *CLI) solveOptions() (tsp.Options, error) {
	opts, err := c.cfg.SolveOptions()
	if err != nil {
		return tsp.Options{}, err
	}
	opts.Logger = c.Logger

	return opts, nil
}

// indicator returns a spinner on an interactive stderr, Nop otherwise.
func (c *CLI) indicator(w io.Writer, message string) progress.Indicator {
	if !c.cfg.Progress || c.verbose {
		return progress.Nop{}
	}
	f, ok := w.(*os.File)
	if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return progress.Nop{}
	}

	return progress.NewSpinner(w, message)
}
