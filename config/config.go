// Package config loads tspmtz settings from a TOML file.
//
//	timeout            = "30s"
//	formulation        = "successor"   # or "inequality"
//	redundant_distinct = false
//	progress           = true
//	workers            = 0             # 0 = GOMAXPROCS
//	log_level          = "info"
//
//	[server]
//	addr       = ":8080"
//	max_cities = 40
//
// Missing keys keep their Default values; unknown keys are rejected.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/tspmtz/tsp"
)

var (
	// ErrUnknownKey is returned when the file contains keys Config lacks.
	ErrUnknownKey = errors.New("config: unknown key")

	// ErrInvalid wraps validation failures.
	ErrInvalid = errors.New("config: invalid value")
)

// Config is the full set of settings.
type Config struct {
	Timeout           time.Duration `toml:"timeout" validate:"gte=0"`
	Formulation       string        `toml:"formulation" validate:"oneof=successor inequality"`
	RedundantDistinct bool          `toml:"redundant_distinct"`
	Progress          bool          `toml:"progress"`
	Workers           int           `toml:"workers" validate:"gte=0,lte=256"`
	LogLevel          string        `toml:"log_level" validate:"oneof=debug info warn error"`

	Server Server `toml:"server"`
}

// Server configures the HTTP surface.
type Server struct {
	Addr      string `toml:"addr" validate:"required"`
	MaxCities int    `toml:"max_cities" validate:"gte=1,lte=200"`
}

var validate = validator.New()

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Timeout:     30 * time.Second,
		Formulation: "successor",
		Progress:    true,
		LogLevel:    "info",
		Server: Server{
			Addr:      ":8080",
			MaxCities: 40,
		},
	}
}

// Load reads path over Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	if err = checkUndecoded(md); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

// Parse decodes TOML text over Default and validates the result.
func Parse(text string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err = checkUndecoded(md); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}

	return fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(names, ", "))
}

// Validate checks every field against its constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, len(verrs))
			for i, fe := range verrs {
				msgs[i] = fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag())
			}

			return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
		}

		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// SolveOptions maps the settings to tsp.Options. Backend, Progress, Logger
// and Recorder are left for the caller to attach.
func (c Config) SolveOptions() (tsp.Options, error) {
	f, err := tsp.ParseFormulation(c.Formulation)
	if err != nil {
		return tsp.Options{}, err
	}

	opts := tsp.DefaultOptions()
	opts.Timeout = c.Timeout
	opts.Formulation = f
	opts.RedundantDistinct = c.RedundantDistinct

	return opts, nil
}
