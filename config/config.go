// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tropical/eigen"
	"github.com/katalvlaran/tropical/matrix"
	"github.com/katalvlaran/tropical/scheduler"
	"github.com/katalvlaran/tropical/semiring"
)

// Backend kinds.
const (
	BackendScalar   = "scalar"
	BackendParallel = "parallel"
)

// ErrInvalidConfig wraps every decoding and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root document.
type Config struct {
	Backend   BackendConfig   `yaml:"backend"`
	Eigen     EigenConfig     `yaml:"eigen"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Log       LogConfig       `yaml:"log"`
}

// BackendConfig selects the matrix backend. Workers and Threshold apply to
// the parallel kind only; 0 picks the matrix package defaults.
type BackendConfig struct {
	Kind      string `yaml:"kind" validate:"oneof=scalar parallel"`
	Workers   int    `yaml:"workers" validate:"gte=0,lte=4096"`
	Threshold int    `yaml:"threshold" validate:"gte=0"`
}

// EigenConfig tunes eigen.Eigenvector and eigen.CriticalNodes.
type EigenConfig struct {
	MaxIter           int  `yaml:"max_iter" validate:"gte=0"`
	TwoCycleHeuristic bool `yaml:"two_cycle_heuristic"`
}

// SchedulerConfig tunes scheduler.New.
type SchedulerConfig struct {
	Semiring string `yaml:"semiring" validate:"required,semiring,additive"`
	MaxIter  int    `yaml:"max_iter" validate:"gte=0"`
}

// LogConfig shapes the logger built by Config.Logger.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("semiring", validateSemiring)
	_ = validate.RegisterValidation("additive", validateAdditive)
}

// validateSemiring accepts any name semiring.Parse recognises.
func validateSemiring(fl validator.FieldLevel) bool {
	_, err := semiring.Parse(fl.Field().String())
	return err == nil
}

// validateAdditive accepts max-plus and min-plus only.
func validateAdditive(fl validator.FieldLevel) bool {
	s, err := semiring.Parse(fl.Field().String())
	return err == nil && s.Additive()
}

// Default returns the built-in settings: scalar backend, eigen defaults,
// a max-plus scheduler and info-level text logs.
func Default() Config {
	return Config{
		Backend:   BackendConfig{Kind: BackendScalar},
		Eigen:     EigenConfig{MaxIter: eigen.DefaultMaxIter},
		Scheduler: SchedulerConfig{Semiring: semiring.MaxPlus.String()},
		Log:       LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config.Load(%s): %w", path, err)
	}

	return cfg, nil
}

// Parse decodes data over Default() and validates the result. Empty input
// yields the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field against its constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Marshal renders c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// MatrixBackend builds the configured matrix backend.
func (c Config) MatrixBackend() matrix.Backend {
	if c.Backend.Kind == BackendParallel {
		return matrix.Parallel(max(c.Backend.Workers, 0), max(c.Backend.Threshold, 0))
	}

	return matrix.Scalar()
}

// Logger builds a slog.Logger writing to w in the configured format.
func (c Config) Logger(w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// SchedulerSemiring returns the parsed scheduler semiring.
func (c Config) SchedulerSemiring() (semiring.Semiring, error) {
	s, err := semiring.Parse(c.Scheduler.Semiring)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return s, nil
}

// SchedulerOptions returns the scheduler options for this configuration,
// logging through logger when non-nil.
func (c Config) SchedulerOptions(logger *slog.Logger) []scheduler.Option {
	return []scheduler.Option{
		scheduler.WithBackend(c.MatrixBackend()),
		scheduler.WithDefaultMaxIter(max(c.Scheduler.MaxIter, 0)),
		scheduler.WithLogger(logger),
	}
}

// EigenOptions returns the eigen options for this configuration, logging
// through logger when non-nil.
func (c Config) EigenOptions(logger *slog.Logger) []eigen.Option {
	opts := []eigen.Option{
		eigen.WithBackend(c.MatrixBackend()),
		eigen.WithMaxIter(max(c.Eigen.MaxIter, 0)),
		eigen.WithLogger(logger),
	}
	if c.Eigen.TwoCycleHeuristic {
		opts = append(opts, eigen.WithTwoCycleHeuristic())
	}

	return opts
}

// NewScheduler builds a scheduler for nTasks tasks from this configuration.
func (c Config) NewScheduler(nTasks int, logger *slog.Logger) (*scheduler.Scheduler, error) {
	s, err := c.SchedulerSemiring()
	if err != nil {
		return nil, err
	}

	return scheduler.New(nTasks, s, c.SchedulerOptions(logger)...)
}
