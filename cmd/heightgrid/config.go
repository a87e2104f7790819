package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/twpayne/go-heightgrid"
)

const defaultSampleCount = 1000

// Config holds application configuration.
type Config struct {
	DataDir              string
	SampleCount          int
	Interpolation        heightgrid.Interpolation
	Workers              int
	HorizontalResolution float64
	VerticalResolution   float64
	CacheSize            int
	Verbose              bool
}

// LoadConfig loads configuration from environment variables and command
// flags. Flags take precedence over environment variables.
func LoadConfig(cmd *cobra.Command) (Config, error) {
	var cfg Config
	var err error

	cfg.DataDir = getConfigString(cmd, "data-dir", "HEIGHTGRID_DATA_DIR", ".")
	if cfg.SampleCount, err = getConfigInt(cmd, "samples", "HEIGHTGRID_SAMPLES", defaultSampleCount); err != nil {
		return Config{}, err
	}
	interpolation := getConfigString(cmd, "interpolation", "HEIGHTGRID_INTERPOLATION", "bilinear")
	if cfg.Interpolation, err = heightgrid.ParseInterpolation(interpolation); err != nil {
		return Config{}, err
	}
	if cfg.Workers, err = getConfigInt(cmd, "workers", "HEIGHTGRID_WORKERS", 1); err != nil {
		return Config{}, err
	}
	if cfg.HorizontalResolution, err = getConfigFloat(cmd, "horizontal-resolution", "HEIGHTGRID_HORIZONTAL_RESOLUTION", heightgrid.DefaultResolution.Horizontal); err != nil {
		return Config{}, err
	}
	if cfg.VerticalResolution, err = getConfigFloat(cmd, "vertical-resolution", "HEIGHTGRID_VERTICAL_RESOLUTION", heightgrid.DefaultResolution.Vertical); err != nil {
		return Config{}, err
	}
	if cfg.CacheSize, err = getConfigInt(cmd, "cache-size", "HEIGHTGRID_CACHE_SIZE", 8); err != nil {
		return Config{}, err
	}
	cfg.Verbose, _ = cmd.Flags().GetBool("verbose")

	slog.Debug("config",
		"dataDir", cfg.DataDir,
		"sampleCount", cfg.SampleCount,
		"interpolation", cfg.Interpolation,
		"workers", cfg.Workers,
		"horizontalResolution", cfg.HorizontalResolution,
		"verticalResolution", cfg.VerticalResolution,
	)
	return cfg, nil
}

// CreateGridSet creates a new GridSet from the configuration.
func (c *Config) CreateGridSet() (*heightgrid.GridSet, error) {
	return heightgrid.NewGridSet(
		heightgrid.WithFS(os.DirFS(c.DataDir)),
		heightgrid.WithCacheSize(c.CacheSize),
	)
}

// LoadGrids loads the named grids.
func (c *Config) LoadGrids(names ...string) ([]*heightgrid.Grid, error) {
	gridSet, err := c.CreateGridSet()
	if err != nil {
		return nil, err
	}
	grids := make([]*heightgrid.Grid, len(names))
	for i, name := range names {
		grid, err := gridSet.Grid(name)
		if err != nil {
			return nil, err
		}
		slog.Debug("loaded grid", "name", name)
		grids[i] = grid
	}
	return grids, nil
}

// SamplerOptions returns the sampler options from the configuration.
func (c *Config) SamplerOptions() []heightgrid.SamplerOption {
	return []heightgrid.SamplerOption{
		heightgrid.WithInterpolation(c.Interpolation),
		heightgrid.WithResolution(heightgrid.Resolution{
			Horizontal: c.HorizontalResolution,
			Vertical:   c.VerticalResolution,
		}),
	}
}

// CreateSurvey creates a new Survey of the named pre and post grids.
func (c *Config) CreateSurvey(preName, postName string) (*heightgrid.Survey, error) {
	grids, err := c.LoadGrids(preName, postName)
	if err != nil {
		return nil, err
	}
	return heightgrid.NewSurvey(grids[0], grids[1],
		heightgrid.WithSamplerOptions(c.SamplerOptions()...),
		heightgrid.WithIntegratorOptions(heightgrid.WithWorkers(c.Workers)),
	)
}

// getConfigString gets a string value from flag, then env, then default.
func getConfigString(cmd *cobra.Command, flagName, envName, defaultValue string) string {
	if cmd.Flags().Changed(flagName) {
		val, _ := cmd.Flags().GetString(flagName)
		return val
	}
	if v := os.Getenv(envName); v != "" {
		return v
	}
	return defaultValue
}

// getConfigInt gets an int value from flag, then env, then default.
func getConfigInt(cmd *cobra.Command, flagName, envName string, defaultValue int) (int, error) {
	if cmd.Flags().Changed(flagName) {
		return cmd.Flags().GetInt(flagName)
	}
	if v := os.Getenv(envName); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", envName, err)
		}
		return n, nil
	}
	return defaultValue, nil
}

// getConfigFloat gets a float64 value from flag, then env, then default.
func getConfigFloat(cmd *cobra.Command, flagName, envName string, defaultValue float64) (float64, error) {
	if cmd.Flags().Changed(flagName) {
		return cmd.Flags().GetFloat64(flagName)
	}
	if v := os.Getenv(envName); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", envName, err)
		}
		return f, nil
	}
	return defaultValue, nil
}

// parseGridCoord parses a grid coordinate of the form row,col.
func parseGridCoord(s string) (heightgrid.GridCoord, error) {
	rowStr, colStr, ok := strings.Cut(s, ",")
	if !ok {
		return heightgrid.GridCoord{}, fmt.Errorf("%s: expected row,col", s)
	}
	row, err := strconv.ParseFloat(strings.TrimSpace(rowStr), 64)
	if err != nil {
		return heightgrid.GridCoord{}, fmt.Errorf("%s: %w", s, err)
	}
	col, err := strconv.ParseFloat(strings.TrimSpace(colStr), 64)
	if err != nil {
		return heightgrid.GridCoord{}, fmt.Errorf("%s: %w", s, err)
	}
	return heightgrid.GridCoord{Row: row, Col: col}, nil
}

// getGridCoordFlag parses the grid coordinate in flag flagName.
func getGridCoordFlag(cmd *cobra.Command, flagName string) (heightgrid.GridCoord, error) {
	s, err := cmd.Flags().GetString(flagName)
	if err != nil {
		return heightgrid.GridCoord{}, err
	}
	return parseGridCoord(s)
}
