package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// newRootCmd returns the base command with all subcommands added.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "heightgrid",
		Short: "Surface distances over 512x512 heightmaps",
		Long: `heightgrid estimates ground-surface travel distances over 512x512 8-bit
heightmaps by sampling interpolated heights along straight lines.

Heightmap files are raw row-major bytes, or 8-bit grayscale TIFFs when their
names end in .tif or .tiff. Names are relative to --data-dir.

Configuration can be set via environment variables or command-line flags.
Flags take precedence over environment variables.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
	}

	rootCmd.PersistentFlags().StringP("data-dir", "d", ".", "Directory containing heightmap files")
	rootCmd.PersistentFlags().IntP("samples", "n", defaultSampleCount, "Number of samples along each path")
	rootCmd.PersistentFlags().String("interpolation", "bilinear", "Interpolation (bilinear or bicubic)")
	rootCmd.PersistentFlags().IntP("workers", "w", 1, "Number of goroutines sampling each path")
	rootCmd.PersistentFlags().Float64("horizontal-resolution", 30, "World units per grid cell horizontally")
	rootCmd.PersistentFlags().Float64("vertical-resolution", 11, "World units per elevation step")
	rootCmd.PersistentFlags().Int("cache-size", 8, "Number of decoded heightmaps to cache")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(
		newBatchCmd(),
		newDistanceCmd(),
		newDumpCmd(),
		newExportCmd(),
		newProfileCmd(),
	)

	return rootCmd
}
