package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/twpayne/go-heightgrid"
)

// newExportCmd returns the export command.
func newExportCmd() *cobra.Command {
	exportCmd := &cobra.Command{
		Use:   "export grid output",
		Short: "Write a heightmap as an image",
		Long: `Write a heightmap as an 8-bit grayscale image. The format is chosen by the
extension of output: .png, .tif, .tiff, or .bmp.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg, err := LoadConfig(cmd)
			if err != nil {
				return err
			}
			format, err := heightgrid.ImageFormatFromFilename(args[1])
			if err != nil {
				return err
			}
			grids, err := cfg.LoadGrids(args[0])
			if err != nil {
				return err
			}

			file, err := os.Create(args[1])
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := file.Close(); err == nil {
					err = closeErr
				}
			}()
			if err := grids[0].WriteImage(file, format); err != nil {
				return err
			}
			slog.Debug("exported", "grid", args[0], "output", args[1], "format", format)
			return nil
		},
	}

	return exportCmd
}
