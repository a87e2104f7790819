package main

import (
	"encoding/csv"

	"github.com/spf13/cobra"

	"github.com/twpayne/go-heightgrid"
)

// newProfileCmd returns the profile command.
func newProfileCmd() *cobra.Command {
	profileCmd := &cobra.Command{
		Use:   "profile grid",
		Short: "Print the world points sampled along a path",
		Long: `Print the world points sampled along a straight line as CSV with columns
x,y,z, including both endpoints.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(cmd)
			if err != nil {
				return err
			}
			from, err := getGridCoordFlag(cmd, "from")
			if err != nil {
				return err
			}
			to, err := getGridCoordFlag(cmd, "to")
			if err != nil {
				return err
			}

			grids, err := cfg.LoadGrids(args[0])
			if err != nil {
				return err
			}
			sampler := heightgrid.NewSampler(grids[0], cfg.SamplerOptions()...)
			worldPoints, err := heightgrid.NewPathIntegrator(sampler).Profile(cmd.Context(), from, to, cfg.SampleCount)
			if err != nil {
				return err
			}

			csvWriter := csv.NewWriter(cmd.OutOrStdout())
			for _, worldPoint := range worldPoints {
				if err := csvWriter.Write([]string{
					formatFloat(worldPoint.X),
					formatFloat(worldPoint.Y),
					formatFloat(worldPoint.Z),
				}); err != nil {
					return err
				}
			}
			csvWriter.Flush()
			return csvWriter.Error()
		},
	}

	profileCmd.Flags().String("from", "0,0", "Start of the path as row,col")
	profileCmd.Flags().String("to", "0,1", "End of the path as row,col")

	return profileCmd
}
