package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/twpayne/go-heightgrid"
)

// newDistanceCmd returns the distance command.
func newDistanceCmd() *cobra.Command {
	distanceCmd := &cobra.Command{
		Use:   "distance pre post",
		Short: "Print the change in surface distance between two heightmaps",
		Long: `Print the change in surface distance along a straight line between a
heightmap before an event and a heightmap after it.

Examples:
  heightgrid distance pre.data post.data
  heightgrid distance pre.data post.data --from 0,0 --to 511,511 --samples 100000
  heightgrid distance pre.data post.data --interpolation bicubic --verbose`,
		Args: cobra.ExactArgs(2),
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

			survey, err := cfg.CreateSurvey(args[0], args[1])
			if err != nil {
				return err
			}

			comparison, err := survey.Compare(cmd.Context(), heightgrid.Path{
				From:        from,
				To:          to,
				SampleCount: cfg.SampleCount,
			})
			if err != nil {
				return err
			}
			slog.Debug("compared", "from", from, "to", to, "sampleCount", cfg.SampleCount)

			if cfg.Verbose {
				fmt.Fprintf(cmd.OutOrStdout(), "pre: %v\npost: %v\n", comparison.Pre, comparison.Post)
			}
			fmt.Fprintln(cmd.OutOrStdout(), comparison.Delta())
			return nil
		},
	}

	distanceCmd.Flags().String("from", "0,0", "Start of the path as row,col")
	distanceCmd.Flags().String("to", fmt.Sprintf("%d,%d", heightgrid.Rows-1, heightgrid.Cols-1), "End of the path as row,col")

	return distanceCmd
}
