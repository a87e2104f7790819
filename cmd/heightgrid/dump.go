package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/twpayne/go-heightgrid"
)

// newDumpCmd returns the dump command.
func newDumpCmd() *cobra.Command {
	dumpCmd := &cobra.Command{
		Use:   "dump grid [row,col...]",
		Short: "Print heightmap sample values",
		Long: `Print the sample values at the given integer coordinates, by default the
first and last samples.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(cmd)
			if err != nil {
				return err
			}
			grids, err := cfg.LoadGrids(args[0])
			if err != nil {
				return err
			}

			coordArgs := args[1:]
			if len(coordArgs) == 0 {
				coordArgs = []string{"0,0", fmt.Sprintf("%d,%d", heightgrid.Rows-1, heightgrid.Cols-1)}
			}
			for _, coordArg := range coordArgs {
				coord, err := parseGridCoord(coordArg)
				if err != nil {
					return err
				}
				row, col := int(coord.Row), int(coord.Col)
				if float64(row) != coord.Row || float64(col) != coord.Col {
					return fmt.Errorf("%s: expected integer coordinates", coordArg)
				}
				value, err := grids[0].At(row, col)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d,%d %d\n", row, col, value)
			}
			return nil
		},
	}

	return dumpCmd
}
