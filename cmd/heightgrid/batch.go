package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/twpayne/go-heightgrid"
)

// newBatchCmd returns the batch command.
func newBatchCmd() *cobra.Command {
	batchCmd := &cobra.Command{
		Use:   "batch pre post paths.csv",
		Short: "Compare surface distances along many paths",
		Long: `Compare surface distances along each path in a CSV file. Each record is
fromRow,fromCol,toRow,toCol with an optional fifth sample count column.
Use - to read paths from standard input.

Output is CSV: fromRow,fromCol,toRow,toCol,samples,pre,post,delta.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(cmd)
			if err != nil {
				return err
			}

			survey, err := cfg.CreateSurvey(args[0], args[1])
			if err != nil {
				return err
			}

			var r io.Reader
			if args[2] == "-" {
				r = cmd.InOrStdin()
			} else {
				file, err := os.Open(args[2])
				if err != nil {
					return err
				}
				defer file.Close()
				r = file
			}

			csvReader := csv.NewReader(r)
			csvReader.FieldsPerRecord = -1
			csvReader.Comment = '#'
			csvWriter := csv.NewWriter(cmd.OutOrStdout())
			for {
				record, err := csvReader.Read()
				if errors.Is(err, io.EOF) {
					break
				} else if err != nil {
					return err
				}
				line, _ := csvReader.FieldPos(0)
				path, err := parsePathRecord(record, cfg.SampleCount)
				if err != nil {
					return fmt.Errorf("%s:%d: %w", args[2], line, err)
				}
				comparison, err := survey.Compare(cmd.Context(), path)
				if err != nil {
					return fmt.Errorf("%s:%d: %w", args[2], line, err)
				}
				if err := csvWriter.Write(formatComparison(comparison)); err != nil {
					return err
				}
			}
			csvWriter.Flush()
			slog.Debug("batch complete", "paths", args[2])
			return csvWriter.Error()
		},
	}

	return batchCmd
}

// parsePathRecord parses a path from a CSV record.
func parsePathRecord(record []string, defaultSampleCount int) (heightgrid.Path, error) {
	if len(record) != 4 && len(record) != 5 {
		return heightgrid.Path{}, fmt.Errorf("got %d fields, expected 4 or 5", len(record))
	}
	values := make([]float64, 4)
	for i := range values {
		value, err := strconv.ParseFloat(record[i], 64)
		if err != nil {
			return heightgrid.Path{}, err
		}
		values[i] = value
	}
	path := heightgrid.Path{
		From:        heightgrid.GridCoord{Row: values[0], Col: values[1]},
		To:          heightgrid.GridCoord{Row: values[2], Col: values[3]},
		SampleCount: defaultSampleCount,
	}
	if len(record) == 5 {
		sampleCount, err := strconv.Atoi(record[4])
		if err != nil {
			return heightgrid.Path{}, err
		}
		path.SampleCount = sampleCount
	}
	return path, nil
}

func formatComparison(c heightgrid.Comparison) []string {
	return []string{
		formatFloat(c.From.Row),
		formatFloat(c.From.Col),
		formatFloat(c.To.Row),
		formatFloat(c.To.Col),
		strconv.Itoa(c.SampleCount),
		formatFloat(c.Pre),
		formatFloat(c.Post),
		formatFloat(c.Delta()),
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
