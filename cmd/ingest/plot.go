package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Mouryagna/ML-Project/pkg/data"
	"github.com/Mouryagna/ML-Project/pkg/report"
)

func (a *app) plotCmd() *cobra.Command {
	var column, output string
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Plot the train vs test distribution of a numeric column",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.settings()
			if err != nil {
				return err
			}
			cfg := s.IngestConfig()

			train, err := data.LoadCSV(cfg.TrainDataPath)
			if err != nil {
				return err
			}
			test, err := data.LoadCSV(cfg.TestDataPath)
			if err != nil {
				return err
			}

			if output == "" {
				output = filepath.Join(cfg.ArtifactsDir, "split_"+column+".png")
			}
			if err := report.SplitHistogram(train, test, column, output); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}
	cmd.Flags().StringVar(&column, "column", "", "Numeric column to plot")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output image (default: <root>/artifacts/split_<column>.png)")
	_ = cmd.MarkFlagRequired("column")
	return cmd
}
