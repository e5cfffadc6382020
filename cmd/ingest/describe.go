package main

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/table"
	"github.com/jedib0t/go-pretty/text"
	"github.com/spf13/cobra"

	"github.com/Mouryagna/ML-Project/pkg/data"
	"github.com/Mouryagna/ML-Project/pkg/stats"
)

func (a *app) describeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe [csv]",
		Short: "Print the schema and column profile of a CSV (default: the source)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			} else {
				s, err := a.settings()
				if err != nil {
					return err
				}
				path = s.IngestConfig().SourcePath
			}

			t, err := data.LoadCSV(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d rows, %d columns\n", path, t.Len(), len(t.Columns()))

			tw := table.NewWriter()
			tw.SetOutputMirror(out)
			// Don't uppercase the header values.
			tw.Style().Format.Header = text.FormatDefault
			tw.AppendHeader(table.Row{"column", "type", "count", "missing", "mean", "std", "min", "median", "max", "distinct", "top"})
			for _, s := range stats.Profile(t) {
				if s.Kind == data.Numeric {
					tw.AppendRow(table.Row{s.Name, s.Kind, s.Count, s.Missing,
						num(s.Mean), num(s.Std), num(s.Min), num(s.Median), num(s.Max), "", ""})
				} else {
					tw.AppendRow(table.Row{s.Name, s.Kind, s.Count, s.Missing,
						"", "", "", "", "", s.Distinct, s.Top})
				}
			}
			tw.Render()
			return nil
		},
	}
}

func num(f float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.4f", f), "0"), ".")
}
