package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Mouryagna/ML-Project/pkg/config"
)

// Version is set at build time
var Version = "0.1.0"

type app struct {
	v       *viper.Viper
	verbose bool
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:   "ingest",
		Short: "Load the source dataset and write train/test artifacts",
		Long: `ingest reads the source CSV, keeps a raw copy under <root>/artifacts
and writes a seeded train/test split next to it.

Commands:
  run       - Run the ingestion stage
  describe  - Print the schema and column profile of a CSV file
  plot      - Plot train vs test distribution of a numeric column

Example:
  ingest run --root . --source notebook/data/stud.csv
  ingest describe artifacts/train.csv
  ingest plot --root . --column math_score`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.String("root", "", "Project root holding artifacts/ (default: executable directory)")
	flags.String("source", "", "Source CSV (default: <root>/notebook/data/stud.csv)")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")
	flags.String("log-format", "json", "Log format: json or console")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Print error stack traces")

	for key, flag := range map[string]string{
		"root":       "root",
		"source":     "source",
		"log_level":  "log-level",
		"log_format": "log-format",
	} {
		_ = a.v.BindPFlag(key, flags.Lookup(flag))
	}

	root.AddCommand(a.runCmd(), a.describeCmd(), a.plotCmd())
	return root
}

func (a *app) settings() (*config.Settings, error) {
	return config.Load(a.v)
}
