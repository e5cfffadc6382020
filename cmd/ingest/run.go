package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Mouryagna/ML-Project/pkg/ingest"
	"github.com/Mouryagna/ML-Project/pkg/loader"
	"github.com/Mouryagna/ML-Project/pkg/logger"
	"github.com/Mouryagna/ML-Project/pkg/telemetry"
)

func (a *app) runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the ingestion stage and print the train and test paths",
		Args:  cobra.NoArgs,
		RunE:  a.run,
	}
	flags := cmd.Flags()
	flags.Float64("test-size", loader.DefaultTestSize, "Fraction of rows held out for testing")
	flags.Int64("seed", loader.DefaultSeed, "Seed of the split permutation")
	flags.String("metrics-file", "", "Write Prometheus metrics to this textfile")
	_ = a.v.BindPFlag("test_size", flags.Lookup("test-size"))
	_ = a.v.BindPFlag("seed", flags.Lookup("seed"))
	_ = a.v.BindPFlag("metrics_file", flags.Lookup("metrics-file"))
	return cmd
}

func (a *app) run(cmd *cobra.Command, _ []string) error {
	s, err := a.settings()
	if err != nil {
		return err
	}
	log := logger.NewWithWriter(s.Logger(), cmd.ErrOrStderr())
	defer log.Sync()

	sinks := telemetry.Multi{telemetry.NewZapSink(log)}
	var metrics *telemetry.MetricsSink
	if s.MetricsFile != "" {
		metrics = telemetry.NewMetricsSink()
		sinks = append(sinks, metrics)
	}

	ing := ingest.New(s.IngestConfig(), ingest.WithSink(sinks))
	log.Info("entered the data ingestion component",
		zap.String("run_id", ing.RunID()),
		zap.String("source", ing.Config().SourcePath),
		zap.String("artifacts", ing.Config().ArtifactsDir),
	)

	out, runErr := ing.InitiateDataIngestion()
	if metrics != nil {
		if err := metrics.WriteTextfile(s.MetricsFile); err != nil {
			log.Warn("could not write metrics", zap.String("path", s.MetricsFile), zap.Error(err))
		}
	}
	if runErr != nil {
		if a.verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "%+v\n", runErr)
		}
		log.Error("data ingestion failed", zap.Error(runErr))
		return runErr
	}

	log.Info("data ingestion completed", zap.String("train", out.TrainPath), zap.String("test", out.TestPath))
	fmt.Fprintln(cmd.OutOrStdout(), out.TrainPath)
	fmt.Fprintln(cmd.OutOrStdout(), out.TestPath)
	return nil
}
