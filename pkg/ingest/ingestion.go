// Package ingest loads the source dataset, keeps a raw copy and writes a
// seeded train/test split as CSV artifacts for the transformation and
// training stages.
package ingest

import (
	"errors"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"

	"github.com/Mouryagna/ML-Project/pkg/data"
	"github.com/Mouryagna/ML-Project/pkg/loader"
	"github.com/Mouryagna/ML-Project/pkg/pipeline"
)

// Stage names, in execution order.
const (
	StageLoad       = "load"
	StageWriteRaw   = "write_raw"
	StageSplit      = "split"
	StageWriteTrain = "write_train"
	StageWriteTest  = "write_test"
)

// Outcome is what a successful run hands to downstream stages.
type Outcome struct {
	TrainPath string
	TestPath  string
}

// Option configures an Ingestion.
type Option func(*Ingestion)

// WithSink routes stage events to sink.
func WithSink(sink pipeline.Sink) Option {
	return func(i *Ingestion) { i.sink = sink }
}

// WithRunID fixes the run identifier instead of generating one.
func WithRunID(id string) Option {
	return func(i *Ingestion) { i.runID = id }
}

// Ingestion runs the data ingestion stage.
type Ingestion struct {
	config Config
	sink   pipeline.Sink
	runID  string
}

func New(cfg Config, opts ...Option) *Ingestion {
	i := &Ingestion{config: cfg, sink: pipeline.Nop{}}
	for _, opt := range opts {
		opt(i)
	}
	if i.runID == "" {
		i.runID = uuid.NewString()
	}
	return i
}

// Config returns the configuration the ingestion was built with.
func (i *Ingestion) Config() Config { return i.config }

// RunID identifies this ingestion in events and errors.
func (i *Ingestion) RunID() string { return i.runID }

// InitiateDataIngestion loads the source, writes the raw copy, splits it
// and writes both subsets. Any failure stops the run and is returned as
// *Error; artifacts written before the failure stay on disk.
func (i *Ingestion) InitiateDataIngestion() (Outcome, error) {
	cfg := i.config
	var raw, train, test *data.Table

	p := pipeline.NewPipeline(i.runID, i.sink,
		pipeline.Stage{Name: StageLoad, Run: func(r *pipeline.Report) error {
			t, err := data.LoadCSV(cfg.SourcePath)
			if err != nil {
				return err
			}
			raw = t
			r.Rows, r.Path = t.Len(), cfg.SourcePath
			return nil
		}},
		pipeline.Stage{Name: StageWriteRaw, Run: write(&raw, cfg.RawDataPath)},
		pipeline.Stage{Name: StageSplit, Run: func(r *pipeline.Report) error {
			if cfg.TestSize < 0 || cfg.TestSize > 1 {
				return pkgerrors.Errorf("test size %v outside [0, 1]", cfg.TestSize)
			}
			train, test = loader.TrainTestSplit(raw, cfg.TestSize, cfg.Seed)
			r.Rows = test.Len()
			return nil
		}},
		pipeline.Stage{Name: StageWriteTrain, Run: write(&train, cfg.TrainDataPath)},
		pipeline.Stage{Name: StageWriteTest, Run: write(&test, cfg.TestDataPath)},
	)

	if err := p.Run(); err != nil {
		return Outcome{}, i.wrap(err)
	}
	return Outcome{TrainPath: cfg.TrainDataPath, TestPath: cfg.TestDataPath}, nil
}

// Tables are produced by earlier stages, hence the indirection.
func write(t **data.Table, path string) func(*pipeline.Report) error {
	return func(r *pipeline.Report) error {
		r.Path = path
		if err := data.WriteCSV(*t, path); err != nil {
			return err
		}
		r.Rows = (*t).Len()
		return nil
	}
}

func (i *Ingestion) wrap(err error) error {
	stage := ""
	cause := err
	var se *pipeline.StageError
	if errors.As(err, &se) {
		stage, cause = se.Stage, se.Err
	}
	return &Error{Kind: classify(cause), Stage: stage, RunID: i.runID, Err: cause}
}
