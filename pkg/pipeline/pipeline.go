package pipeline

import (
	"fmt"
	"time"
)

// Status is the lifecycle point an Event reports.
type Status string

const (
	Started   Status = "started"
	Succeeded Status = "succeeded"
	Failed    Status = "failed"
)

// Event describes one stage transition.
type Event struct {
	RunID    string
	Stage    string
	Status   Status
	Rows     int    // rows handled by the stage, -1 when not applicable
	Path     string // file touched by the stage, if any
	Duration time.Duration
	Err      error
}

// Sink receives stage events. Implementations must not fail the run.
type Sink interface {
	Emit(Event)
}

// Nop discards every event.
type Nop struct{}

func (Nop) Emit(Event) {}

// Report is filled in by a stage to annotate its success event.
type Report struct {
	Rows int
	Path string
}

// Stage is one named step of a pipeline.
type Stage struct {
	Name string
	Run  func(r *Report) error
}

// StageError records which stage stopped the pipeline.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// Pipeline chains stages and runs them in order.
type Pipeline struct {
	runID string
	steps []Stage
	sink  Sink
	now   func() time.Time
}

func NewPipeline(runID string, sink Sink, steps ...Stage) *Pipeline {
	if sink == nil {
		sink = Nop{}
	}
	return &Pipeline{runID: runID, steps: steps, sink: sink, now: time.Now}
}

// Run executes every stage in order and halts at the first failure,
// returning it as a *StageError. Stages already completed are not undone.
func (p *Pipeline) Run() error {
	for _, step := range p.steps {
		p.sink.Emit(Event{RunID: p.runID, Stage: step.Name, Status: Started, Rows: -1})

		start := p.now()
		report := Report{Rows: -1}
		err := step.Run(&report)
		elapsed := p.now().Sub(start)

		if err != nil {
			p.sink.Emit(Event{
				RunID:    p.runID,
				Stage:    step.Name,
				Status:   Failed,
				Rows:     report.Rows,
				Path:     report.Path,
				Duration: elapsed,
				Err:      err,
			})
			return &StageError{Stage: step.Name, Err: err}
		}
		p.sink.Emit(Event{
			RunID:    p.runID,
			Stage:    step.Name,
			Status:   Succeeded,
			Rows:     report.Rows,
			Path:     report.Path,
			Duration: elapsed,
		})
	}
	return nil
}
