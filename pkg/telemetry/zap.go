// Package telemetry provides pipeline.Sink implementations backed by zap
// and Prometheus.
package telemetry

import (
	"go.uber.org/zap"

	"github.com/Mouryagna/ML-Project/pkg/pipeline"
)

// ZapSink logs stage events.
type ZapSink struct {
	logger *zap.Logger
}

func NewZapSink(logger *zap.Logger) *ZapSink {
	return &ZapSink{logger: logger}
}

func (s *ZapSink) Emit(e pipeline.Event) {
	fields := []zap.Field{
		zap.String("run_id", e.RunID),
		zap.String("stage", e.Stage),
	}
	if e.Rows >= 0 {
		fields = append(fields, zap.Int("rows", e.Rows))
	}
	if e.Path != "" {
		fields = append(fields, zap.String("path", e.Path))
	}

	switch e.Status {
	case pipeline.Started:
		s.logger.Debug("stage started", fields...)
	case pipeline.Succeeded:
		s.logger.Info("stage succeeded", append(fields, zap.Duration("duration", e.Duration))...)
	case pipeline.Failed:
		s.logger.Error("stage failed", append(fields, zap.Duration("duration", e.Duration), zap.Error(e.Err))...)
	}
}

// Multi fans events out to several sinks in order.
type Multi []pipeline.Sink

func (m Multi) Emit(e pipeline.Event) {
	for _, s := range m {
		s.Emit(e)
	}
}
