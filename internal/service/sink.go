package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/chainwatch7000-backend/internal/model"
	"github.com/goodnatureofminers/chainwatch7000-backend/pkg/batcher"
)

// LogSink writes one log line per block report.
type LogSink struct {
	logger *zap.Logger
}

// NewLogSink builds a sink for low-volume runs.
func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Write(_ context.Context, report model.BlockReport) error {
	s.logger.Info("block report",
		zap.Uint64("index", report.Block.Index),
		zap.Bool("is_anomaly", report.Detection.IsAnomaly),
		zap.Bool("rule_alert", report.Rules.Alert),
		zap.Bool("synthetic_anomaly", report.SyntheticAnomaly))
	return nil
}

// BatchSink buffers block reports and flushes aggregated summaries so long
// runs do not write one log line per block.
type BatchSink struct {
	logger  *zap.Logger
	batcher *batcher.Batcher[model.BlockReport]
}

// NewBatchSink builds a sink flushing every flushSize reports or flushInterval,
// rate limited to rps flushes per second.
func NewBatchSink(logger *zap.Logger, flushSize int, flushInterval time.Duration, rps int) *BatchSink {
	s := &BatchSink{logger: logger}
	s.batcher = batcher.New(logger, s.flush, flushSize, flushInterval, rps)
	return s
}

// Start begins the background flush loop.
func (s *BatchSink) Start(ctx context.Context) {
	s.batcher.Start(ctx)
}

// Stop drains pending reports and stops the flush loop.
func (s *BatchSink) Stop() {
	s.batcher.Stop()
}

func (s *BatchSink) Write(ctx context.Context, report model.BlockReport) error {
	return s.batcher.Add(ctx, report)
}

func (s *BatchSink) flush(_ context.Context, reports []model.BlockReport) error {
	var anomalies, alerts, synthetic int
	for _, r := range reports {
		if r.Detection.IsAnomaly {
			anomalies++
		}
		if r.Rules.Alert {
			alerts++
		}
		if r.SyntheticAnomaly {
			synthetic++
		}
	}
	s.logger.Info("block report batch",
		zap.Int("reports", len(reports)),
		zap.Int("statistical_anomalies", anomalies),
		zap.Int("rule_alerts", alerts),
		zap.Int("synthetic_anomalies", synthetic))
	return nil
}
