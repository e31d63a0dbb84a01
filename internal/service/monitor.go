// Package service wires the ledger and the detector pair into the per-block
// monitoring pipeline.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/chainwatch7000-backend/internal/anomaly"
	"github.com/goodnatureofminers/chainwatch7000-backend/internal/model"
)

const defaultRecentReports = 50

// MonitorService owns one chain and both detectors, appending blocks and
// recording what the detectors say about them. ProcessBlock is the single
// writer; the mutex only makes the read accessors safe for concurrent status
// readers.
type MonitorService struct {
	ledger   Ledger
	detector StatisticalDetector
	rules    PolicyChecker
	sink     ReportSink
	metrics  MonitorMetrics
	logger   *zap.Logger

	mu     sync.Mutex
	prev   model.Block
	recent []model.BlockReport
}

// NewMonitorService builds the pipeline around an already-seeded ledger.
func NewMonitorService(
	ledger Ledger,
	detector StatisticalDetector,
	rules PolicyChecker,
	sink ReportSink,
	metrics MonitorMetrics,
	logger *zap.Logger,
) (*MonitorService, error) {
	if ledger == nil {
		return nil, errors.New("ledger is required")
	}
	if detector == nil || rules == nil {
		return nil, errors.New("both detectors are required")
	}
	if sink == nil {
		return nil, errors.New("report sink is required")
	}
	if metrics == nil {
		return nil, errors.New("monitor metrics is required")
	}
	return &MonitorService{
		ledger:   ledger,
		detector: detector,
		rules:    rules,
		sink:     sink,
		metrics:  metrics,
		logger:   logger,
		prev:     ledger.LastBlock(),
	}, nil
}

// ProcessBlock appends a block built from txs and runs both detectors over it.
// syntheticAnomaly is the injected ground-truth label carried into the report;
// it never influences either verdict.
func (s *MonitorService) ProcessBlock(ctx context.Context, txs []model.Transaction, syntheticAnomaly bool) (model.BlockReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	started := time.Now()
	block, err := s.ledger.AddBlock(txs)
	s.metrics.ObserveAppend(err, started)
	if err != nil {
		return model.BlockReport{}, fmt.Errorf("append block: %w", err)
	}

	prev := s.prev
	features := anomaly.Extract(block, &prev)

	started = time.Now()
	detection := s.detector.Evaluate(block.Index, features)
	ruleReport := s.rules.Evaluate(block, features, &prev)
	s.metrics.ObserveEvaluate(detection, ruleReport, started)

	report := model.BlockReport{
		Block:            block,
		Features:         features,
		Detection:        detection,
		Rules:            ruleReport,
		SyntheticAnomaly: syntheticAnomaly,
	}
	s.remember(report)
	s.logReport(report)

	if err := s.sink.Write(ctx, report); err != nil {
		return model.BlockReport{}, fmt.Errorf("write block report: %w", err)
	}

	s.prev = block
	return report, nil
}

// VerifyChain runs the full integrity scan and records the verdict.
func (s *MonitorService) VerifyChain() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	valid := s.ledger.IsValid()
	s.metrics.ObserveChainValidity(valid)
	if valid {
		s.logger.Info("chain integrity verified", zap.Int("blocks", s.ledger.Length()))
	} else {
		s.logger.Warn("chain integrity check failed", zap.Int("blocks", s.ledger.Length()))
	}
	return valid
}

// ChainLength returns the number of blocks, genesis included.
func (s *MonitorService) ChainLength() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Length()
}

// LastBlock returns the current chain tip.
func (s *MonitorService) LastBlock() model.Block {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.LastBlock()
}

// RecentReports returns the newest block reports, oldest first.
func (s *MonitorService) RecentReports() []model.BlockReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.BlockReport, len(s.recent))
	copy(out, s.recent)
	return out
}

func (s *MonitorService) remember(report model.BlockReport) {
	s.recent = append(s.recent, report)
	if len(s.recent) > defaultRecentReports {
		s.recent = s.recent[len(s.recent)-defaultRecentReports:]
	}
}

func (s *MonitorService) logReport(r model.BlockReport) {
	fields := []zap.Field{
		zap.Uint64("index", r.Block.Index),
		zap.Float64("num_txs", r.Features.NumTxs),
		zap.Float64("total_amount", r.Features.TotalAmount),
		zap.Float64("max_amount", r.Features.MaxAmount),
		zap.Float64("time_delta", r.Features.TimeDelta),
		zap.Bool("baseline_ready", r.Detection.Ready),
		zap.Bool("synthetic_anomaly", r.SyntheticAnomaly),
	}
	if r.Detection.IsAnomaly || r.Rules.Alert {
		fields = append(fields,
			zap.String("reason", r.Detection.Reason),
			zap.Any("violations", r.Rules.Violations))
		s.logger.Warn("block flagged", fields...)
		return
	}
	s.logger.Debug("block processed", fields...)
}
