package simulation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/chainwatch7000-backend/internal/clock"
	"github.com/goodnatureofminers/chainwatch7000-backend/internal/model"
)

// Config holds one simulation run's parameters.
type Config struct {
	Run                string
	Blocks             int
	AnomalyProbability float64
	Seed               int64
	// BlockInterval paces normal blocks; AnomalyInterval paces injected
	// anomalous blocks and should be shorter, so the time_delta feature and
	// the minimum-interval rule have a signal to find.
	BlockInterval   time.Duration
	AnomalyInterval time.Duration
}

// Monitor is the slice of the pipeline the runner drives.
type Monitor interface {
	ProcessBlock(ctx context.Context, txs []model.Transaction, syntheticAnomaly bool) (model.BlockReport, error)
	VerifyChain() bool
}

// Runner feeds synthetic blocks into a monitor at the configured pace.
type Runner struct {
	cfg     Config
	gen     *Generator
	monitor Monitor
	logger  *zap.Logger
	sleep   func(context.Context, time.Duration) error
}

// NewRunner builds a runner with a generator seeded from cfg.Seed.
func NewRunner(cfg Config, monitor Monitor, logger *zap.Logger) *Runner {
	return &Runner{
		cfg:     cfg,
		gen:     NewGenerator(cfg.Seed),
		monitor: monitor,
		logger:  logger.With(zap.String("run", cfg.Run)),
		sleep:   clock.SleepWithContext,
	}
}

// Run produces cfg.Blocks blocks and finishes with a full integrity scan.
func (r *Runner) Run(ctx context.Context) error {
	r.logger.Info("starting run",
		zap.Int("blocks", r.cfg.Blocks),
		zap.Float64("anomaly_probability", r.cfg.AnomalyProbability),
		zap.Int64("seed", r.cfg.Seed))

	for i := 0; i < r.cfg.Blocks; i++ {
		anomalous := r.gen.Anomalous(r.cfg.AnomalyProbability)
		wait := r.cfg.BlockInterval
		if anomalous {
			wait = r.cfg.AnomalyInterval
		}
		if err := r.sleep(ctx, wait); err != nil {
			return err
		}
		if _, err := r.monitor.ProcessBlock(ctx, r.gen.Batch(anomalous), anomalous); err != nil {
			return fmt.Errorf("process block %d: %w", i+1, err)
		}
	}

	if !r.monitor.VerifyChain() {
		return errors.New("chain failed final integrity check")
	}
	r.logger.Info("run complete", zap.Int("blocks", r.cfg.Blocks))
	return nil
}
