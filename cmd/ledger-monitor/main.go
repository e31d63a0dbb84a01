package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/chainwatch7000-backend/internal/anomaly"
	"github.com/goodnatureofminers/chainwatch7000-backend/internal/ledger"
	"github.com/goodnatureofminers/chainwatch7000-backend/internal/metrics"
	"github.com/goodnatureofminers/chainwatch7000-backend/internal/service"
	"github.com/goodnatureofminers/chainwatch7000-backend/internal/simulation"
	"github.com/goodnatureofminers/chainwatch7000-backend/internal/transport"
	"github.com/goodnatureofminers/chainwatch7000-backend/pkg/workerpool"
)

const reportFlushRPS = 10

type config struct {
	Blocks             int           `long:"blocks" env:"LEDGER_MONITOR_BLOCKS" description:"blocks to produce per run" default:"40"`
	AnomalyProbability float64       `long:"anomaly-probability" env:"LEDGER_MONITOR_ANOMALY_PROBABILITY" description:"chance a block carries injected anomalies" default:"0.25"`
	BaselineSize       int           `long:"baseline-size" env:"LEDGER_MONITOR_BASELINE_SIZE" description:"blocks used to freeze the statistical baseline" default:"10"`
	ZThreshold         float64       `long:"z-threshold" env:"LEDGER_MONITOR_Z_THRESHOLD" description:"absolute z-score above which a feature is anomalous" default:"1.5"`
	MaxSingleAmount    float64       `long:"max-single-amount" env:"LEDGER_MONITOR_MAX_SINGLE_AMOUNT" description:"single transaction amount cap" default:"2000"`
	MaxTotalAmount     float64       `long:"max-total-amount" env:"LEDGER_MONITOR_MAX_TOTAL_AMOUNT" description:"block total amount cap" default:"5000"`
	MinBlockInterval   time.Duration `long:"min-block-interval" env:"LEDGER_MONITOR_MIN_BLOCK_INTERVAL" description:"minimum allowed spacing between blocks" default:"20ms"`
	BlockInterval      time.Duration `long:"block-interval" env:"LEDGER_MONITOR_BLOCK_INTERVAL" description:"pacing for normal blocks" default:"100ms"`
	AnomalyInterval    time.Duration `long:"anomaly-interval" env:"LEDGER_MONITOR_ANOMALY_INTERVAL" description:"pacing for injected anomalous blocks" default:"10ms"`
	Seed               int64         `long:"seed" env:"LEDGER_MONITOR_SEED" description:"base rng seed; each run derives its own" default:"42"`
	Runs               int           `long:"runs" env:"LEDGER_MONITOR_RUNS" description:"independent simulation runs" default:"1"`
	Workers            int           `long:"workers" env:"LEDGER_MONITOR_WORKERS" description:"concurrent runs" default:"4"`
	ReportFlushSize    int           `long:"report-flush-size" env:"LEDGER_MONITOR_REPORT_FLUSH_SIZE" description:"block reports per flushed batch" default:"20"`
	ReportFlushEvery   time.Duration `long:"report-flush-interval" env:"LEDGER_MONITOR_REPORT_FLUSH_INTERVAL" description:"max wait before flushing buffered reports" default:"5s"`
	HTTPAddr           string        `long:"http-addr" env:"LEDGER_MONITOR_HTTP_ADDR" description:"status/metrics listen address; empty disables the listener"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if cfg.Blocks <= 0 {
		logger.Fatal("blocks per run must be positive")
	}
	if cfg.Runs <= 0 {
		logger.Fatal("run count must be positive")
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("ledger monitor failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	status := transport.NewStatusHandler(logger.Named("status"))
	if cfg.HTTPAddr != "" {
		startHTTP(ctx, cfg.HTTPAddr, status, logger)
	}

	sink := service.NewBatchSink(logger.Named("reports"), cfg.ReportFlushSize, cfg.ReportFlushEvery, reportFlushRPS)
	sink.Start(ctx)
	defer sink.Stop()

	runs := make([]simulation.Config, 0, cfg.Runs)
	for i := 0; i < cfg.Runs; i++ {
		runs = append(runs, simulation.Config{
			Run:                fmt.Sprintf("run-%d", i),
			Blocks:             cfg.Blocks,
			AnomalyProbability: cfg.AnomalyProbability,
			Seed:               cfg.Seed + int64(i),
			BlockInterval:      cfg.BlockInterval,
			AnomalyInterval:    cfg.AnomalyInterval,
		})
	}

	return workerpool.Process(ctx, cfg.Workers, runs, func(ctx context.Context, rc simulation.Config) error {
		chain := ledger.New()
		detector := anomaly.NewDetector(cfg.BaselineSize, cfg.ZThreshold)
		rules := anomaly.NewRuleChecker(anomaly.RuleConfig{
			MaxSingleAmount:  cfg.MaxSingleAmount,
			MaxTotalAmount:   cfg.MaxTotalAmount,
			MinBlockInterval: cfg.MinBlockInterval,
		})
		monitor, err := service.NewMonitorService(chain, detector, rules, sink, metrics.NewMonitor(rc.Run), logger.Named("monitor"))
		if err != nil {
			return err
		}
		status.Register(rc.Run, monitor)
		return simulation.NewRunner(rc, monitor, logger.Named("simulation")).Run(ctx)
	})
}

func startHTTP(ctx context.Context, addr string, status *transport.StatusHandler, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/status", status)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()
	go func() {
		logger.Info("starting http server", zap.String("addr", addr))
		if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to listen and serve", zap.Error(err))
		}
	}()
}
