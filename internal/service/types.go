package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/chainwatch7000-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Ledger is the slice of the chain the pipeline drives.
	Ledger interface {
		AddBlock(txs []model.Transaction) (model.Block, error)
		LastBlock() model.Block
		Length() int
		IsValid() bool
	}
	// StatisticalDetector scores a feature vector against its baseline.
	StatisticalDetector interface {
		Evaluate(blockIndex uint64, fv model.FeatureVector) model.Detection
	}
	// PolicyChecker evaluates the fixed security rules for one block.
	PolicyChecker interface {
		Evaluate(b model.Block, fv model.FeatureVector, prev *model.Block) model.RuleReport
	}
	// ReportSink receives the combined per-block report.
	ReportSink interface {
		Write(ctx context.Context, report model.BlockReport) error
	}
	// MonitorMetrics records pipeline observations.
	MonitorMetrics interface {
		ObserveAppend(err error, started time.Time)
		ObserveEvaluate(det model.Detection, report model.RuleReport, started time.Time)
		ObserveChainValidity(valid bool)
	}
)
