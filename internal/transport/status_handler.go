// Package transport exposes HTTP handlers for inspecting running monitors.
package transport

import (
	"encoding/json"
	"net/http"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/chainwatch7000-backend/internal/model"
)

// StatusProvider is the read-only slice of a monitor the handler serves.
type StatusProvider interface {
	ChainLength() int
	LastBlock() model.Block
	RecentReports() []model.BlockReport
}

type runStatus struct {
	Run            string            `json:"run"`
	ChainLength    int               `json:"chain_length"`
	LastBlockIndex uint64            `json:"last_block_index"`
	LastBlockHash  string            `json:"last_block_hash"`
	RecentReports  []blockReportBody `json:"recent_reports"`
}

type blockReportBody struct {
	Index            uint64             `json:"index"`
	Hash             string             `json:"hash"`
	NumTxs           float64            `json:"num_txs"`
	TotalAmount      float64            `json:"total_amount"`
	MaxAmount        float64            `json:"max_amount"`
	TimeDelta        float64            `json:"time_delta"`
	BaselineReady    bool               `json:"baseline_ready"`
	IsAnomaly        bool               `json:"is_anomaly"`
	ZScores          map[string]float64 `json:"z_scores,omitempty"`
	Reason           string             `json:"reason"`
	RuleAlert        bool               `json:"rule_alert"`
	Violations       []violationBody    `json:"violations,omitempty"`
	SyntheticAnomaly bool               `json:"synthetic_anomaly"`
}

type violationBody struct {
	Rule   string `json:"rule"`
	Detail string `json:"detail"`
}

// StatusHandler serves a JSON snapshot of chain state and recent detections
// for every registered run.
type StatusHandler struct {
	logger *zap.Logger

	mu       sync.Mutex
	monitors map[string]StatusProvider
}

// NewStatusHandler returns an empty handler; runs register themselves before
// they start producing blocks.
func NewStatusHandler(logger *zap.Logger) *StatusHandler {
	return &StatusHandler{
		logger:   logger,
		monitors: make(map[string]StatusProvider),
	}
}

// Register adds a monitor under the given run name.
func (h *StatusHandler) Register(run string, p StatusProvider) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.monitors[run] = p
}

func (h *StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.mu.Lock()
	names := make([]string, 0, len(h.monitors))
	for name := range h.monitors {
		names = append(names, name)
	}
	sort.Strings(names)
	statuses := make([]runStatus, 0, len(names))
	for _, name := range names {
		statuses = append(statuses, snapshot(name, h.monitors[name]))
	}
	h.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(struct {
		Runs []runStatus `json:"runs"`
	}{Runs: statuses}); err != nil {
		h.logger.Error("encode status response", zap.Error(err))
	}
}

func snapshot(run string, p StatusProvider) runStatus {
	tip := p.LastBlock()
	reports := p.RecentReports()
	bodies := make([]blockReportBody, 0, len(reports))
	for _, r := range reports {
		body := blockReportBody{
			Index:            r.Block.Index,
			Hash:             r.Block.Hash,
			NumTxs:           r.Features.NumTxs,
			TotalAmount:      r.Features.TotalAmount,
			MaxAmount:        r.Features.MaxAmount,
			TimeDelta:        r.Features.TimeDelta,
			BaselineReady:    r.Detection.Ready,
			IsAnomaly:        r.Detection.IsAnomaly,
			ZScores:          r.Detection.ZScores,
			Reason:           r.Detection.Reason,
			RuleAlert:        r.Rules.Alert,
			SyntheticAnomaly: r.SyntheticAnomaly,
		}
		for _, v := range r.Rules.Violations {
			body.Violations = append(body.Violations, violationBody{Rule: v.Rule, Detail: v.Detail})
		}
		bodies = append(bodies, body)
	}
	return runStatus{
		Run:            run,
		ChainLength:    p.ChainLength(),
		LastBlockIndex: tip.Index,
		LastBlockHash:  tip.Hash,
		RecentReports:  bodies,
	}
}
