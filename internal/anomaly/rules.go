package anomaly

import (
	"fmt"
	"time"

	"github.com/goodnatureofminers/chainwatch7000-backend/internal/model"
)

// Rule names reported in violations, in evaluation order.
const (
	RuleSingleAmountCap = "single_transaction_cap"
	RuleBlockTotalCap   = "block_total_cap"
	RuleMinInterval     = "min_block_interval"
)

// RuleConfig holds the fixed thresholds evaluated by the policy checker.
type RuleConfig struct {
	MaxSingleAmount  float64
	MaxTotalAmount   float64
	MinBlockInterval time.Duration
}

type rule struct {
	name  string
	check func(b model.Block, fv model.FeatureVector, prev *model.Block) (string, bool)
}

// RuleChecker evaluates fixed security policies against raw block values,
// independent of any statistical history. It is stateless per call and never
// mutates its inputs. Rules live in an ordered slice so new policies can be
// appended without reworking the evaluation loop.
type RuleChecker struct {
	rules []rule
}

// NewRuleChecker builds a checker with the three stock policies: a
// single-transaction amount cap, a block-total cap and a minimum inter-block
// interval.
func NewRuleChecker(cfg RuleConfig) *RuleChecker {
	return &RuleChecker{rules: []rule{
		{
			name: RuleSingleAmountCap,
			check: func(b model.Block, _ model.FeatureVector, _ *model.Block) (string, bool) {
				for _, tx := range b.Transactions {
					if tx.Amount > cfg.MaxSingleAmount {
						return fmt.Sprintf("transaction %s->%s amount %.2f exceeds cap %.2f",
							tx.Sender, tx.Receiver, tx.Amount, cfg.MaxSingleAmount), true
					}
				}
				return "", false
			},
		},
		{
			name: RuleBlockTotalCap,
			check: func(_ model.Block, fv model.FeatureVector, _ *model.Block) (string, bool) {
				if fv.TotalAmount > cfg.MaxTotalAmount {
					return fmt.Sprintf("block total %.2f exceeds cap %.2f", fv.TotalAmount, cfg.MaxTotalAmount), true
				}
				return "", false
			},
		},
		{
			name: RuleMinInterval,
			check: func(_ model.Block, fv model.FeatureVector, prev *model.Block) (string, bool) {
				if prev == nil {
					return "", false
				}
				if minInterval := cfg.MinBlockInterval.Seconds(); fv.TimeDelta < minInterval {
					return fmt.Sprintf("block interval %.3fs below minimum %.3fs", fv.TimeDelta, minInterval), true
				}
				return "", false
			},
		},
	}}
}

// Evaluate runs every rule in order and reports all violations, not just the
// first. prev is nil when b is the genesis block.
func (c *RuleChecker) Evaluate(b model.Block, fv model.FeatureVector, prev *model.Block) model.RuleReport {
	var report model.RuleReport
	for _, r := range c.rules {
		if detail, violated := r.check(b, fv, prev); violated {
			report.Violations = append(report.Violations, model.Violation{Rule: r.name, Detail: detail})
		}
	}
	report.Alert = len(report.Violations) > 0
	return report
}
