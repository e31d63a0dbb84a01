// Package anomaly derives per-block features and scores them with a frozen
// statistical baseline and a fixed set of policy rules. The two detectors are
// independent: neither reads the other's state or verdicts.
package anomaly

import "github.com/goodnatureofminers/chainwatch7000-backend/internal/model"

// Extract derives the feature vector for a block. prev is nil for the genesis
// block, in which case TimeDelta is 0; empty transaction lists yield zero
// amount features.
func Extract(b model.Block, prev *model.Block) model.FeatureVector {
	fv := model.FeatureVector{NumTxs: float64(len(b.Transactions))}
	for _, tx := range b.Transactions {
		fv.TotalAmount += tx.Amount
		if tx.Amount > fv.MaxAmount {
			fv.MaxAmount = tx.Amount
		}
	}
	if prev != nil {
		fv.TimeDelta = b.Timestamp.Sub(prev.Timestamp).Seconds()
	}
	return fv
}
