// Package simulation produces synthetic ledger traffic with injected
// anomalies for exercising the monitoring pipeline.
package simulation

import (
	"math/rand"

	"github.com/goodnatureofminers/chainwatch7000-backend/internal/model"
)

var (
	senders   = []string{"alice", "bob", "charlie", "dave"}
	receivers = []string{"eve", "frank", "grace", "heidi"}
)

// Generator draws random transaction batches from a seeded source so runs are
// reproducible.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator builds a generator with its own seeded source.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Transaction returns one transfer. Anomalous transfers carry amounts an order
// of magnitude above the normal range.
func (g *Generator) Transaction(anomalous bool) model.Transaction {
	amount := 1 + g.rng.Float64()*99
	if anomalous {
		amount = 1000 + g.rng.Float64()*4000
	}
	return model.Transaction{
		Sender:   senders[g.rng.Intn(len(senders))],
		Receiver: receivers[g.rng.Intn(len(receivers))],
		Amount:   amount,
	}
}

// Batch returns the transaction set for one block. Anomalous blocks carry more
// transactions than normal ones, as one more signal for the detectors.
func (g *Generator) Batch(anomalous bool) []model.Transaction {
	n := 1 + g.rng.Intn(5)
	if anomalous {
		n = 6 + g.rng.Intn(5)
	}
	txs := make([]model.Transaction, 0, n)
	for i := 0; i < n; i++ {
		txs = append(txs, g.Transaction(anomalous))
	}
	return txs
}

// Anomalous decides with probability p whether the next block is injected as
// anomalous.
func (g *Generator) Anomalous(p float64) bool {
	return g.rng.Float64() < p
}
