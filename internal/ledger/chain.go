// Package ledger implements the append-only hash-chained block ledger and its
// integrity scan.
package ledger

import (
	"fmt"
	"math"
	"time"

	"github.com/goodnatureofminers/chainwatch7000-backend/internal/model"
)

// Chain owns the ordered block sequence. It grows only by appending and has a
// single writer: AddBlock is not safe for concurrent callers, which must
// serialize access themselves.
type Chain struct {
	now    func() time.Time
	blocks []model.Block
}

// New builds a chain seeded with its genesis block.
func New() *Chain {
	return NewWithClock(time.Now)
}

// NewWithClock builds a chain that reads block timestamps from now. Tests and
// drivers use it to make block times deterministic.
func NewWithClock(now func() time.Time) *Chain {
	c := &Chain{now: now}
	c.blocks = append(c.blocks, c.newBlock(0, nil, model.GenesisPreviousHash))
	return c
}

func (c *Chain) newBlock(index uint64, txs []model.Transaction, previousHash string) model.Block {
	b := model.Block{
		Index:        index,
		Timestamp:    c.now(),
		Transactions: txs,
		PreviousHash: previousHash,
	}
	b.Hash = computeHash(b.Index, b.Timestamp, b.Transactions, b.PreviousHash, b.Nonce)
	return b
}

// AddBlock validates txs, links a new block to the current tip and appends it.
// Validation failures return a *ValidationError naming the offending field and
// leave the chain untouched.
func (c *Chain) AddBlock(txs []model.Transaction) (model.Block, error) {
	if err := validateTransactions(txs); err != nil {
		return model.Block{}, err
	}
	tip := c.blocks[len(c.blocks)-1]
	b := c.newBlock(tip.Index+1, cloneTransactions(txs), tip.Hash)
	c.blocks = append(c.blocks, b)
	return b, nil
}

func validateTransactions(txs []model.Transaction) error {
	for i, tx := range txs {
		switch {
		case tx.Sender == "":
			return &ValidationError{TxIndex: i, Field: "sender", Reason: "identifier is empty"}
		case tx.Receiver == "":
			return &ValidationError{TxIndex: i, Field: "receiver", Reason: "identifier is empty"}
		case math.IsNaN(tx.Amount) || math.IsInf(tx.Amount, 0):
			return &ValidationError{TxIndex: i, Field: "amount", Reason: fmt.Sprintf("not a finite number: %f", tx.Amount)}
		case tx.Amount < 0:
			return &ValidationError{TxIndex: i, Field: "amount", Reason: fmt.Sprintf("negative amount: %.2f", tx.Amount)}
		}
	}
	return nil
}

// LastBlock returns the current tip.
func (c *Chain) LastBlock() model.Block {
	return c.blocks[len(c.blocks)-1]
}

// Length returns the number of blocks, genesis included.
func (c *Chain) Length() int {
	return len(c.blocks)
}

// BlockAt returns the block at index i.
func (c *Chain) BlockAt(i int) (model.Block, bool) {
	if i < 0 || i >= len(c.blocks) {
		return model.Block{}, false
	}
	return c.blocks[i], true
}

// Blocks returns a copy of the stored sequence so callers cannot alter chain
// state through the result.
func (c *Chain) Blocks() []model.Block {
	out := make([]model.Block, len(c.blocks))
	copy(out, c.blocks)
	for i := range out {
		out[i].Transactions = cloneTransactions(out[i].Transactions)
	}
	return out
}

// IsValid recomputes every block's hash from its stored fields and checks
// every non-genesis block's previous-hash link against the predecessor's
// stored hash. Tampering is reported through the boolean, never an error; the
// scan stops at the first broken block.
func (c *Chain) IsValid() bool {
	for i, b := range c.blocks {
		if b.Hash != computeHash(b.Index, b.Timestamp, b.Transactions, b.PreviousHash, b.Nonce) {
			return false
		}
		if i > 0 && b.PreviousHash != c.blocks[i-1].Hash {
			return false
		}
	}
	return true
}

func cloneTransactions(txs []model.Transaction) []model.Transaction {
	if txs == nil {
		return nil
	}
	out := make([]model.Transaction, len(txs))
	copy(out, txs)
	return out
}
