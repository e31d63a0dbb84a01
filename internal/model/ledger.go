// Package model defines domain models shared by the ledger and the detection layer.
package model

import "time"

// GenesisPreviousHash is the sentinel previous-hash value carried by a genesis block.
const GenesisPreviousHash = "0"

// Transaction is a single transfer recorded inside a block.
type Transaction struct {
	Sender   string
	Receiver string
	Amount   float64
}

// Block is one link of the hash chain. A block is finalized at construction
// time: Hash is computed once over the remaining fields and the ledger never
// mutates a stored block afterwards.
type Block struct {
	Index        uint64
	Timestamp    time.Time
	Transactions []Transaction
	PreviousHash string
	Nonce        uint64
	Hash         string
}

// IsGenesis reports whether the block is the first block of a chain.
func (b Block) IsGenesis() bool {
	return b.Index == 0
}
