package ledger

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"
	"math"
	"time"

	"github.com/goodnatureofminers/chainwatch7000-backend/internal/model"
)

// computeHash digests the canonical byte form of a block's contents, excluding
// the Hash field itself. Field order and numeric encodings are fixed and
// strings are length-prefixed, so the digest is reproducible byte for byte
// across runs and processes.
func computeHash(index uint64, timestamp time.Time, txs []model.Transaction, previousHash string, nonce uint64) string {
	h := sha256.New()
	writeUint64(h, index)
	writeUint64(h, uint64(timestamp.UnixNano()))
	writeUint64(h, uint64(len(txs)))
	for _, tx := range txs {
		writeString(h, tx.Sender)
		writeString(h, tx.Receiver)
		writeUint64(h, math.Float64bits(tx.Amount))
	}
	writeString(h, previousHash)
	writeUint64(h, nonce)
	return hex.EncodeToString(h.Sum(nil))
}

func writeUint64(h hash.Hash, v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	h.Write(b[:])
}

func writeString(h hash.Hash, s string) {
	writeUint64(h, uint64(len(s)))
	h.Write([]byte(s))
}
