package ledger

import "fmt"

// ValidationError reports a transaction rejected at block construction time.
// The chain is left unchanged when it is returned.
type ValidationError struct {
	TxIndex int
	Field   string
	Reason  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("transaction %d: invalid %s: %s", e.TxIndex, e.Field, e.Reason)
}
