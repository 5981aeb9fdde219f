package entity

import (
	"github.com/ethereum/go-ethereum/core/types"
)

// CallRequest names one contract operation and its arguments in call order.
type CallRequest struct {
	Operation string
	Args      []any
	Mutating  bool
}

// Kind returns "transact" for mutating requests and "call" for reads.
func (r CallRequest) Kind() string {
	if r.Mutating {
		return "transact"
	}
	return "call"
}

// CallResult carries either a submitted, unconfirmed transaction (mutating calls)
// or the decoded return values (read calls).
type CallResult struct {
	Tx     *types.Transaction
	Values []any
}

// Pending reports whether the result is a pending-transaction handle.
func (r CallResult) Pending() bool {
	return r.Tx != nil
}

// BatchItem is the outcome of one read inside a batch.
type BatchItem struct {
	Operation string
	Values    []any
	Err       error
}
