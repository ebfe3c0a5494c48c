package repositories

import (
	"context"
)

// TxFn is a function executed within a transaction.
type TxFn func(ctx context.Context) error

// TransactionManager runs a function inside a single database
// transaction. The cascade delete relies on this: either the whole
// subtree's metadata goes, or none of it does.
type TransactionManager interface {
	ExecTx(ctx context.Context, fn TxFn) error
}
