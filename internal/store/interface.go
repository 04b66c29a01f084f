package store

import (
	"context"

	"github.com/smallworld/txstats/internal/model"
)

// Source loads the full transaction collection in its original order.
type Source interface {
	Transactions(ctx context.Context) ([]model.Transaction, error)
	Close() error
}
