package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/stockmaster-api/internal/application/inventory"
)

// Ensure TxRunner implements inventory.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// Las fallas por serialización/deadlock se traducen a ErrConcurrentModification.
func (r *TxRunner) Run(ctx context.Context, fn func(repos inventory.TxRepos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := inventory.TxRepos{
		Stock:       NewStockBalanceRepository(tx),
		Movements:   NewStockMovementRepository(tx),
		Receipts:    NewReceiptRepository(tx),
		Deliveries:  NewDeliveryRepository(tx),
		Transfers:   NewTransferRepository(tx),
		Adjustments: NewAdjustmentRepository(tx),
	}

	if err := fn(repos); err != nil {
		return translateConcurrency(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return translateConcurrency(fmt.Errorf("commit transaction: %w", err))
	}
	return nil
}
