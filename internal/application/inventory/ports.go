package inventory

import (
	"context"

	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// TxRepos repositorios atados a una misma transacción de BD.
type TxRepos struct {
	Stock       repository.StockBalanceRepository
	Movements   repository.StockMovementRepository
	Receipts    repository.ReceiptRepository
	Deliveries  repository.DeliveryRepository
	Transfers   repository.TransferRepository
	Adjustments repository.AdjustmentRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza la atomicidad del motor: si fn
// devuelve error se hace Rollback y ningún efecto parcial es observable.
type TxRunner interface {
	Run(ctx context.Context, fn func(r TxRepos) error) error
}
