package inventory

import (
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// StockQuery consultas de lectura sobre saldos y libro de movimientos.
// Corre sin bloqueos sobre el pool: los valores pueden estar ligeramente
// desactualizados frente a validaciones en curso, y nunca bloquean escritores.
type StockQuery struct {
	stockRepo    repository.StockBalanceRepository
	movementRepo repository.StockMovementRepository
}

// NewStockQuery construye el caso de uso de lectura.
func NewStockQuery(stockRepo repository.StockBalanceRepository, movementRepo repository.StockMovementRepository) *StockQuery {
	return &StockQuery{stockRepo: stockRepo, movementRepo: movementRepo}
}

// GetBalance devuelve el saldo de (producto, ubicación); cero si no existe.
func (q *StockQuery) GetBalance(productID, locationID string) (int64, error) {
	if productID == "" || locationID == "" {
		return 0, domain.ErrInvalidInput
	}
	b, err := q.stockRepo.Get(productID, locationID)
	if err != nil {
		return 0, err
	}
	return b.Quantity, nil
}

// GetBalancesByProduct devuelve los saldos de un producto por ubicación.
func (q *StockQuery) GetBalancesByProduct(productID string) ([]*entity.StockBalance, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	return q.stockRepo.ListByProduct(productID)
}

// ListMovements devuelve movimientos del libro, del más reciente al más antiguo.
func (q *StockQuery) ListMovements(filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	} else if filter.Limit > 200 {
		filter.Limit = 200
	}
	return q.movementRepo.List(filter)
}
