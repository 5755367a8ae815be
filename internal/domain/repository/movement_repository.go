package repository

import "github.com/jhoicas/stockmaster-api/internal/domain/entity"

// MovementFilter filtros para listar movimientos del libro.
type MovementFilter struct {
	ProductID  string
	LocationID string
	Type       string
	Limit      int
}

// StockMovementRepository puerto del libro de movimientos (append-only).
type StockMovementRepository interface {
	// Create persiste la entrada y asigna su ID secuencial.
	Create(movement *entity.StockMovement) error
	// List devuelve movimientos ordenados del más reciente al más antiguo.
	List(filter MovementFilter) ([]*entity.StockMovement, error)
	// SumDeltas suma los deltas del libro para una clave (producto, ubicación).
	SumDeltas(productID, locationID string) (int64, error)
}
