package repository

import "github.com/jhoicas/stockmaster-api/internal/domain/entity"

// StockBalanceRepository puerto de acceso a saldos por (producto, ubicación).
type StockBalanceRepository interface {
	// Get devuelve el saldo actual; si la clave no existe devuelve un saldo en
	// cero, nunca error por ausencia.
	Get(productID, locationID string) (*entity.StockBalance, error)
	// GetForUpdate igual que Get pero bloquea la fila (SELECT ... FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(productID, locationID string) (*entity.StockBalance, error)
	// Upsert inserta o actualiza el saldo de la clave.
	Upsert(balance *entity.StockBalance) error
	// ListByProduct devuelve los saldos de un producto en todas sus ubicaciones.
	ListByProduct(productID string) ([]*entity.StockBalance, error)
}
