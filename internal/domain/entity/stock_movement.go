package entity

import "time"

// Tipos de movimiento del libro de inventario.
const (
	MovementTypeReceipt     = "RECEIPT"
	MovementTypeDelivery    = "DELIVERY"
	MovementTypeTransferOut = "TRANSFER_OUT"
	MovementTypeTransferIn  = "TRANSFER_IN"
	MovementTypeAdjustment  = "ADJUSTMENT"
)

// StockMovement entrada inmutable del libro de movimientos (append-only).
// Delta es la cantidad con signo aplicada al saldo de (ProductID, LocationID);
// SourceDocument referencia el documento que causó el movimiento.
type StockMovement struct {
	ID             int64
	ProductID      string
	LocationID     string
	Delta          int64
	Type           string
	SourceDocument string
	CreatedAt      time.Time
	CreatedBy      string
}
