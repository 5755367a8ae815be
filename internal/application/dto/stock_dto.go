package dto

import "time"

// BalanceResponse saldo de un producto en una ubicación.
type BalanceResponse struct {
	ProductID  string `json:"product_id"`
	LocationID string `json:"location_id"`
	Quantity   int64  `json:"quantity"`
}

// MovementResponse entrada del libro de movimientos.
type MovementResponse struct {
	ID             int64     `json:"id"`
	ProductID      string    `json:"product_id"`
	LocationID     string    `json:"location_id"`
	Delta          int64     `json:"delta"`
	Type           string    `json:"type"`
	SourceDocument string    `json:"source_document"`
	CreatedAt      time.Time `json:"created_at"`
	CreatedBy      string    `json:"created_by,omitempty"`
}

// DashboardKPIResponse indicadores del tablero.
type DashboardKPIResponse struct {
	TotalProducts     int64 `json:"total_products"`
	LowStockProducts  int64 `json:"low_stock_products"`
	PendingReceipts   int64 `json:"pending_receipts"`
	PendingDeliveries int64 `json:"pending_deliveries"`
	MovementsToday    int64 `json:"movements_today"`
	TotalStockUnits   int64 `json:"total_stock_units"`
	Warehouses        int64 `json:"warehouses"`
}
