package entity

import "time"

// Warehouse bodega física.
type Warehouse struct {
	ID        string
	Code      string
	Name      string
	Address   string
	CreatedAt time.Time
}

// Location ubicación dentro de una bodega (rack, estante, zona).
// Es la unidad de direccionamiento del stock: todo saldo vive en una ubicación.
type Location struct {
	ID          string
	WarehouseID string
	Code        string
	Name        string
	CreatedAt   time.Time
}
