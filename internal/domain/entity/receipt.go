package entity

import "time"

// Receipt recepción de mercancía (entrada a una ubicación).
// Se crea en DRAFT; el motor de validación la pasa a DONE aplicando las líneas
// con cantidad recibida positiva contra el libro de movimientos.
type Receipt struct {
	ID            string
	ReceiptNumber string
	SupplierName  string
	WarehouseID   string
	LocationID    string
	Status        DocumentStatus
	ScheduledDate *time.Time
	Notes         string
	CreatedAt     time.Time
	CreatedBy     string
	Lines         []ReceiptLine
}

// ReceiptLine línea de recepción: cantidad esperada vs. recibida.
type ReceiptLine struct {
	ID               string
	ReceiptID        string
	ProductID        string
	QuantityExpected int64
	QuantityReceived int64
}
