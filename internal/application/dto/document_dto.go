package dto

import "time"

// ── Recepciones ───────────────────────────────────────────────────────────────

// ReceiptLineRequest línea esperada en la creación de una recepción.
type ReceiptLineRequest struct {
	ProductID        string `json:"product_id"`
	QuantityExpected int64  `json:"quantity_expected"`
}

// CreateReceiptRequest alta de recepción en DRAFT, opcionalmente con líneas.
type CreateReceiptRequest struct {
	SupplierName  string               `json:"supplier_name"`
	WarehouseID   string               `json:"warehouse_id"`
	LocationID    string               `json:"location_id"`
	ScheduledDate *time.Time           `json:"scheduled_date"`
	Notes         string               `json:"notes"`
	Lines         []ReceiptLineRequest `json:"lines"`
}

// ReceiptLineResponse línea de recepción.
type ReceiptLineResponse struct {
	ID               string `json:"id"`
	ProductID        string `json:"product_id"`
	QuantityExpected int64  `json:"quantity_expected"`
	QuantityReceived int64  `json:"quantity_received"`
}

// ReceiptResponse recepción con sus líneas.
type ReceiptResponse struct {
	ID            string                `json:"id"`
	ReceiptNumber string                `json:"receipt_number"`
	SupplierName  string                `json:"supplier_name"`
	WarehouseID   string                `json:"warehouse_id"`
	LocationID    string                `json:"location_id"`
	Status        string                `json:"status"`
	ScheduledDate *time.Time            `json:"scheduled_date,omitempty"`
	Notes         string                `json:"notes,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
	Lines         []ReceiptLineResponse `json:"lines,omitempty"`
}

// ── Entregas ──────────────────────────────────────────────────────────────────

// DeliveryLineRequest línea pedida en la creación de una entrega.
type DeliveryLineRequest struct {
	ProductID       string `json:"product_id"`
	QuantityOrdered int64  `json:"quantity_ordered"`
}

// CreateDeliveryRequest alta de entrega en DRAFT, opcionalmente con líneas.
type CreateDeliveryRequest struct {
	CustomerName  string                `json:"customer_name"`
	WarehouseID   string                `json:"warehouse_id"`
	LocationID    string                `json:"location_id"`
	ScheduledDate *time.Time            `json:"scheduled_date"`
	Notes         string                `json:"notes"`
	Lines         []DeliveryLineRequest `json:"lines"`
}

// DeliveryLineResponse línea de entrega.
type DeliveryLineResponse struct {
	ID                string `json:"id"`
	ProductID         string `json:"product_id"`
	QuantityOrdered   int64  `json:"quantity_ordered"`
	QuantityDelivered int64  `json:"quantity_delivered"`
}

// DeliveryResponse entrega con sus líneas.
type DeliveryResponse struct {
	ID             string                 `json:"id"`
	DeliveryNumber string                 `json:"delivery_number"`
	CustomerName   string                 `json:"customer_name"`
	WarehouseID    string                 `json:"warehouse_id"`
	LocationID     string                 `json:"location_id"`
	Status         string                 `json:"status"`
	ScheduledDate  *time.Time             `json:"scheduled_date,omitempty"`
	Notes          string                 `json:"notes,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	Lines          []DeliveryLineResponse `json:"lines,omitempty"`
}

// ── Ediciones pre-validación ──────────────────────────────────────────────────

// SetStatusRequest cambio manual de estado (nunca a DONE: eso es del motor).
type SetStatusRequest struct {
	Status string `json:"status"`
}

// SetQuantityRequest actualización de cantidad recibida/entregada en una línea.
type SetQuantityRequest struct {
	Quantity int64 `json:"quantity"`
}

// ── Traslados y ajustes ───────────────────────────────────────────────────────

// CreateTransferRequest creación y ejecución atómica de un traslado.
type CreateTransferRequest struct {
	ProductID      string `json:"product_id"`
	FromLocationID string `json:"from_location_id"`
	ToLocationID   string `json:"to_location_id"`
	Quantity       int64  `json:"quantity"`
	Notes          string `json:"notes"`
}

// TransferResponse traslado ejecutado.
type TransferResponse struct {
	ID             string    `json:"id"`
	TransferNumber string    `json:"transfer_number"`
	ProductID      string    `json:"product_id"`
	FromLocationID string    `json:"from_location_id"`
	ToLocationID   string    `json:"to_location_id"`
	Quantity       int64     `json:"quantity"`
	Status         string    `json:"status"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// CreateAdjustmentRequest ajuste por conteo físico (se valida al crear).
type CreateAdjustmentRequest struct {
	ProductID       string `json:"product_id"`
	LocationID      string `json:"location_id"`
	QuantityCounted int64  `json:"quantity_counted"`
	Reason          string `json:"reason"`
	Notes           string `json:"notes"`
}

// AdjustmentResponse ajuste aplicado.
type AdjustmentResponse struct {
	ID               string    `json:"id"`
	AdjustmentNumber string    `json:"adjustment_number"`
	ProductID        string    `json:"product_id"`
	LocationID       string    `json:"location_id"`
	QuantityBefore   int64     `json:"quantity_before"`
	QuantityCounted  int64     `json:"quantity_counted"`
	Difference       int64     `json:"difference"`
	Reason           string    `json:"reason"`
	Status           string    `json:"status"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}
