package entity

import "time"

// Delivery orden de entrega (salida desde una ubicación).
// Simétrica a Receipt: el motor aplica -quantity_delivered por línea y el lote
// completo se rechaza si alguna línea dejaría un saldo negativo.
type Delivery struct {
	ID             string
	DeliveryNumber string
	CustomerName   string
	WarehouseID    string
	LocationID     string
	Status         DocumentStatus
	ScheduledDate  *time.Time
	Notes          string
	CreatedAt      time.Time
	CreatedBy      string
	Lines          []DeliveryLine
}

// DeliveryLine línea de entrega: cantidad pedida vs. entregada.
type DeliveryLine struct {
	ID                string
	DeliveryID        string
	ProductID         string
	QuantityOrdered   int64
	QuantityDelivered int64
}
