package entity

import "time"

// Transfer traslado de un producto entre dos ubicaciones.
// A diferencia de recepciones y entregas, se crea y ejecuta en una sola
// llamada: no pasa por WAITING/READY. Genera dos movimientos enlazados
// (TRANSFER_OUT en origen, TRANSFER_IN en destino) con el mismo documento.
type Transfer struct {
	ID             string
	TransferNumber string
	ProductID      string
	FromLocationID string
	ToLocationID   string
	Quantity       int64
	Status         DocumentStatus
	Notes          string
	CreatedAt      time.Time
	CreatedBy      string
}
