package entity

import "time"

// StockBalance saldo actual de un producto en una ubicación.
// Es una proyección derivada del libro de movimientos: en todo momento
// Quantity == suma de los deltas de StockMovement para (ProductID, LocationID),
// y Quantity nunca es negativa. Se crea de forma perezosa en el primer
// movimiento hacia la ubicación y nunca se elimina (saldo cero es válido).
type StockBalance struct {
	ProductID  string
	LocationID string
	Quantity   int64
	UpdatedAt  time.Time
}

// Key clave (producto, ubicación) del saldo.
func (s *StockBalance) Key() StockKey {
	return StockKey{ProductID: s.ProductID, LocationID: s.LocationID}
}

// StockKey identifica un saldo por (producto, ubicación).
type StockKey struct {
	ProductID  string
	LocationID string
}

// Less orden global de claves, usado para adquirir bloqueos de fila siempre en
// el mismo orden y evitar deadlocks entre lotes que comparten claves.
func (k StockKey) Less(other StockKey) bool {
	if k.ProductID != other.ProductID {
		return k.ProductID < other.ProductID
	}
	return k.LocationID < other.LocationID
}
