package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto del catálogo. El SKU es único e inmutable; los productos
// nunca se eliminan, solo se desactivan.
type Product struct {
	ID            string
	SKU           string
	Name          string
	Description   string
	CategoryID    string
	UnitOfMeasure string          // unidad, caja, kg, etc.
	Price         decimal.Decimal // precio de venta
	Cost          decimal.Decimal // costo de referencia
	ReorderLevel  int64           // umbral de reposición (>= 0)
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Category agrupación administrativa de productos.
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
