package entity

import "time"

// Razones de ajuste reconocidas.
const (
	AdjustReasonDamage     = "DAMAGE"
	AdjustReasonLoss       = "LOSS"
	AdjustReasonFound      = "FOUND"
	AdjustReasonCountError = "COUNT_ERROR"
	AdjustReasonOther      = "OTHER"
)

// ValidAdjustReason indica si el código de razón es uno de los conocidos.
func ValidAdjustReason(reason string) bool {
	switch reason {
	case AdjustReasonDamage, AdjustReasonLoss, AdjustReasonFound, AdjustReasonCountError, AdjustReasonOther:
		return true
	}
	return false
}

// Adjustment ajuste manual de inventario (conteo físico).
// Forma reducida del ciclo de vida: se crea y queda DONE en el mismo acto.
// Lleva una sola línea implícita: saldo antes, cantidad contada y diferencia;
// el saldo resultante es por construcción QuantityCounted.
type Adjustment struct {
	ID               string
	AdjustmentNumber string
	ProductID        string
	LocationID       string
	QuantityBefore   int64
	QuantityCounted  int64
	Difference       int64
	Reason           string
	Status           DocumentStatus
	Notes            string
	CreatedAt        time.Time
	CreatedBy        string
}
