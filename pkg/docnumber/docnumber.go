package docnumber

import (
	"fmt"
	"math/rand"
	"time"
)

// Prefijos por tipo de documento.
const (
	PrefixReceipt    = "RCP"
	PrefixDelivery   = "DEL"
	PrefixTransfer   = "TRF"
	PrefixAdjustment = "ADJ"
)

// New genera una referencia legible de documento: PREFIJO-YYYYMMDD-NNNNNN,
// con sufijo aleatorio de seis dígitos. La unicidad real la garantiza el
// constraint único de la tabla; el sufijo solo hace improbable la colisión.
func New(prefix string, t time.Time) string {
	return fmt.Sprintf("%s-%s-%06d", prefix, t.Format("20060102"), rand.Intn(1000000))
}
