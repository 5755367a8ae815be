package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

// ValidateReceipt valida una recepción: por cada línea con cantidad recibida
// positiva aplica +quantity_received en la ubicación de la recepción y pasa el
// documento a DONE. Las líneas con cantidad cero se omiten. Lote atómico:
// si alguna línea falla, ninguna se aplica y el estado no cambia.
//
// Si el documento no está en READY (por ejemplo, otro caller ya lo validó)
// devuelve ErrDocumentNotValidatable; el bloqueo de la fila del documento
// garantiza que dos validaciones concurrentes nunca dupliquen el efecto.
func (e *Engine) ValidateReceipt(ctx context.Context, receiptID, actorID string) error {
	if receiptID == "" {
		return domain.ErrInvalidInput
	}
	return e.txRunner.Run(ctx, func(r TxRepos) error {
		rec, err := r.Receipts.GetForUpdate(receiptID)
		if err != nil {
			return err
		}
		if rec == nil {
			return domain.ErrNotFound
		}
		if rec.Status != entity.StatusReady {
			return domain.ErrDocumentNotValidatable
		}

		now := time.Now()
		reqs := make([]MovementRequest, 0, len(rec.Lines))
		for _, line := range rec.Lines {
			if line.QuantityReceived <= 0 {
				continue
			}
			reqs = append(reqs, MovementRequest{
				ProductID:      line.ProductID,
				LocationID:     rec.LocationID,
				Delta:          line.QuantityReceived,
				Type:           entity.MovementTypeReceipt,
				SourceDocument: rec.ReceiptNumber,
				ActorID:        actorID,
			})
		}
		if len(reqs) == 0 {
			return domain.ErrEmptyDocument
		}
		if _, err := applyMovements(r.Stock, r.Movements, reqs, now); err != nil {
			return err
		}

		next, err := rec.Status.Transition(entity.StatusDone)
		if err != nil {
			return err
		}
		return r.Receipts.UpdateStatus(rec.ID, next)
	})
}
