package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

// ValidateDelivery valida una entrega: por cada línea con cantidad entregada
// positiva aplica -quantity_delivered en la ubicación de la entrega y pasa el
// documento a DONE. Si alguna línea dejaría un saldo negativo, la entrega
// completa se rechaza con ErrInsufficientStock y ninguna línea surte efecto.
func (e *Engine) ValidateDelivery(ctx context.Context, deliveryID, actorID string) error {
	if deliveryID == "" {
		return domain.ErrInvalidInput
	}
	return e.txRunner.Run(ctx, func(r TxRepos) error {
		del, err := r.Deliveries.GetForUpdate(deliveryID)
		if err != nil {
			return err
		}
		if del == nil {
			return domain.ErrNotFound
		}
		if del.Status != entity.StatusReady {
			return domain.ErrDocumentNotValidatable
		}

		now := time.Now()
		reqs := make([]MovementRequest, 0, len(del.Lines))
		for _, line := range del.Lines {
			if line.QuantityDelivered <= 0 {
				continue
			}
			reqs = append(reqs, MovementRequest{
				ProductID:      line.ProductID,
				LocationID:     del.LocationID,
				Delta:          -line.QuantityDelivered,
				Type:           entity.MovementTypeDelivery,
				SourceDocument: del.DeliveryNumber,
				ActorID:        actorID,
			})
		}
		if len(reqs) == 0 {
			return domain.ErrEmptyDocument
		}
		if _, err := applyMovements(r.Stock, r.Movements, reqs, now); err != nil {
			return err
		}

		next, err := del.Status.Transition(entity.StatusDone)
		if err != nil {
			return err
		}
		return r.Deliveries.UpdateStatus(del.ID, next)
	})
}
