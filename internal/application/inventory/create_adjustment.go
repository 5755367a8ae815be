package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/pkg/docnumber"
)

// AdjustmentInput entrada para un ajuste por conteo físico.
type AdjustmentInput struct {
	ProductID       string
	LocationID      string
	QuantityCounted int64
	Reason          string
	ActorID         string
	Notes           string
}

// CreateAdjustment lee el saldo actual como quantity_before, calcula
// difference = quantity_counted - quantity_before y aplica esa diferencia al
// libro. Como quantity_counted >= 0, el saldo resultante es quantity_counted
// por construcción y el ajuste nunca puede fallar por stock insuficiente;
// solo se rechaza por entrada inválida (cantidad negativa o razón desconocida).
//
// Forma reducida del ciclo de vida: el ajuste nace y queda DONE en el mismo acto.
func (e *Engine) CreateAdjustment(ctx context.Context, in AdjustmentInput) (*entity.Adjustment, error) {
	if in.ProductID == "" || in.LocationID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.QuantityCounted < 0 || !entity.ValidAdjustReason(in.Reason) {
		return nil, domain.ErrInvalidAdjustment
	}
	if _, err := e.checkProduct(in.ProductID); err != nil {
		return nil, err
	}
	if _, err := e.checkLocation(in.LocationID); err != nil {
		return nil, err
	}

	now := time.Now()
	adjustment := &entity.Adjustment{
		ID:               uuid.New().String(),
		AdjustmentNumber: docnumber.New(docnumber.PrefixAdjustment, now),
		ProductID:        in.ProductID,
		LocationID:       in.LocationID,
		QuantityCounted:  in.QuantityCounted,
		Reason:           in.Reason,
		Status:           entity.StatusDone,
		Notes:            in.Notes,
		CreatedAt:        now,
		CreatedBy:        in.ActorID,
	}

	err := e.txRunner.Run(ctx, func(r TxRepos) error {
		// El saldo se lee con bloqueo para que quantity_before sea exacto
		// frente a validaciones concurrentes sobre la misma clave.
		balance, err := r.Stock.GetForUpdate(in.ProductID, in.LocationID)
		if err != nil {
			return err
		}
		adjustment.QuantityBefore = balance.Quantity
		adjustment.Difference = in.QuantityCounted - balance.Quantity

		if adjustment.Difference != 0 {
			reqs := []MovementRequest{{
				ProductID:      in.ProductID,
				LocationID:     in.LocationID,
				Delta:          adjustment.Difference,
				Type:           entity.MovementTypeAdjustment,
				SourceDocument: adjustment.AdjustmentNumber,
				ActorID:        in.ActorID,
			}}
			if _, err := applyMovements(r.Stock, r.Movements, reqs, now); err != nil {
				return err
			}
		}
		return r.Adjustments.Create(adjustment)
	})
	if err != nil {
		return nil, err
	}
	return adjustment, nil
}
