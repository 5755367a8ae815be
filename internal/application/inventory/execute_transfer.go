package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/pkg/docnumber"
)

// TransferInput entrada para crear y ejecutar un traslado.
type TransferInput struct {
	ProductID      string
	FromLocationID string
	ToLocationID   string
	Quantity       int64
	ActorID        string
	Notes          string
}

// ExecuteTransfer crea y ejecuta un traslado en una sola llamada atómica
// (a diferencia de recepciones y entregas, no hay estados intermedios).
// Genera dos movimientos enlazados con el mismo documento: TRANSFER_OUT en la
// ubicación origen y TRANSFER_IN en la destino. Si el débito dejaría el origen
// negativo, no se aplica ninguno de los dos y el traslado no se crea.
func (e *Engine) ExecuteTransfer(ctx context.Context, in TransferInput) (*entity.Transfer, error) {
	if in.ProductID == "" || in.FromLocationID == "" || in.ToLocationID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.FromLocationID == in.ToLocationID {
		return nil, domain.ErrInvalidTransfer
	}
	if _, err := e.checkProduct(in.ProductID); err != nil {
		return nil, err
	}
	if _, err := e.checkLocation(in.FromLocationID); err != nil {
		return nil, err
	}
	if _, err := e.checkLocation(in.ToLocationID); err != nil {
		return nil, err
	}

	now := time.Now()
	transfer := &entity.Transfer{
		ID:             uuid.New().String(),
		TransferNumber: docnumber.New(docnumber.PrefixTransfer, now),
		ProductID:      in.ProductID,
		FromLocationID: in.FromLocationID,
		ToLocationID:   in.ToLocationID,
		Quantity:       in.Quantity,
		Status:         entity.StatusDone,
		Notes:          in.Notes,
		CreatedAt:      now,
		CreatedBy:      in.ActorID,
	}

	err := e.txRunner.Run(ctx, func(r TxRepos) error {
		reqs := []MovementRequest{
			{
				ProductID:      in.ProductID,
				LocationID:     in.FromLocationID,
				Delta:          -in.Quantity,
				Type:           entity.MovementTypeTransferOut,
				SourceDocument: transfer.TransferNumber,
				ActorID:        in.ActorID,
			},
			{
				ProductID:      in.ProductID,
				LocationID:     in.ToLocationID,
				Delta:          in.Quantity,
				Type:           entity.MovementTypeTransferIn,
				SourceDocument: transfer.TransferNumber,
				ActorID:        in.ActorID,
			},
		}
		if _, err := applyMovements(r.Stock, r.Movements, reqs, now); err != nil {
			return err
		}
		return r.Transfers.Create(transfer)
	})
	if err != nil {
		return nil, err
	}
	return transfer, nil
}
