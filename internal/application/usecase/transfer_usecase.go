package usecase

import (
	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// TransferQueryUseCase lecturas de traslados ejecutados.
// La creación pasa por el motor (Engine.ExecuteTransfer), nunca por aquí.
type TransferQueryUseCase struct {
	transferRepo repository.TransferRepository
}

// NewTransferQueryUseCase construye el caso de uso.
func NewTransferQueryUseCase(transferRepo repository.TransferRepository) *TransferQueryUseCase {
	return &TransferQueryUseCase{transferRepo: transferRepo}
}

// GetByID devuelve un traslado; nil si no existe.
func (uc *TransferQueryUseCase) GetByID(id string) (*dto.TransferResponse, error) {
	t, err := uc.transferRepo.GetByID(id)
	if err != nil || t == nil {
		return nil, err
	}
	return ToTransferResponse(t), nil
}

// List lista traslados con filtro opcional de estado.
func (uc *TransferQueryUseCase) List(status string, limit int) ([]*dto.TransferResponse, error) {
	st := entity.DocumentStatus(status)
	if status != "" && !st.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	ts, err := uc.transferRepo.List(st, limit)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TransferResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, ToTransferResponse(t))
	}
	return out, nil
}

// ToTransferResponse mapea la entidad al DTO público.
func ToTransferResponse(t *entity.Transfer) *dto.TransferResponse {
	return &dto.TransferResponse{
		ID:             t.ID,
		TransferNumber: t.TransferNumber,
		ProductID:      t.ProductID,
		FromLocationID: t.FromLocationID,
		ToLocationID:   t.ToLocationID,
		Quantity:       t.Quantity,
		Status:         string(t.Status),
		Notes:          t.Notes,
		CreatedAt:      t.CreatedAt,
	}
}
