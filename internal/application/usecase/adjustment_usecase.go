package usecase

import (
	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// AdjustmentQueryUseCase lecturas de ajustes aplicados.
// La creación pasa por el motor (Engine.CreateAdjustment), nunca por aquí.
type AdjustmentQueryUseCase struct {
	adjustmentRepo repository.AdjustmentRepository
}

// NewAdjustmentQueryUseCase construye el caso de uso.
func NewAdjustmentQueryUseCase(adjustmentRepo repository.AdjustmentRepository) *AdjustmentQueryUseCase {
	return &AdjustmentQueryUseCase{adjustmentRepo: adjustmentRepo}
}

// GetByID devuelve un ajuste; nil si no existe.
func (uc *AdjustmentQueryUseCase) GetByID(id string) (*dto.AdjustmentResponse, error) {
	a, err := uc.adjustmentRepo.GetByID(id)
	if err != nil || a == nil {
		return nil, err
	}
	return ToAdjustmentResponse(a), nil
}

// List lista ajustes con filtro opcional de producto.
func (uc *AdjustmentQueryUseCase) List(productID string, limit int) ([]*dto.AdjustmentResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	as, err := uc.adjustmentRepo.List(productID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AdjustmentResponse, 0, len(as))
	for _, a := range as {
		out = append(out, ToAdjustmentResponse(a))
	}
	return out, nil
}

// ToAdjustmentResponse mapea la entidad al DTO público.
func ToAdjustmentResponse(a *entity.Adjustment) *dto.AdjustmentResponse {
	return &dto.AdjustmentResponse{
		ID:               a.ID,
		AdjustmentNumber: a.AdjustmentNumber,
		ProductID:        a.ProductID,
		LocationID:       a.LocationID,
		QuantityBefore:   a.QuantityBefore,
		QuantityCounted:  a.QuantityCounted,
		Difference:       a.Difference,
		Reason:           a.Reason,
		Status:           string(a.Status),
		Notes:            a.Notes,
		CreatedAt:        a.CreatedAt,
	}
}
