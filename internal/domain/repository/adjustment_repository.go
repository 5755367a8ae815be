package repository

import "github.com/jhoicas/stockmaster-api/internal/domain/entity"

// AdjustmentRepository puerto de persistencia de ajustes.
type AdjustmentRepository interface {
	Create(adjustment *entity.Adjustment) error
	GetByID(id string) (*entity.Adjustment, error)
	List(productID string, limit int) ([]*entity.Adjustment, error)
}
