package repository

import "github.com/jhoicas/stockmaster-api/internal/domain/entity"

// TransferRepository puerto de persistencia de traslados.
type TransferRepository interface {
	Create(transfer *entity.Transfer) error
	GetByID(id string) (*entity.Transfer, error)
	List(status entity.DocumentStatus, limit int) ([]*entity.Transfer, error)
}
