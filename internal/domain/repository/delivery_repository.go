package repository

import "github.com/jhoicas/stockmaster-api/internal/domain/entity"

// DeliveryRepository puerto de persistencia de entregas y sus líneas.
type DeliveryRepository interface {
	Create(delivery *entity.Delivery) error
	GetByID(id string) (*entity.Delivery, error)
	// GetForUpdate bloquea la fila del documento para validación.
	GetForUpdate(id string) (*entity.Delivery, error)
	List(status entity.DocumentStatus, warehouseID string, limit int) ([]*entity.Delivery, error)
	AddLine(line *entity.DeliveryLine) error
	UpdateLineDelivered(lineID string, quantityDelivered int64) error
	UpdateStatus(id string, status entity.DocumentStatus) error
}
