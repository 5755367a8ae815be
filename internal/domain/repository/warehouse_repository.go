package repository

import "github.com/jhoicas/stockmaster-api/internal/domain/entity"

// WarehouseRepository puerto de persistencia de bodegas.
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	List() ([]*entity.Warehouse, error)
}

// LocationRepository puerto de persistencia de ubicaciones.
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id string) (*entity.Location, error)
	ListByWarehouse(warehouseID string) ([]*entity.Location, error)
}
