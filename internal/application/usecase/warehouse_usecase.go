package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// WarehouseUseCase casos de uso de bodegas y ubicaciones.
type WarehouseUseCase struct {
	warehouseRepo repository.WarehouseRepository
	locationRepo  repository.LocationRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(warehouseRepo repository.WarehouseRepository, locationRepo repository.LocationRepository) *WarehouseUseCase {
	return &WarehouseUseCase{warehouseRepo: warehouseRepo, locationRepo: locationRepo}
}

// Create persiste una bodega nueva.
func (uc *WarehouseUseCase) Create(in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	w := &entity.Warehouse{
		ID:        uuid.New().String(),
		Code:      in.Code,
		Name:      in.Name,
		Address:   in.Address,
		CreatedAt: time.Now(),
	}
	if err := uc.warehouseRepo.Create(w); err != nil {
		return nil, err
	}
	return toWarehouseResponse(w, nil), nil
}

// List lista todas las bodegas.
func (uc *WarehouseUseCase) List() ([]*dto.WarehouseResponse, error) {
	ws, err := uc.warehouseRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.WarehouseResponse, 0, len(ws))
	for _, w := range ws {
		out = append(out, toWarehouseResponse(w, nil))
	}
	return out, nil
}

// GetByID devuelve la bodega con sus ubicaciones; nil si no existe.
func (uc *WarehouseUseCase) GetByID(id string) (*dto.WarehouseResponse, error) {
	w, err := uc.warehouseRepo.GetByID(id)
	if err != nil || w == nil {
		return nil, err
	}
	locations, err := uc.locationRepo.ListByWarehouse(id)
	if err != nil {
		return nil, err
	}
	return toWarehouseResponse(w, locations), nil
}

// CreateLocation persiste una ubicación dentro de una bodega existente.
func (uc *WarehouseUseCase) CreateLocation(in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	if in.WarehouseID == "" || in.Code == "" {
		return nil, domain.ErrInvalidInput
	}
	w, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.ErrNotFound
	}
	l := &entity.Location{
		ID:          uuid.New().String(),
		WarehouseID: in.WarehouseID,
		Code:        in.Code,
		Name:        in.Name,
		CreatedAt:   time.Now(),
	}
	if err := uc.locationRepo.Create(l); err != nil {
		return nil, err
	}
	return toLocationResponse(l), nil
}

func toWarehouseResponse(w *entity.Warehouse, locations []*entity.Location) *dto.WarehouseResponse {
	out := &dto.WarehouseResponse{
		ID:      w.ID,
		Code:    w.Code,
		Name:    w.Name,
		Address: w.Address,
	}
	for _, l := range locations {
		out.Locations = append(out.Locations, *toLocationResponse(l))
	}
	return out
}

func toLocationResponse(l *entity.Location) *dto.LocationResponse {
	return &dto.LocationResponse{
		ID:          l.ID,
		WarehouseID: l.WarehouseID,
		Code:        l.Code,
		Name:        l.Name,
	}
}
