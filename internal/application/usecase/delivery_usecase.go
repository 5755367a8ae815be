package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
	"github.com/jhoicas/stockmaster-api/pkg/docnumber"
)

// DeliveryUseCase CRUD de entregas previo a la validación.
type DeliveryUseCase struct {
	deliveryRepo repository.DeliveryRepository
}

// NewDeliveryUseCase construye el caso de uso.
func NewDeliveryUseCase(deliveryRepo repository.DeliveryRepository) *DeliveryUseCase {
	return &DeliveryUseCase{deliveryRepo: deliveryRepo}
}

// Create crea una entrega en DRAFT con su número y líneas opcionales.
func (uc *DeliveryUseCase) Create(userID string, in dto.CreateDeliveryRequest) (*dto.DeliveryResponse, error) {
	if in.CustomerName == "" || in.WarehouseID == "" || in.LocationID == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	delivery := &entity.Delivery{
		ID:             uuid.New().String(),
		DeliveryNumber: docnumber.New(docnumber.PrefixDelivery, now),
		CustomerName:   in.CustomerName,
		WarehouseID:    in.WarehouseID,
		LocationID:     in.LocationID,
		Status:         entity.StatusDraft,
		ScheduledDate:  in.ScheduledDate,
		Notes:          in.Notes,
		CreatedAt:      now,
		CreatedBy:      userID,
	}
	for _, l := range in.Lines {
		if l.ProductID == "" || l.QuantityOrdered <= 0 {
			return nil, domain.ErrInvalidInput
		}
		delivery.Lines = append(delivery.Lines, entity.DeliveryLine{
			ID:              uuid.New().String(),
			DeliveryID:      delivery.ID,
			ProductID:       l.ProductID,
			QuantityOrdered: l.QuantityOrdered,
		})
	}
	if err := uc.deliveryRepo.Create(delivery); err != nil {
		return nil, err
	}
	return toDeliveryResponse(delivery), nil
}

// GetByID devuelve la entrega con líneas; nil si no existe.
func (uc *DeliveryUseCase) GetByID(id string) (*dto.DeliveryResponse, error) {
	del, err := uc.deliveryRepo.GetByID(id)
	if err != nil || del == nil {
		return nil, err
	}
	return toDeliveryResponse(del), nil
}

// List lista entregas con filtros opcionales de estado y bodega.
func (uc *DeliveryUseCase) List(status, warehouseID string, limit int) ([]*dto.DeliveryResponse, error) {
	st := entity.DocumentStatus(status)
	if status != "" && !st.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	dels, err := uc.deliveryRepo.List(st, warehouseID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DeliveryResponse, 0, len(dels))
	for _, d := range dels {
		out = append(out, toDeliveryResponse(d))
	}
	return out, nil
}

// AddLine agrega una línea; solo mientras el documento lo admite.
func (uc *DeliveryUseCase) AddLine(deliveryID string, in dto.DeliveryLineRequest) error {
	if in.ProductID == "" || in.QuantityOrdered <= 0 {
		return domain.ErrInvalidInput
	}
	del, err := uc.deliveryRepo.GetByID(deliveryID)
	if err != nil {
		return err
	}
	if del == nil {
		return domain.ErrNotFound
	}
	if !del.Status.AllowsLineEdits() {
		return domain.ErrInvalidStatusTransition
	}
	return uc.deliveryRepo.AddLine(&entity.DeliveryLine{
		ID:              uuid.New().String(),
		DeliveryID:      deliveryID,
		ProductID:       in.ProductID,
		QuantityOrdered: in.QuantityOrdered,
	})
}

// SetStatus cambia el estado manualmente; DONE está reservado al motor.
func (uc *DeliveryUseCase) SetStatus(deliveryID, status string) error {
	target := entity.DocumentStatus(status)
	if !target.Valid() || target == entity.StatusDone {
		return domain.ErrInvalidStatusTransition
	}
	del, err := uc.deliveryRepo.GetByID(deliveryID)
	if err != nil {
		return err
	}
	if del == nil {
		return domain.ErrNotFound
	}
	next, err := del.Status.Transition(target)
	if err != nil {
		return err
	}
	return uc.deliveryRepo.UpdateStatus(deliveryID, next)
}

// SetLineDelivered fija la cantidad entregada de una línea antes de validar.
func (uc *DeliveryUseCase) SetLineDelivered(deliveryID, lineID string, quantity int64) error {
	if quantity < 0 {
		return domain.ErrInvalidInput
	}
	del, err := uc.deliveryRepo.GetByID(deliveryID)
	if err != nil {
		return err
	}
	if del == nil {
		return domain.ErrNotFound
	}
	if !del.Status.AllowsQuantityEdits() {
		return domain.ErrInvalidStatusTransition
	}
	found := false
	for _, l := range del.Lines {
		if l.ID == lineID {
			found = true
			break
		}
	}
	if !found {
		return domain.ErrNotFound
	}
	return uc.deliveryRepo.UpdateLineDelivered(lineID, quantity)
}

func toDeliveryResponse(d *entity.Delivery) *dto.DeliveryResponse {
	out := &dto.DeliveryResponse{
		ID:             d.ID,
		DeliveryNumber: d.DeliveryNumber,
		CustomerName:   d.CustomerName,
		WarehouseID:    d.WarehouseID,
		LocationID:     d.LocationID,
		Status:         string(d.Status),
		ScheduledDate:  d.ScheduledDate,
		Notes:          d.Notes,
		CreatedAt:      d.CreatedAt,
	}
	for _, l := range d.Lines {
		out.Lines = append(out.Lines, dto.DeliveryLineResponse{
			ID:                l.ID,
			ProductID:         l.ProductID,
			QuantityOrdered:   l.QuantityOrdered,
			QuantityDelivered: l.QuantityDelivered,
		})
	}
	return out
}
