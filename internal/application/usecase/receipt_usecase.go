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

// ReceiptUseCase CRUD de recepciones previo a la validación.
// La mutación de stock nunca pasa por aquí: eso es exclusivo del motor.
type ReceiptUseCase struct {
	receiptRepo repository.ReceiptRepository
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(receiptRepo repository.ReceiptRepository) *ReceiptUseCase {
	return &ReceiptUseCase{receiptRepo: receiptRepo}
}

// Create crea una recepción en DRAFT con su número y líneas opcionales.
func (uc *ReceiptUseCase) Create(userID string, in dto.CreateReceiptRequest) (*dto.ReceiptResponse, error) {
	if in.SupplierName == "" || in.WarehouseID == "" || in.LocationID == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	receipt := &entity.Receipt{
		ID:            uuid.New().String(),
		ReceiptNumber: docnumber.New(docnumber.PrefixReceipt, now),
		SupplierName:  in.SupplierName,
		WarehouseID:   in.WarehouseID,
		LocationID:    in.LocationID,
		Status:        entity.StatusDraft,
		ScheduledDate: in.ScheduledDate,
		Notes:         in.Notes,
		CreatedAt:     now,
		CreatedBy:     userID,
	}
	for _, l := range in.Lines {
		if l.ProductID == "" || l.QuantityExpected <= 0 {
			return nil, domain.ErrInvalidInput
		}
		receipt.Lines = append(receipt.Lines, entity.ReceiptLine{
			ID:               uuid.New().String(),
			ReceiptID:        receipt.ID,
			ProductID:        l.ProductID,
			QuantityExpected: l.QuantityExpected,
		})
	}
	if err := uc.receiptRepo.Create(receipt); err != nil {
		return nil, err
	}
	return toReceiptResponse(receipt), nil
}

// GetByID devuelve la recepción con líneas; nil si no existe.
func (uc *ReceiptUseCase) GetByID(id string) (*dto.ReceiptResponse, error) {
	rec, err := uc.receiptRepo.GetByID(id)
	if err != nil || rec == nil {
		return nil, err
	}
	return toReceiptResponse(rec), nil
}

// List lista recepciones con filtros opcionales de estado y bodega.
func (uc *ReceiptUseCase) List(status, warehouseID string, limit int) ([]*dto.ReceiptResponse, error) {
	st := entity.DocumentStatus(status)
	if status != "" && !st.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	recs, err := uc.receiptRepo.List(st, warehouseID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ReceiptResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, toReceiptResponse(r))
	}
	return out, nil
}

// AddLine agrega una línea; solo se permite mientras el documento lo admite.
func (uc *ReceiptUseCase) AddLine(receiptID string, in dto.ReceiptLineRequest) error {
	if in.ProductID == "" || in.QuantityExpected <= 0 {
		return domain.ErrInvalidInput
	}
	rec, err := uc.receiptRepo.GetByID(receiptID)
	if err != nil {
		return err
	}
	if rec == nil {
		return domain.ErrNotFound
	}
	if !rec.Status.AllowsLineEdits() {
		return domain.ErrInvalidStatusTransition
	}
	return uc.receiptRepo.AddLine(&entity.ReceiptLine{
		ID:               uuid.New().String(),
		ReceiptID:        receiptID,
		ProductID:        in.ProductID,
		QuantityExpected: in.QuantityExpected,
	})
}

// SetStatus cambia el estado manualmente. DONE está reservado al motor de
// validación: pedirlo aquí es una transición ilegal.
func (uc *ReceiptUseCase) SetStatus(receiptID, status string) error {
	target := entity.DocumentStatus(status)
	if !target.Valid() || target == entity.StatusDone {
		return domain.ErrInvalidStatusTransition
	}
	rec, err := uc.receiptRepo.GetByID(receiptID)
	if err != nil {
		return err
	}
	if rec == nil {
		return domain.ErrNotFound
	}
	next, err := rec.Status.Transition(target)
	if err != nil {
		return err
	}
	return uc.receiptRepo.UpdateStatus(receiptID, next)
}

// SetLineReceived fija la cantidad recibida de una línea antes de validar.
func (uc *ReceiptUseCase) SetLineReceived(receiptID, lineID string, quantity int64) error {
	if quantity < 0 {
		return domain.ErrInvalidInput
	}
	rec, err := uc.receiptRepo.GetByID(receiptID)
	if err != nil {
		return err
	}
	if rec == nil {
		return domain.ErrNotFound
	}
	if !rec.Status.AllowsQuantityEdits() {
		return domain.ErrInvalidStatusTransition
	}
	found := false
	for _, l := range rec.Lines {
		if l.ID == lineID {
			found = true
			break
		}
	}
	if !found {
		return domain.ErrNotFound
	}
	return uc.receiptRepo.UpdateLineReceived(lineID, quantity)
}

func toReceiptResponse(r *entity.Receipt) *dto.ReceiptResponse {
	out := &dto.ReceiptResponse{
		ID:            r.ID,
		ReceiptNumber: r.ReceiptNumber,
		SupplierName:  r.SupplierName,
		WarehouseID:   r.WarehouseID,
		LocationID:    r.LocationID,
		Status:        string(r.Status),
		ScheduledDate: r.ScheduledDate,
		Notes:         r.Notes,
		CreatedAt:     r.CreatedAt,
	}
	for _, l := range r.Lines {
		out.Lines = append(out.Lines, dto.ReceiptLineResponse{
			ID:               l.ID,
			ProductID:        l.ProductID,
			QuantityExpected: l.QuantityExpected,
			QuantityReceived: l.QuantityReceived,
		})
	}
	return out
}
