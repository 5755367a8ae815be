package repository

import "github.com/jhoicas/stockmaster-api/internal/domain/entity"

// ReceiptRepository puerto de persistencia de recepciones y sus líneas.
type ReceiptRepository interface {
	Create(receipt *entity.Receipt) error
	// GetByID devuelve la recepción con sus líneas; nil si no existe.
	GetByID(id string) (*entity.Receipt, error)
	// GetForUpdate bloquea la fila del documento (SELECT ... FOR UPDATE) y la
	// devuelve con sus líneas. Serializa validaciones sobre el mismo documento.
	GetForUpdate(id string) (*entity.Receipt, error)
	List(status entity.DocumentStatus, warehouseID string, limit int) ([]*entity.Receipt, error)
	AddLine(line *entity.ReceiptLine) error
	UpdateLineReceived(lineID string, quantityReceived int64) error
	UpdateStatus(id string, status entity.DocumentStatus) error
}
