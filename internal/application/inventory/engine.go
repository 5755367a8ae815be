package inventory

import (
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// Engine motor de validación de documentos de inventario.
// Es el único punto que convierte líneas de documentos en efectos sobre el
// libro de movimientos y pasa documentos a DONE. Cada operación corre dentro
// de una transacción (TxRunner) con bloqueo de fila (SELECT FOR UPDATE):
// toda falla deja el documento en su estado previo y los saldos intactos.
type Engine struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
}

// NewEngine construye el motor.
func NewEngine(txRunner TxRunner, productRepo repository.ProductRepository, locationRepo repository.LocationRepository) *Engine {
	return &Engine{txRunner: txRunner, productRepo: productRepo, locationRepo: locationRepo}
}

// checkProduct verifica que el producto exista y esté activo.
func (e *Engine) checkProduct(productID string) (*entity.Product, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	p, err := e.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if p == nil || !p.Active {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// checkLocation verifica que la ubicación exista.
func (e *Engine) checkLocation(locationID string) (*entity.Location, error) {
	if locationID == "" {
		return nil, domain.ErrInvalidInput
	}
	l, err := e.locationRepo.GetByID(locationID)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrNotFound
	}
	return l, nil
}
