package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ProductUseCase casos de uso de catálogo de productos.
type ProductUseCase struct {
	productRepo repository.ProductRepository
	stockRepo   repository.StockBalanceRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, stockRepo repository.StockBalanceRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, stockRepo: stockRepo}
}

// Create persiste un producto nuevo. El SKU debe ser único.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Name == "" || in.UnitOfMeasure == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.ReorderLevel < 0 || in.Price.LessThan(decimal.Zero) || in.Cost.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.productRepo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	p := &entity.Product{
		ID:            uuid.New().String(),
		SKU:           in.SKU,
		Name:          in.Name,
		Description:   in.Description,
		CategoryID:    in.CategoryID,
		UnitOfMeasure: in.UnitOfMeasure,
		Price:         in.Price,
		Cost:          in.Cost,
		ReorderLevel:  in.ReorderLevel,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.productRepo.Create(p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// Update edita un producto. El SKU es inmutable; los productos nunca se
// eliminan, solo se desactivan con Active=false.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		p.Name = in.Name
	}
	if in.Description != "" {
		p.Description = in.Description
	}
	if in.CategoryID != "" {
		p.CategoryID = in.CategoryID
	}
	if in.UnitOfMeasure != "" {
		p.UnitOfMeasure = in.UnitOfMeasure
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		p.Price = *in.Price
	}
	if in.Cost != nil {
		if in.Cost.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		p.Cost = *in.Cost
	}
	if in.ReorderLevel != nil {
		if *in.ReorderLevel < 0 {
			return nil, domain.ErrInvalidInput
		}
		p.ReorderLevel = *in.ReorderLevel
	}
	if in.Active != nil {
		p.Active = *in.Active
	}
	p.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// List lista productos con filtros de categoría y búsqueda por nombre/SKU.
func (uc *ProductUseCase) List(categoryID, search string, page dto.PageRequest) ([]*dto.ProductResponse, error) {
	page.DefaultPage()
	products, err := uc.productRepo.List(categoryID, search, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// GetDetail devuelve el producto con su stock por ubicación.
func (uc *ProductUseCase) GetDetail(id string) (*dto.ProductDetailResponse, error) {
	p, err := uc.productRepo.GetByID(id)
	if err != nil || p == nil {
		return nil, err
	}
	balances, err := uc.stockRepo.ListByProduct(id)
	if err != nil {
		return nil, err
	}
	detail := &dto.ProductDetailResponse{Product: *toProductResponse(p)}
	for _, b := range balances {
		detail.StockByLocation = append(detail.StockByLocation, dto.LocationBalanceDTO{
			LocationID: b.LocationID,
			Quantity:   b.Quantity,
		})
		detail.TotalStock += b.Quantity
	}
	return detail, nil
}

// ListLowStock productos activos con stock total <= nivel de reposición.
func (uc *ProductUseCase) ListLowStock(limit int) ([]*dto.ProductResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	products, err := uc.productRepo.ListLowStock(limit)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:            p.ID,
		SKU:           p.SKU,
		Name:          p.Name,
		Description:   p.Description,
		CategoryID:    p.CategoryID,
		UnitOfMeasure: p.UnitOfMeasure,
		Price:         p.Price,
		Cost:          p.Cost,
		ReorderLevel:  p.ReorderLevel,
		Active:        p.Active,
		CreatedAt:     p.CreatedAt,
	}
}
