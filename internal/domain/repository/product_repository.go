package repository

import "github.com/jhoicas/stockmaster-api/internal/domain/entity"

// ProductRepository puerto de persistencia de productos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	List(categoryID, search string, limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
	// ListLowStock devuelve productos activos cuyo stock total es <= su nivel
	// de reposición (lectura sin bloqueo, puede ser ligeramente obsoleta).
	ListLowStock(limit int) ([]*entity.Product, error)
}

// CategoryRepository puerto de persistencia de categorías.
type CategoryRepository interface {
	Create(category *entity.Category) error
	List() ([]*entity.Category, error)
}
