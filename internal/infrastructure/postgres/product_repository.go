package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo catálogo de productos sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste el producto. SKU duplicado devuelve ErrDuplicate.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, sku, name, description, category_id, unit_of_measure, price, cost, reorder_level, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.SKU, product.Name, product.Description, nullIfEmpty(product.CategoryID),
		product.UnitOfMeasure, product.Price, product.Cost, product.ReorderLevel,
		product.Active, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

const productSelect = `
	SELECT id, sku, name, description, COALESCE(category_id, ''), unit_of_measure, price, cost, reorder_level, active, created_at, updated_at
	FROM products`

// GetByID obtiene el producto; nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.getBy(productSelect+` WHERE id = $1`, id)
}

// GetBySKU obtiene el producto por SKU; nil si no existe.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	return r.getBy(productSelect+` WHERE sku = $1`, sku)
}

func (r *ProductRepo) getBy(query string, arg any) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.SKU, &p.Name, &p.Description, &p.CategoryID, &p.UnitOfMeasure,
		&p.Price, &p.Cost, &p.ReorderLevel, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List lista productos con filtros opcionales por categoría y búsqueda
// en nombre o SKU.
func (r *ProductRepo) List(categoryID, search string, limit, offset int) ([]*entity.Product, error) {
	query := productSelect + ` WHERE 1=1`
	args := []any{}
	pos := 1
	if categoryID != "" {
		query += fmt.Sprintf(" AND category_id = $%d", pos)
		args = append(args, categoryID)
		pos++
	}
	if search != "" {
		query += fmt.Sprintf(" AND (name ILIKE $%d OR sku ILIKE $%d)", pos, pos)
		args = append(args, "%"+search+"%")
		pos++
	}
	query += fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)
	return r.scanList(query, args)
}

// Update actualiza los campos mutables del producto. El SKU no se toca.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $1, description = $2, category_id = $3, unit_of_measure = $4,
		    price = $5, cost = $6, reorder_level = $7, active = $8, updated_at = $9
		WHERE id = $10`
	tag, err := r.q.Exec(context.Background(), query,
		product.Name, product.Description, nullIfEmpty(product.CategoryID), product.UnitOfMeasure,
		product.Price, product.Cost, product.ReorderLevel, product.Active, product.UpdatedAt,
		product.ID,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListLowStock productos activos cuyo stock total agregado queda en o por
// debajo de su nivel de reposición. Productos sin saldo cuentan como cero.
func (r *ProductRepo) ListLowStock(limit int) ([]*entity.Product, error) {
	query := `
		SELECT p.id, p.sku, p.name, p.description, COALESCE(p.category_id, ''), p.unit_of_measure,
		       p.price, p.cost, p.reorder_level, p.active, p.created_at, p.updated_at
		FROM products p
		LEFT JOIN (
			SELECT product_id, SUM(quantity) AS total
			FROM stock_balances
			GROUP BY product_id
		) s ON s.product_id = p.id
		WHERE p.active AND COALESCE(s.total, 0) <= p.reorder_level
		ORDER BY COALESCE(s.total, 0) - p.reorder_level
		LIMIT $1`
	return r.scanList(query, []any{limit})
}

func (r *ProductRepo) scanList(query string, args []any) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &p.Description, &p.CategoryID,
			&p.UnitOfMeasure, &p.Price, &p.Cost, &p.ReorderLevel, &p.Active,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo categorías sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `INSERT INTO categories (id, name, created_at) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, category.ID, category.Name, category.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (r *CategoryRepo) List() ([]*entity.Category, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, name, created_at FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
