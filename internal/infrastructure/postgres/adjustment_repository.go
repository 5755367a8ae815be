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

var _ repository.AdjustmentRepository = (*AdjustmentRepo)(nil)

// AdjustmentRepo ajustes de inventario sobre PostgreSQL (usable con pool o tx).
type AdjustmentRepo struct {
	q Querier
}

func NewAdjustmentRepository(q Querier) *AdjustmentRepo {
	return &AdjustmentRepo{q: q}
}

// Create persiste el ajuste ya aplicado.
func (r *AdjustmentRepo) Create(adjustment *entity.Adjustment) error {
	query := `
		INSERT INTO adjustments (id, adjustment_number, product_id, location_id, quantity_before, quantity_counted, difference, reason, status, notes, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		adjustment.ID, adjustment.AdjustmentNumber, adjustment.ProductID, adjustment.LocationID,
		adjustment.QuantityBefore, adjustment.QuantityCounted, adjustment.Difference,
		adjustment.Reason, string(adjustment.Status), adjustment.Notes,
		adjustment.CreatedAt, adjustment.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert adjustment: %w", err)
	}
	return nil
}

const adjustmentSelect = `
	SELECT id, adjustment_number, product_id, location_id, quantity_before, quantity_counted, difference, reason, status, notes, created_at, created_by
	FROM adjustments`

// GetByID obtiene el ajuste; nil si no existe.
func (r *AdjustmentRepo) GetByID(id string) (*entity.Adjustment, error) {
	var a entity.Adjustment
	var status string
	err := r.q.QueryRow(context.Background(), adjustmentSelect+` WHERE id = $1`, id).Scan(
		&a.ID, &a.AdjustmentNumber, &a.ProductID, &a.LocationID, &a.QuantityBefore,
		&a.QuantityCounted, &a.Difference, &a.Reason, &status, &a.Notes,
		&a.CreatedAt, &a.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get adjustment: %w", err)
	}
	a.Status = entity.DocumentStatus(status)
	return &a, nil
}

// List lista ajustes, más recientes primero, opcionalmente por producto.
func (r *AdjustmentRepo) List(productID string, limit int) ([]*entity.Adjustment, error) {
	query := adjustmentSelect + ` WHERE 1=1`
	args := []any{}
	pos := 1
	if productID != "" {
		query += fmt.Sprintf(" AND product_id = $%d", pos)
		args = append(args, productID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", pos)
	args = append(args, limit)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list adjustments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Adjustment
	for rows.Next() {
		var a entity.Adjustment
		var st string
		if err := rows.Scan(&a.ID, &a.AdjustmentNumber, &a.ProductID, &a.LocationID,
			&a.QuantityBefore, &a.QuantityCounted, &a.Difference, &a.Reason, &st,
			&a.Notes, &a.CreatedAt, &a.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan adjustment: %w", err)
		}
		a.Status = entity.DocumentStatus(st)
		list = append(list, &a)
	}
	return list, rows.Err()
}
