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

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo traslados sobre PostgreSQL (usable con pool o tx).
type TransferRepo struct {
	q Querier
}

func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

// Create persiste el traslado ya ejecutado.
func (r *TransferRepo) Create(transfer *entity.Transfer) error {
	query := `
		INSERT INTO transfers (id, transfer_number, product_id, from_location_id, to_location_id, quantity, status, notes, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		transfer.ID, transfer.TransferNumber, transfer.ProductID, transfer.FromLocationID,
		transfer.ToLocationID, transfer.Quantity, string(transfer.Status), transfer.Notes,
		transfer.CreatedAt, transfer.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert transfer: %w", err)
	}
	return nil
}

const transferSelect = `
	SELECT id, transfer_number, product_id, from_location_id, to_location_id, quantity, status, notes, created_at, created_by
	FROM transfers`

// GetByID obtiene el traslado; nil si no existe.
func (r *TransferRepo) GetByID(id string) (*entity.Transfer, error) {
	var t entity.Transfer
	var status string
	err := r.q.QueryRow(context.Background(), transferSelect+` WHERE id = $1`, id).Scan(
		&t.ID, &t.TransferNumber, &t.ProductID, &t.FromLocationID, &t.ToLocationID,
		&t.Quantity, &status, &t.Notes, &t.CreatedAt, &t.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer: %w", err)
	}
	t.Status = entity.DocumentStatus(status)
	return &t, nil
}

// List lista traslados, más recientes primero.
func (r *TransferRepo) List(status entity.DocumentStatus, limit int) ([]*entity.Transfer, error) {
	query := transferSelect + ` WHERE 1=1`
	args := []any{}
	pos := 1
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, string(status))
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", pos)
	args = append(args, limit)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transfer
	for rows.Next() {
		var t entity.Transfer
		var st string
		if err := rows.Scan(&t.ID, &t.TransferNumber, &t.ProductID, &t.FromLocationID,
			&t.ToLocationID, &t.Quantity, &st, &t.Notes, &t.CreatedAt, &t.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		t.Status = entity.DocumentStatus(st)
		list = append(list, &t)
	}
	return list, rows.Err()
}
