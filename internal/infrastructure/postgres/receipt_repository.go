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

var _ repository.ReceiptRepository = (*ReceiptRepo)(nil)

// ReceiptRepo recepciones y sus líneas sobre PostgreSQL (usable con pool o tx).
type ReceiptRepo struct {
	q Querier
}

// NewReceiptRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReceiptRepository(q Querier) *ReceiptRepo {
	return &ReceiptRepo{q: q}
}

// Create persiste la recepción y sus líneas.
func (r *ReceiptRepo) Create(receipt *entity.Receipt) error {
	query := `
		INSERT INTO receipts (id, receipt_number, supplier_name, warehouse_id, location_id, status, scheduled_date, notes, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		receipt.ID, receipt.ReceiptNumber, receipt.SupplierName, receipt.WarehouseID,
		receipt.LocationID, string(receipt.Status), receipt.ScheduledDate, receipt.Notes,
		receipt.CreatedAt, receipt.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert receipt: %w", err)
	}
	for i := range receipt.Lines {
		if err := r.AddLine(&receipt.Lines[i]); err != nil {
			return err
		}
	}
	return nil
}

const receiptSelect = `
	SELECT id, receipt_number, supplier_name, warehouse_id, location_id, status, scheduled_date, notes, created_at, created_by
	FROM receipts`

// GetByID obtiene la recepción con sus líneas; nil si no existe.
func (r *ReceiptRepo) GetByID(id string) (*entity.Receipt, error) {
	return r.get(id, false)
}

// GetForUpdate bloquea la fila del documento y la devuelve con sus líneas.
// Es el candado que serializa validaciones concurrentes del mismo documento.
func (r *ReceiptRepo) GetForUpdate(id string) (*entity.Receipt, error) {
	return r.get(id, true)
}

func (r *ReceiptRepo) get(id string, forUpdate bool) (*entity.Receipt, error) {
	query := receiptSelect + ` WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var rec entity.Receipt
	var status string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rec.ID, &rec.ReceiptNumber, &rec.SupplierName, &rec.WarehouseID, &rec.LocationID,
		&status, &rec.ScheduledDate, &rec.Notes, &rec.CreatedAt, &rec.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get receipt: %w", err)
	}
	rec.Status = entity.DocumentStatus(status)
	lines, err := r.lines(id)
	if err != nil {
		return nil, err
	}
	rec.Lines = lines
	return &rec, nil
}

func (r *ReceiptRepo) lines(receiptID string) ([]entity.ReceiptLine, error) {
	query := `
		SELECT id, receipt_id, product_id, quantity_expected, quantity_received
		FROM receipt_lines WHERE receipt_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, receiptID)
	if err != nil {
		return nil, fmt.Errorf("list receipt lines: %w", err)
	}
	defer rows.Close()
	var lines []entity.ReceiptLine
	for rows.Next() {
		var l entity.ReceiptLine
		if err := rows.Scan(&l.ID, &l.ReceiptID, &l.ProductID, &l.QuantityExpected, &l.QuantityReceived); err != nil {
			return nil, fmt.Errorf("scan receipt line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// List lista recepciones (sin líneas) con filtros opcionales.
func (r *ReceiptRepo) List(status entity.DocumentStatus, warehouseID string, limit int) ([]*entity.Receipt, error) {
	query := receiptSelect + ` WHERE 1=1`
	args := []any{}
	pos := 1
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, string(status))
		pos++
	}
	if warehouseID != "" {
		query += fmt.Sprintf(" AND warehouse_id = $%d", pos)
		args = append(args, warehouseID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", pos)
	args = append(args, limit)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Receipt
	for rows.Next() {
		var rec entity.Receipt
		var st string
		if err := rows.Scan(&rec.ID, &rec.ReceiptNumber, &rec.SupplierName, &rec.WarehouseID,
			&rec.LocationID, &st, &rec.ScheduledDate, &rec.Notes, &rec.CreatedAt, &rec.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan receipt: %w", err)
		}
		rec.Status = entity.DocumentStatus(st)
		list = append(list, &rec)
	}
	return list, rows.Err()
}

// AddLine persiste una línea de recepción.
func (r *ReceiptRepo) AddLine(line *entity.ReceiptLine) error {
	query := `
		INSERT INTO receipt_lines (id, receipt_id, product_id, quantity_expected, quantity_received)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.ReceiptID, line.ProductID, line.QuantityExpected, line.QuantityReceived,
	)
	if err != nil {
		return fmt.Errorf("insert receipt line: %w", err)
	}
	return nil
}

// UpdateLineReceived fija la cantidad recibida de una línea.
func (r *ReceiptRepo) UpdateLineReceived(lineID string, quantityReceived int64) error {
	query := `UPDATE receipt_lines SET quantity_received = $1 WHERE id = $2`
	tag, err := r.q.Exec(context.Background(), query, quantityReceived, lineID)
	if err != nil {
		return fmt.Errorf("update receipt line: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatus cambia el estado del documento.
func (r *ReceiptRepo) UpdateStatus(id string, status entity.DocumentStatus) error {
	query := `UPDATE receipts SET status = $1 WHERE id = $2`
	tag, err := r.q.Exec(context.Background(), query, string(status), id)
	if err != nil {
		return fmt.Errorf("update receipt status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
