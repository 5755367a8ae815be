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

var _ repository.DeliveryRepository = (*DeliveryRepo)(nil)

// DeliveryRepo entregas y sus líneas sobre PostgreSQL (usable con pool o tx).
type DeliveryRepo struct {
	q Querier
}

// NewDeliveryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDeliveryRepository(q Querier) *DeliveryRepo {
	return &DeliveryRepo{q: q}
}

// Create persiste la entrega y sus líneas.
func (r *DeliveryRepo) Create(delivery *entity.Delivery) error {
	query := `
		INSERT INTO deliveries (id, delivery_number, customer_name, warehouse_id, location_id, status, scheduled_date, notes, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		delivery.ID, delivery.DeliveryNumber, delivery.CustomerName, delivery.WarehouseID,
		delivery.LocationID, string(delivery.Status), delivery.ScheduledDate, delivery.Notes,
		delivery.CreatedAt, delivery.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert delivery: %w", err)
	}
	for i := range delivery.Lines {
		if err := r.AddLine(&delivery.Lines[i]); err != nil {
			return err
		}
	}
	return nil
}

const deliverySelect = `
	SELECT id, delivery_number, customer_name, warehouse_id, location_id, status, scheduled_date, notes, created_at, created_by
	FROM deliveries`

// GetByID obtiene la entrega con sus líneas; nil si no existe.
func (r *DeliveryRepo) GetByID(id string) (*entity.Delivery, error) {
	return r.get(id, false)
}

// GetForUpdate bloquea la fila del documento y la devuelve con sus líneas.
func (r *DeliveryRepo) GetForUpdate(id string) (*entity.Delivery, error) {
	return r.get(id, true)
}

func (r *DeliveryRepo) get(id string, forUpdate bool) (*entity.Delivery, error) {
	query := deliverySelect + ` WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var del entity.Delivery
	var status string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&del.ID, &del.DeliveryNumber, &del.CustomerName, &del.WarehouseID, &del.LocationID,
		&status, &del.ScheduledDate, &del.Notes, &del.CreatedAt, &del.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery: %w", err)
	}
	del.Status = entity.DocumentStatus(status)
	lines, err := r.lines(id)
	if err != nil {
		return nil, err
	}
	del.Lines = lines
	return &del, nil
}

func (r *DeliveryRepo) lines(deliveryID string) ([]entity.DeliveryLine, error) {
	query := `
		SELECT id, delivery_id, product_id, quantity_ordered, quantity_delivered
		FROM delivery_lines WHERE delivery_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("list delivery lines: %w", err)
	}
	defer rows.Close()
	var lines []entity.DeliveryLine
	for rows.Next() {
		var l entity.DeliveryLine
		if err := rows.Scan(&l.ID, &l.DeliveryID, &l.ProductID, &l.QuantityOrdered, &l.QuantityDelivered); err != nil {
			return nil, fmt.Errorf("scan delivery line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// List lista entregas (sin líneas) con filtros opcionales.
func (r *DeliveryRepo) List(status entity.DocumentStatus, warehouseID string, limit int) ([]*entity.Delivery, error) {
	query := deliverySelect + ` WHERE 1=1`
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
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	defer rows.Close()
	var list []*entity.Delivery
	for rows.Next() {
		var del entity.Delivery
		var st string
		if err := rows.Scan(&del.ID, &del.DeliveryNumber, &del.CustomerName, &del.WarehouseID,
			&del.LocationID, &st, &del.ScheduledDate, &del.Notes, &del.CreatedAt, &del.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan delivery: %w", err)
		}
		del.Status = entity.DocumentStatus(st)
		list = append(list, &del)
	}
	return list, rows.Err()
}

// AddLine persiste una línea de entrega.
func (r *DeliveryRepo) AddLine(line *entity.DeliveryLine) error {
	query := `
		INSERT INTO delivery_lines (id, delivery_id, product_id, quantity_ordered, quantity_delivered)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.DeliveryID, line.ProductID, line.QuantityOrdered, line.QuantityDelivered,
	)
	if err != nil {
		return fmt.Errorf("insert delivery line: %w", err)
	}
	return nil
}

// UpdateLineDelivered fija la cantidad entregada de una línea.
func (r *DeliveryRepo) UpdateLineDelivered(lineID string, quantityDelivered int64) error {
	query := `UPDATE delivery_lines SET quantity_delivered = $1 WHERE id = $2`
	tag, err := r.q.Exec(context.Background(), query, quantityDelivered, lineID)
	if err != nil {
		return fmt.Errorf("update delivery line: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatus cambia el estado del documento.
func (r *DeliveryRepo) UpdateStatus(id string, status entity.DocumentStatus) error {
	query := `UPDATE deliveries SET status = $1 WHERE id = $2`
	tag, err := r.q.Exec(context.Background(), query, string(status), id)
	if err != nil {
		return fmt.Errorf("update delivery status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
