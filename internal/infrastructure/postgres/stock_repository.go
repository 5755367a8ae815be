package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

var _ repository.StockBalanceRepository = (*StockBalanceRepo)(nil)

// StockBalanceRepo implementación de StockBalanceRepository sobre PostgreSQL (usable con pool o tx).
type StockBalanceRepo struct {
	q Querier
}

// NewStockBalanceRepository construye el adaptador de saldos. Pasar pool o tx (Querier).
func NewStockBalanceRepository(q Querier) *StockBalanceRepo {
	return &StockBalanceRepo{q: q}
}

// Get obtiene el saldo actual de un producto en una ubicación.
// Clave ausente devuelve saldo cero, nunca error.
func (r *StockBalanceRepo) Get(productID, locationID string) (*entity.StockBalance, error) {
	query := `
		SELECT product_id, location_id, quantity, updated_at
		FROM stock_balances WHERE product_id = $1 AND location_id = $2`
	var b entity.StockBalance
	err := r.q.QueryRow(context.Background(), query, productID, locationID).Scan(
		&b.ProductID, &b.LocationID, &b.Quantity, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockBalance{ProductID: productID, LocationID: locationID}, nil
		}
		return nil, fmt.Errorf("get balance: %w", err)
	}
	return &b, nil
}

// GetForUpdate obtiene el saldo y bloquea la fila (SELECT ... FOR UPDATE).
// La fila puede no existir aún (primer movimiento hacia la ubicación); en ese
// caso se devuelve saldo cero y el Upsert posterior la crea.
func (r *StockBalanceRepo) GetForUpdate(productID, locationID string) (*entity.StockBalance, error) {
	query := `
		SELECT product_id, location_id, quantity, updated_at
		FROM stock_balances WHERE product_id = $1 AND location_id = $2
		FOR UPDATE`
	var b entity.StockBalance
	err := r.q.QueryRow(context.Background(), query, productID, locationID).Scan(
		&b.ProductID, &b.LocationID, &b.Quantity, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockBalance{ProductID: productID, LocationID: locationID}, nil
		}
		return nil, fmt.Errorf("get balance for update: %w", err)
	}
	return &b, nil
}

// Upsert inserta o actualiza el saldo (por producto y ubicación).
func (r *StockBalanceRepo) Upsert(balance *entity.StockBalance) error {
	query := `
		INSERT INTO stock_balances (product_id, location_id, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (product_id, location_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, balance.ProductID, balance.LocationID, balance.Quantity)
	if err != nil {
		return fmt.Errorf("upsert balance: %w", err)
	}
	return nil
}

// ListByProduct devuelve los saldos de un producto en todas sus ubicaciones.
func (r *StockBalanceRepo) ListByProduct(productID string) ([]*entity.StockBalance, error) {
	query := `
		SELECT product_id, location_id, quantity, updated_at
		FROM stock_balances WHERE product_id = $1
		ORDER BY location_id`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list balances: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockBalance
	for rows.Next() {
		var b entity.StockBalance
		if err := rows.Scan(&b.ProductID, &b.LocationID, &b.Quantity, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan balance: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
