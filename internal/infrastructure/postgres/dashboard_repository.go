package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas del tablero. Solo lectura, sin bloqueos.
type DashboardRepo struct {
	q Querier
}

func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// GetKPIs ejecuta una sola consulta con subqueries agregadas. Los valores se
// calculan sobre snapshots independientes y pueden no ser mutuamente
// consistentes entre sí.
func (r *DashboardRepo) GetKPIs() (*repository.DashboardKPIs, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM products WHERE active),
			(SELECT COUNT(*) FROM products p
			 LEFT JOIN (SELECT product_id, SUM(quantity) AS total FROM stock_balances GROUP BY product_id) s
			   ON s.product_id = p.id
			 WHERE p.active AND COALESCE(s.total, 0) <= p.reorder_level),
			(SELECT COUNT(*) FROM receipts WHERE status IN ('DRAFT', 'WAITING', 'READY')),
			(SELECT COUNT(*) FROM deliveries WHERE status IN ('DRAFT', 'WAITING', 'READY')),
			(SELECT COUNT(*) FROM stock_movements WHERE created_at >= CURRENT_DATE),
			(SELECT COALESCE(SUM(quantity), 0) FROM stock_balances),
			(SELECT COUNT(*) FROM warehouses)`
	var k repository.DashboardKPIs
	err := r.q.QueryRow(context.Background(), query).Scan(
		&k.TotalProducts, &k.LowStockProducts, &k.PendingReceipts, &k.PendingDeliveries,
		&k.MovementsToday, &k.TotalStockUnits, &k.WarehousesCount)
	if err != nil {
		return nil, fmt.Errorf("dashboard kpis: %w", err)
	}
	return &k, nil
}
