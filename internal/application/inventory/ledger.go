package inventory

import (
	"sort"
	"time"

	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// MovementRequest una mutación solicitada sobre el saldo de (producto, ubicación).
type MovementRequest struct {
	ProductID      string
	LocationID     string
	Delta          int64
	Type           string
	SourceDocument string
	ActorID        string
}

// applyMovements aplica un lote de movimientos contra el libro: bloquea las
// filas de saldo implicadas, verifica que ningún saldo quede negativo, y solo
// entonces persiste saldos y entradas del libro. Todo o nada: cualquier error
// aborta el lote completo (la tx del caller hace Rollback).
//
// Los bloqueos se adquieren en orden global ascendente de clave para que dos
// lotes que comparten claves en distinto orden no puedan interbloquearse.
func applyMovements(
	stock repository.StockBalanceRepository,
	book repository.StockMovementRepository,
	reqs []MovementRequest,
	now time.Time,
) ([]*entity.StockMovement, error) {
	if len(reqs) == 0 {
		return nil, domain.ErrEmptyDocument
	}

	keys := make([]entity.StockKey, 0, len(reqs))
	seen := make(map[entity.StockKey]bool, len(reqs))
	for _, r := range reqs {
		k := entity.StockKey{ProductID: r.ProductID, LocationID: r.LocationID}
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	balances := make(map[entity.StockKey]*entity.StockBalance, len(keys))
	for _, k := range keys {
		b, err := stock.GetForUpdate(k.ProductID, k.LocationID)
		if err != nil {
			return nil, err
		}
		balances[k] = b
	}

	// Chequeo de no-negatividad sobre el lote completo antes de escribir nada.
	for _, r := range reqs {
		b := balances[entity.StockKey{ProductID: r.ProductID, LocationID: r.LocationID}]
		b.Quantity += r.Delta
		if b.Quantity < 0 {
			return nil, domain.ErrInsufficientStock
		}
	}

	for _, k := range keys {
		b := balances[k]
		b.UpdatedAt = now
		if err := stock.Upsert(b); err != nil {
			return nil, err
		}
	}

	movements := make([]*entity.StockMovement, 0, len(reqs))
	for _, r := range reqs {
		m := &entity.StockMovement{
			ProductID:      r.ProductID,
			LocationID:     r.LocationID,
			Delta:          r.Delta,
			Type:           r.Type,
			SourceDocument: r.SourceDocument,
			CreatedAt:      now,
			CreatedBy:      r.ActorID,
		}
		if err := book.Create(m); err != nil {
			return nil, err
		}
		movements = append(movements, m)
	}
	return movements, nil
}
