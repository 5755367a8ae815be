package inventory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockmaster-api/internal/application/inventory"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

func seedReceipt(env *testEnv, id string, status entity.DocumentStatus, lines ...entity.ReceiptLine) {
	env.store.receipts[id] = entity.Receipt{
		ID:            id,
		ReceiptNumber: "RCP-20250101-" + id,
		SupplierName:  "Proveedor",
		WarehouseID:   "wh-1",
		LocationID:    "loc-a",
		Status:        status,
		CreatedAt:     time.Now(),
		Lines:         lines,
	}
}

func seedDelivery(env *testEnv, id string, status entity.DocumentStatus, lines ...entity.DeliveryLine) {
	env.store.deliveries[id] = entity.Delivery{
		ID:             id,
		DeliveryNumber: "DEL-20250101-" + id,
		CustomerName:   "Cliente",
		WarehouseID:    "wh-1",
		LocationID:     "loc-a",
		Status:         status,
		CreatedAt:      time.Now(),
		Lines:          lines,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Recepciones
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateReceipt_AplicaStockYPasaADone(t *testing.T) {
	env := newTestEnv()
	env.addProduct("p1")
	env.addLocation("loc-a")
	seedReceipt(env, "rec-1", entity.StatusReady,
		entity.ReceiptLine{ID: "l1", ReceiptID: "rec-1", ProductID: "p1", QuantityExpected: 10, QuantityReceived: 10},
	)

	err := env.engine.ValidateReceipt(context.Background(), "rec-1", "user-1")
	require.NoError(t, err)

	assert.Equal(t, int64(10), env.balance("p1", "loc-a"), "el saldo debe reflejar la cantidad recibida")
	assert.Equal(t, entity.StatusDone, env.store.receipts["rec-1"].Status, "la recepción debe quedar en DONE")

	require.Len(t, env.store.movements, 1)
	m := env.store.movements[0]
	assert.Equal(t, entity.MovementTypeReceipt, m.Type)
	assert.Equal(t, int64(10), m.Delta)
	assert.Equal(t, "RCP-20250101-rec-1", m.SourceDocument)
	assert.Equal(t, "user-1", m.CreatedBy)
}

func TestValidateReceipt_LibroCuadraConSaldo(t *testing.T) {
	env := newTestEnv()
	env.addProduct("p1")
	env.addLocation("loc-a")
	env.setBalance("p1", "loc-a", 30)
	seedReceipt(env, "rec-1", entity.StatusReady,
		entity.ReceiptLine{ID: "l1", ReceiptID: "rec-1", ProductID: "p1", QuantityExpected: 5, QuantityReceived: 5},
	)

	require.NoError(t, env.engine.ValidateReceipt(context.Background(), "rec-1", "user-1"))

	book := &fakeMovementRepo{store: env.store}
	sum, err := book.SumDeltas("p1", "loc-a")
	require.NoError(t, err)
	assert.Equal(t, env.balance("p1", "loc-a"), sum,
		"el saldo debe ser exactamente la suma de los deltas del libro")
}

func TestValidateReceipt_LineasEnCeroSeOmiten(t *testing.T) {
	env := newTestEnv()
	env.addProduct("p1")
	env.addProduct("p2")
	env.addLocation("loc-a")
	seedReceipt(env, "rec-1", entity.StatusReady,
		entity.ReceiptLine{ID: "l1", ReceiptID: "rec-1", ProductID: "p1", QuantityExpected: 10, QuantityReceived: 10},
		entity.ReceiptLine{ID: "l2", ReceiptID: "rec-1", ProductID: "p2", QuantityExpected: 4, QuantityReceived: 0},
	)

	require.NoError(t, env.engine.ValidateReceipt(context.Background(), "rec-1", "user-1"))

	assert.Equal(t, int64(10), env.balance("p1", "loc-a"))
	assert.Equal(t, int64(0), env.balance("p2", "loc-a"), "la línea en cero no debe generar movimiento")
	assert.Len(t, env.store.movements, 1)
}

func TestValidateReceipt_SinCantidades_ErrEmptyDocument(t *testing.T) {
	env := newTestEnv()
	env.addProduct("p1")
	env.addLocation("loc-a")
	seedReceipt(env, "rec-1", entity.StatusReady,
		entity.ReceiptLine{ID: "l1", ReceiptID: "rec-1", ProductID: "p1", QuantityExpected: 10, QuantityReceived: 0},
	)

	err := env.engine.ValidateReceipt(context.Background(), "rec-1", "user-1")
	assert.ErrorIs(t, err, domain.ErrEmptyDocument)
	assert.Equal(t, entity.StatusReady, env.store.receipts["rec-1"].Status, "el estado no debe cambiar")
	assert.Empty(t, env.store.movements)
}

func TestValidateReceipt_DobleValidacion_Rechazada(t *testing.T) {
	env := newTestEnv()
	env.addProduct("p1")
	env.addLocation("loc-a")
	seedReceipt(env, "rec-1", entity.StatusReady,
		entity.ReceiptLine{ID: "l1", ReceiptID: "rec-1", ProductID: "p1", QuantityExpected: 10, QuantityReceived: 10},
	)

	require.NoError(t, env.engine.ValidateReceipt(context.Background(), "rec-1", "user-1"))
	err := env.engine.ValidateReceipt(context.Background(), "rec-1", "user-1")

	assert.ErrorIs(t, err, domain.ErrDocumentNotValidatable,
		"la segunda validación debe rechazarse, nunca duplicar stock")
	assert.Equal(t, int64(10), env.balance("p1", "loc-a"), "el saldo no debe duplicarse")
	assert.Len(t, env.store.movements, 1)
}

func TestValidateReceipt_EstadoNoReady_Rechazado(t *testing.T) {
	for _, status := range []entity.DocumentStatus{entity.StatusDraft, entity.StatusWaiting, entity.StatusCancelled} {
		env := newTestEnv()
		env.addProduct("p1")
		env.addLocation("loc-a")
		seedReceipt(env, "rec-1", status,
			entity.ReceiptLine{ID: "l1", ReceiptID: "rec-1", ProductID: "p1", QuantityExpected: 10, QuantityReceived: 10},
		)

		err := env.engine.ValidateReceipt(context.Background(), "rec-1", "user-1")
		assert.ErrorIs(t, err, domain.ErrDocumentNotValidatable, "estado %s no es validable", status)
		assert.Equal(t, int64(0), env.balance("p1", "loc-a"))
	}
}

func TestValidateReceipt_NoExiste_ErrNotFound(t *testing.T) {
	env := newTestEnv()
	err := env.engine.ValidateReceipt(context.Background(), "no-existe", "user-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Entregas
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateDelivery_DebitaStock(t *testing.T) {
	env := newTestEnv()
	env.addProduct("p1")
	env.addLocation("loc-a")
	env.setBalance("p1", "loc-a", 100)
	seedDelivery(env, "del-1", entity.StatusReady,
		entity.DeliveryLine{ID: "l1", DeliveryID: "del-1", ProductID: "p1", QuantityOrdered: 40, QuantityDelivered: 40},
	)

	require.NoError(t, env.engine.ValidateDelivery(context.Background(), "del-1", "user-1"))

	assert.Equal(t, int64(60), env.balance("p1", "loc-a"))
	assert.Equal(t, entity.StatusDone, env.store.deliveries["del-1"].Status)

	last := env.store.movements[len(env.store.movements)-1]
	assert.Equal(t, entity.MovementTypeDelivery, last.Type)
	assert.Equal(t, int64(-40), last.Delta, "la entrega registra un delta negativo")
}

func TestValidateDelivery_StockInsuficiente_NadaCambia(t *testing.T) {
	env := newTestEnv()
	env.addProduct("p1")
	env.addProduct("p2")
	env.addLocation("loc-a")
	env.setBalance("p1", "loc-a", 100)
	env.setBalance("p2", "loc-a", 3)
	// Lote mixto: la primera línea alcanzaría, la segunda no. Nada debe aplicarse.
	seedDelivery(env, "del-1", entity.StatusReady,
		entity.DeliveryLine{ID: "l1", DeliveryID: "del-1", ProductID: "p1", QuantityOrdered: 10, QuantityDelivered: 10},
		entity.DeliveryLine{ID: "l2", DeliveryID: "del-1", ProductID: "p2", QuantityOrdered: 5, QuantityDelivered: 5},
	)
	movesBefore := len(env.store.movements)

	err := env.engine.ValidateDelivery(context.Background(), "del-1", "user-1")

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(100), env.balance("p1", "loc-a"), "la línea viable tampoco debe aplicarse")
	assert.Equal(t, int64(3), env.balance("p2", "loc-a"))
	assert.Equal(t, entity.StatusReady, env.store.deliveries["del-1"].Status, "el documento sigue en READY")
	assert.Len(t, env.store.movements, movesBefore, "el libro no debe registrar nada")
}

func TestValidateDelivery_HastaCero_Permitido(t *testing.T) {
	env := newTestEnv()
	env.addProduct("p1")
	env.addLocation("loc-a")
	env.setBalance("p1", "loc-a", 25)
	seedDelivery(env, "del-1", entity.StatusReady,
		entity.DeliveryLine{ID: "l1", DeliveryID: "del-1", ProductID: "p1", QuantityOrdered: 25, QuantityDelivered: 25},
	)

	require.NoError(t, env.engine.ValidateDelivery(context.Background(), "del-1", "user-1"),
		"entregar exactamente el saldo disponible es válido")
	assert.Equal(t, int64(0), env.balance("p1", "loc-a"))
}

func TestValidateDelivery_Concurrentes_SoloUnaGana(t *testing.T) {
	env := newTestEnv()
	env.addProduct("p1")
	env.addLocation("loc-a")
	env.setBalance("p1", "loc-a", 100)
	seedDelivery(env, "del-1", entity.StatusReady,
		entity.DeliveryLine{ID: "l1", DeliveryID: "del-1", ProductID: "p1", QuantityOrdered: 60, QuantityDelivered: 60},
	)
	seedDelivery(env, "del-2", entity.StatusReady,
		entity.DeliveryLine{ID: "l2", DeliveryID: "del-2", ProductID: "p1", QuantityOrdered: 60, QuantityDelivered: 60},
	)

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i, id := range []string{"del-1", "del-2"} {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			errs[i] = env.engine.ValidateDelivery(context.Background(), id, "user-1")
		}(i, id)
	}
	wg.Wait()

	// 60 + 60 > 100: exactamente una de las dos debe ganar.
	var oks, insufficient int
	for _, err := range errs {
		switch {
		case err == nil:
			oks++
		case assert.ErrorIs(t, err, domain.ErrInsufficientStock):
			insufficient++
		}
	}
	assert.Equal(t, 1, oks, "exactamente una entrega debe validarse")
	assert.Equal(t, 1, insufficient, "la otra debe fallar por stock insuficiente")
	assert.Equal(t, int64(40), env.balance("p1", "loc-a"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Traslados
// ──────────────────────────────────────────────────────────────────────────────

func TestExecuteTransfer_MueveEntreUbicaciones(t *testing.T) {
	env := newTestEnv()
	env.addProduct("p1")
	env.addLocation("loc-a")
	env.addLocation("loc-b")
	env.setBalance("p1", "loc-a", 50)

	transfer, err := env.engine.ExecuteTransfer(context.Background(), inventory.TransferInput{
		ProductID:      "p1",
		FromLocationID: "loc-a",
		ToLocationID:   "loc-b",
		Quantity:       20,
		ActorID:        "user-1",
	})
	require.NoError(t, err)
	require.NotNil(t, transfer)

	assert.Equal(t, int64(30), env.balance("p1", "loc-a"))
	assert.Equal(t, int64(20), env.balance("p1", "loc-b"))
	assert.Equal(t, entity.StatusDone, transfer.Status, "el traslado nace ejecutado")

	// Dos movimientos enlazados por el mismo documento, suma neta cero.
	book := &fakeMovementRepo{store: env.store}
	linked, err := book.List(repository.MovementFilter{Limit: 10})
	require.NoError(t, err)
	var out, in *entity.StockMovement
	for _, m := range linked {
		if m.SourceDocument != transfer.TransferNumber {
			continue
		}
		switch m.Type {
		case entity.MovementTypeTransferOut:
			out = m
		case entity.MovementTypeTransferIn:
			in = m
		}
	}
	require.NotNil(t, out, "debe existir el movimiento de salida")
	require.NotNil(t, in, "debe existir el movimiento de entrada")
	assert.Equal(t, int64(-20), out.Delta)
	assert.Equal(t, int64(20), in.Delta)
	assert.Equal(t, int64(0), out.Delta+in.Delta, "el traslado no crea ni destruye stock")
}

func TestExecuteTransfer_StockInsuficiente_NoCreaNada(t *testing.T) {
	env := newTestEnv()
	env.addProduct("p1")
	env.addLocation("loc-a")
	env.addLocation("loc-b")
	env.setBalance("p1", "loc-a", 5)

	_, err := env.engine.ExecuteTransfer(context.Background(), inventory.TransferInput{
		ProductID:      "p1",
		FromLocationID: "loc-a",
		ToLocationID:   "loc-b",
		Quantity:       10,
		ActorID:        "user-1",
	})

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(5), env.balance("p1", "loc-a"), "el origen queda intacto")
	assert.Equal(t, int64(0), env.balance("p1", "loc-b"), "el destino no recibe nada")
	assert.Empty(t, env.store.transfers, "el traslado no debe persistirse")
}

func TestExecuteTransfer_MismaUbicacion_Rechazado(t *testing.T) {
	env := newTestEnv()
	env.addProduct("p1")
	env.addLocation("loc-a")

	_, err := env.engine.ExecuteTransfer(context.Background(), inventory.TransferInput{
		ProductID:      "p1",
		FromLocationID: "loc-a",
		ToLocationID:   "loc-a",
		Quantity:       1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTransfer)
}

func TestExecuteTransfer_CantidadInvalida_Rechazada(t *testing.T) {
	env := newTestEnv()
	env.addProduct("p1")
	env.addLocation("loc-a")
	env.addLocation("loc-b")

	for _, qty := range []int64{0, -3} {
		_, err := env.engine.ExecuteTransfer(context.Background(), inventory.TransferInput{
			ProductID:      "p1",
			FromLocationID: "loc-a",
			ToLocationID:   "loc-b",
			Quantity:       qty,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad %d debe rechazarse", qty)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Ajustes
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateAdjustment_CalculaDiferencia(t *testing.T) {
	env := newTestEnv()
	env.addProduct("p1")
	env.addLocation("loc-a")
	env.setBalance("p1", "loc-a", 50)

	adj, err := env.engine.CreateAdjustment(context.Background(), inventory.AdjustmentInput{
		ProductID:       "p1",
		LocationID:      "loc-a",
		QuantityCounted: 45,
		Reason:          entity.AdjustReasonCountError,
		ActorID:         "user-1",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(50), adj.QuantityBefore)
	assert.Equal(t, int64(-5), adj.Difference)
	assert.Equal(t, int64(45), env.balance("p1", "loc-a"), "el saldo resultante es la cantidad contada")
	assert.Equal(t, entity.StatusDone, adj.Status)

	last := env.store.movements[len(env.store.movements)-1]
	assert.Equal(t, entity.MovementTypeAdjustment, last.Type)
	assert.Equal(t, int64(-5), last.Delta)
	assert.Equal(t, adj.AdjustmentNumber, last.SourceDocument)
}

func TestCreateAdjustment_SinDiferencia_NoEscribeMovimiento(t *testing.T) {
	env := newTestEnv()
	env.addProduct("p1")
	env.addLocation("loc-a")
	env.setBalance("p1", "loc-a", 12)
	movesBefore := len(env.store.movements)

	adj, err := env.engine.CreateAdjustment(context.Background(), inventory.AdjustmentInput{
		ProductID:       "p1",
		LocationID:      "loc-a",
		QuantityCounted: 12,
		Reason:          entity.AdjustReasonOther,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(0), adj.Difference)
	assert.Len(t, env.store.movements, movesBefore, "conteo igual al saldo no toca el libro")
	assert.Len(t, env.store.adjustments, 1, "el ajuste sí se persiste como documento")
}

func TestCreateAdjustment_DesdeSaldoInexistente(t *testing.T) {
	env := newTestEnv()
	env.addProduct("p1")
	env.addLocation("loc-a")

	adj, err := env.engine.CreateAdjustment(context.Background(), inventory.AdjustmentInput{
		ProductID:       "p1",
		LocationID:      "loc-a",
		QuantityCounted: 7,
		Reason:          entity.AdjustReasonFound,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(0), adj.QuantityBefore, "una clave sin registro cuenta como saldo cero")
	assert.Equal(t, int64(7), adj.Difference)
	assert.Equal(t, int64(7), env.balance("p1", "loc-a"))
}

func TestCreateAdjustment_EntradaInvalida_Rechazada(t *testing.T) {
	env := newTestEnv()
	env.addProduct("p1")
	env.addLocation("loc-a")

	_, err := env.engine.CreateAdjustment(context.Background(), inventory.AdjustmentInput{
		ProductID:       "p1",
		LocationID:      "loc-a",
		QuantityCounted: -1,
		Reason:          entity.AdjustReasonLoss,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAdjustment, "cantidad contada negativa")

	_, err = env.engine.CreateAdjustment(context.Background(), inventory.AdjustmentInput{
		ProductID:       "p1",
		LocationID:      "loc-a",
		QuantityCounted: 5,
		Reason:          "SHRINKAGE",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAdjustment, "razón fuera del catálogo")
	assert.Empty(t, env.store.adjustments)
}

func TestCreateAdjustment_ProductoInactivo_Rechazado(t *testing.T) {
	env := newTestEnv()
	env.store.products["p1"] = entity.Product{ID: "p1", SKU: "SKU-p1", Active: false}
	env.addLocation("loc-a")

	_, err := env.engine.CreateAdjustment(context.Background(), inventory.AdjustmentInput{
		ProductID:       "p1",
		LocationID:      "loc-a",
		QuantityCounted: 5,
		Reason:          entity.AdjustReasonDamage,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "los productos inactivos no admiten movimientos")
}
