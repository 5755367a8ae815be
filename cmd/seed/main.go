// Aplica el esquema y carga datos de ejemplo para desarrollo local.
//
//	go run ./cmd/seed
package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stockmaster-api/internal/application/auth"
	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/infrastructure/postgres"
	"github.com/jhoicas/stockmaster-api/pkg/config"
	"github.com/jhoicas/stockmaster-api/pkg/logger"
	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "stockmaster-seed"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	schema, err := os.ReadFile("migrations/schema.sql")
	if err != nil {
		log.Fatal().Err(err).Msg("leer migrations/schema.sql")
	}
	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		log.Fatal().Err(err).Msg("aplicar esquema")
	}
	log.Info().Msg("esquema aplicado")

	// Usuario admin de arranque. Si ya existe, se deja como está.
	authUC := auth.NewAuthUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	if _, err := authUC.RegisterUser(dto.RegisterRequest{
		Email:    "admin@stockmaster.local",
		Password: "admin123",
		Name:     "Administrador",
		Role:     entity.RoleAdmin,
	}); err != nil {
		log.Warn().Err(err).Msg("usuario admin no creado")
	} else {
		log.Info().Str("email", "admin@stockmaster.local").Msg("usuario admin creado")
	}

	// Bodega principal con dos ubicaciones y un catálogo mínimo.
	now := time.Now()
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)

	warehouse := &entity.Warehouse{
		ID:        uuid.New().String(),
		Code:      "BOD-CENTRAL",
		Name:      "Bodega Central",
		Address:   "Calle 10 # 42-28, Medellín",
		CreatedAt: now,
	}
	if err := warehouseRepo.Create(warehouse); err != nil {
		log.Warn().Err(err).Msg("bodega no creada, probablemente el seed ya corrió")
		return
	}

	for _, code := range []string{"A-01", "A-02"} {
		loc := &entity.Location{
			ID:          uuid.New().String(),
			WarehouseID: warehouse.ID,
			Code:        code,
			Name:        "Estantería " + code,
			CreatedAt:   now,
		}
		if err := locationRepo.Create(loc); err != nil {
			log.Fatal().Err(err).Str("code", code).Msg("crear ubicación")
		}
	}

	category := &entity.Category{ID: uuid.New().String(), Name: "General", CreatedAt: now}
	if err := categoryRepo.Create(category); err != nil {
		log.Fatal().Err(err).Msg("crear categoría")
	}

	samples := []struct {
		sku, name    string
		price, cost  string
		reorderLevel int64
	}{
		{"SKU-001", "Caja de tornillos 4mm", "12500", "8000", 20},
		{"SKU-002", "Guantes industriales", "18900", "11000", 10},
		{"SKU-003", "Cinta de embalaje", "4500", "2100", 50},
	}
	for _, s := range samples {
		p := &entity.Product{
			ID:            uuid.New().String(),
			SKU:           s.sku,
			Name:          s.name,
			CategoryID:    category.ID,
			UnitOfMeasure: "unidad",
			Price:         decimal.RequireFromString(s.price),
			Cost:          decimal.RequireFromString(s.cost),
			ReorderLevel:  s.reorderLevel,
			Active:        true,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := productRepo.Create(p); err != nil {
			log.Fatal().Err(err).Str("sku", s.sku).Msg("crear producto")
		}
	}

	log.Info().Msg("datos de ejemplo cargados")
}
