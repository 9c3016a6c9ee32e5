// Comando de carga de datos de ejemplo. Útil para probar la API en local:
//
//	go run ./cmd/seed
package main

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/warehouse-api/internal/domain/entity"
	"github.com/jhoicas/warehouse-api/internal/infrastructure/postgres"
	"github.com/jhoicas/warehouse-api/pkg/config"
	"github.com/jhoicas/warehouse-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar schema")
	}

	warehouseRepo := postgres.NewWarehouseRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)

	now := time.Now().UTC()

	warehouses := []*entity.Warehouse{
		{Name: "Bodega Central", Address: "Calle 100 #15-20, Bogotá", Capacity: decimal.NewFromInt(5000), ManagerName: "Laura Gómez"},
		{Name: "Bodega Norte", Address: "Autopista Norte Km 21, Chía", Capacity: decimal.NewFromInt(12000), ManagerName: "Carlos Ruiz"},
		{Name: "Bodega Pacífico", Address: "Zona Franca, Buenaventura", Capacity: decimal.NewFromInt(8500), ManagerName: "Ana Torres"},
	}
	for _, w := range warehouses {
		w.CreatedAt, w.UpdatedAt = now, now
		if err := warehouseRepo.Create(w); err != nil {
			log.Fatal().Err(err).Str("name", w.Name).Msg("crear bodega")
		}
		log.Info().Int64("id", w.ID).Str("name", w.Name).Msg("bodega creada")
	}

	products := []*entity.Product{
		{Name: "Café Orgánico 500g", Description: "Café de origen único, tostado medio", Price: decimal.RequireFromString("32.50"), Category: "Alimentos", Weight: decimal.RequireFromString("0.5")},
		{Name: "Panela en Bloque", Description: "Panela artesanal sin aditivos", Price: decimal.RequireFromString("8.90"), Category: "Alimentos", Weight: decimal.RequireFromString("1.0")},
		{Name: "Detergente Industrial 20L", Description: "Detergente concentrado multiusos", Price: decimal.RequireFromString("145.00"), Category: "Limpieza", Weight: decimal.RequireFromString("21.3")},
		{Name: "Caja de Cartón 60x40", Description: "Caja doble pared para transporte", Price: decimal.RequireFromString("4.25"), Category: "Empaques", Weight: decimal.RequireFromString("0.8")},
	}
	for _, p := range products {
		p.CreatedAt, p.UpdatedAt = now, now
		if err := productRepo.Create(p); err != nil {
			log.Fatal().Err(err).Str("name", p.Name).Msg("crear producto")
		}
		log.Info().Int64("id", p.ID).Str("name", p.Name).Msg("producto creado")
	}

	inventories := []*entity.Inventory{
		{Quantity: 320, MinStock: 50, MaxStock: 500, WarehouseID: warehouses[0].ID, ProductID: products[0].ID},
		{Quantity: 12, MinStock: 40, MaxStock: 200, WarehouseID: warehouses[0].ID, ProductID: products[1].ID},
		{Quantity: 75, MinStock: 10, MaxStock: 100, WarehouseID: warehouses[1].ID, ProductID: products[2].ID},
		{Quantity: 1500, MinStock: 200, MaxStock: 3000, WarehouseID: warehouses[2].ID, ProductID: products[3].ID},
	}
	for _, inv := range inventories {
		inv.CreatedAt, inv.UpdatedAt = now, now
		if err := inventoryRepo.Create(inv); err != nil {
			log.Fatal().Err(err).Int64("warehouse_id", inv.WarehouseID).Int64("product_id", inv.ProductID).Msg("crear inventario")
		}
		log.Info().Int64("id", inv.ID).Msg("inventario creado")
	}

	log.Info().Msg("datos de ejemplo cargados")
}
