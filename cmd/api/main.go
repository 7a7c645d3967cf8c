package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/gestion-almacenes/almacenes-api/internal/application/auth"
	"github.com/gestion-almacenes/almacenes-api/internal/application/orders"
	"github.com/gestion-almacenes/almacenes-api/internal/application/usecase"
	"github.com/gestion-almacenes/almacenes-api/internal/infrastructure/postgres"
	httpRouter "github.com/gestion-almacenes/almacenes-api/internal/interfaces/http"
	"github.com/gestion-almacenes/almacenes-api/pkg/config"
	"github.com/gestion-almacenes/almacenes-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	orderRepo := postgres.NewOrderRepository(pool)
	lineRepo := postgres.NewOrderLineRepository(pool)
	lotPlanRepo := postgres.NewLotPlanRepository(pool)
	stockRepo := postgres.NewStockRecordRepository(pool)
	storehouseRepo := postgres.NewStorehouseRepository(pool)
	storehouseTypeRepo := postgres.NewStorehouseTypeRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	unitRepo := postgres.NewUnitMeasurementRepository(pool)
	orderTypeRepo := postgres.NewOrderTypeRepository(pool)
	packingTypeRepo := postgres.NewPackingTypeRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	orderUC := orders.NewOrderUseCase(orderRepo, storehouseRepo, orderTypeRepo, supplierRepo)
	lineUC := orders.NewLineUseCase(txRunner, orderRepo, stockRepo, lineRepo, lotPlanRepo,
		cfg.Orders.RejectDuplicateLines)
	executeUC := orders.NewExecuteOrderUseCase(txRunner, orderTypeRepo, log)

	storehouseUC := usecase.NewStorehouseUseCase(storehouseRepo, storehouseTypeRepo)
	storehouseTypeUC := usecase.NewStorehouseTypeUseCase(storehouseTypeRepo)
	productUC := usecase.NewProductUseCase(productRepo, unitRepo)
	unitUC := usecase.NewUnitMeasurementUseCase(unitRepo)
	orderTypeUC := usecase.NewOrderTypeUseCase(orderTypeRepo)
	packingTypeUC := usecase.NewPackingTypeUseCase(packingTypeRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	stockRecordUC := usecase.NewStockRecordUseCase(stockRepo, storehouseRepo, productRepo)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Almacenes API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		OrderUC:          orderUC,
		LineUC:           lineUC,
		ExecuteUC:        executeUC,
		StorehouseUC:     storehouseUC,
		StorehouseTypeUC: storehouseTypeUC,
		ProductUC:        productUC,
		UnitUC:           unitUC,
		OrderTypeUC:      orderTypeUC,
		PackingTypeUC:    packingTypeUC,
		SupplierUC:       supplierUC,
		StockRecordUC:    stockRecordUC,
		AuthUC:           authUC,
		JWTSecret:        cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
