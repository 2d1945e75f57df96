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
	"github.com/jhoicas/Stock-ledger-api/internal/application/inventory"
	"github.com/jhoicas/Stock-ledger-api/internal/application/purchase"
	"github.com/jhoicas/Stock-ledger-api/internal/application/sale"
	"github.com/jhoicas/Stock-ledger-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Stock-ledger-api/internal/interfaces/http"
	"github.com/jhoicas/Stock-ledger-api/pkg/config"
	"github.com/jhoicas/Stock-ledger-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Service: "stock-ledger-api",
		Env:     cfg.App.Env,
		Level:   "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Int("chunk_size", cfg.Stock.ChunkSize).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	chunkSize := cfg.Stock.ChunkSize
	txRunner := postgres.NewTxRunner(pool, chunkSize)

	// Repos atados al pool, para lecturas fuera de transacción.
	purchaseRepo := postgres.NewPurchaseRepository(pool, chunkSize)
	saleRepo := postgres.NewSaleOrderRepository(pool, chunkSize)
	ledgerRepo := postgres.NewLedgerRepository(pool, chunkSize)
	entityRepo := postgres.NewStockEntityRepository(pool, chunkSize)
	aggRepo := postgres.NewOrderAggregateRepository(pool)

	createPurchaseUC := purchase.NewCreateUseCase(txRunner, chunkSize)
	listPurchasesUC := purchase.NewListUseCase(purchaseRepo, aggRepo)
	createSaleUC := sale.NewCreateUseCase(txRunner, ledgerRepo)
	autoFillUC := sale.NewAutoFillUseCase(txRunner, chunkSize)
	cancelUC := sale.NewCancelUseCase(txRunner)
	listSalesUC := sale.NewListUseCase(saleRepo, aggRepo)
	quantityUC := inventory.NewQuantityUseCase(ledgerRepo)
	valuationUC := inventory.NewValuationUseCase(entityRepo)
	adjustmentUC := inventory.NewAdjustmentUseCase(txRunner)

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
		Title:    "Stock Ledger API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CreatePurchase: createPurchaseUC,
		ListPurchases:  listPurchasesUC,
		CreateSale:     createSaleUC,
		AutoFillSale:   autoFillUC,
		CancelSale:     cancelUC,
		ListSales:      listSalesUC,
		Quantity:       quantityUC,
		Valuation:      valuationUC,
		Adjustment:     adjustmentUC,
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
