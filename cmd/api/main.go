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

	"github.com/jhoicas/Farmacia-api/internal/application/auth"
	"github.com/jhoicas/Farmacia-api/internal/application/inventory"
	"github.com/jhoicas/Farmacia-api/internal/application/report"
	"github.com/jhoicas/Farmacia-api/internal/application/sales"
	"github.com/jhoicas/Farmacia-api/internal/application/usecase"
	"github.com/jhoicas/Farmacia-api/internal/infrastructure/export"
	"github.com/jhoicas/Farmacia-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Farmacia-api/internal/interfaces/http"
	"github.com/jhoicas/Farmacia-api/pkg/config"
	"github.com/jhoicas/Farmacia-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	medicineRepo := postgres.NewMedicineRepository(pool)
	manufacturerRepo := postgres.NewManufacturerRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	patientRepo := postgres.NewPatientRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	transferRepo := postgres.NewTransferRepository(pool)
	returnRepo := postgres.NewManufacturerReturnRepository(pool)
	damageRepo := postgres.NewDamageRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	medicineUC := usecase.NewMedicineUseCase(medicineRepo, manufacturerRepo)
	manufacturerUC := usecase.NewManufacturerUseCase(manufacturerRepo)
	storeUC := usecase.NewStoreUseCase(storeRepo)
	patientUC := usecase.NewPatientUseCase(patientRepo)
	inventoryQuery := inventory.NewQueryUseCase(inventoryRepo, storeRepo)
	movementUC := inventory.NewMovementUseCase(txRunner, medicineRepo, storeRepo, manufacturerRepo,
		purchaseRepo, transferRepo, returnRepo, damageRepo)
	saleUC := sales.NewSaleUseCase(txRunner, saleRepo, medicineRepo, storeRepo, patientRepo)

	csvRenderer := export.NewCSVRenderer()
	pdfRenderer := export.NewPDFRenderer()
	ledgerUC := report.NewLedgerUseCase(
		medicineRepo, storeRepo, inventoryRepo,
		purchaseRepo, transferRepo, returnRepo, damageRepo, saleRepo,
		csvRenderer, pdfRenderer,
	)

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
		Title:    "Farmacia API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		MedicineUC:     medicineUC,
		ManufacturerUC: manufacturerUC,
		StoreUC:        storeUC,
		PatientUC:      patientUC,
		InventoryQuery: inventoryQuery,
		MovementUC:     movementUC,
		SaleUC:         saleUC,
		LedgerUC:       ledgerUC,
		CSVRenderer:    csvRenderer,
		JWTSecret:      cfg.JWT.Secret,
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
