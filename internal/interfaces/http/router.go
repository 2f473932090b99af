package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/auth"
	"github.com/jhoicas/Farmacia-api/internal/application/inventory"
	"github.com/jhoicas/Farmacia-api/internal/application/report"
	"github.com/jhoicas/Farmacia-api/internal/application/sales"
	"github.com/jhoicas/Farmacia-api/internal/application/usecase"
	"github.com/jhoicas/Farmacia-api/internal/infrastructure/export"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	MedicineUC     *usecase.MedicineUseCase
	ManufacturerUC *usecase.ManufacturerUseCase
	StoreUC        *usecase.StoreUseCase
	PatientUC      *usecase.PatientUseCase
	InventoryQuery *inventory.QueryUseCase
	MovementUC     *inventory.MovementUseCase
	SaleUC         *sales.SaleUseCase
	LedgerUC       *report.LedgerUseCase
	CSVRenderer    *export.CSVRenderer
	JWTSecret      string
}

// Router registra las rutas de la API. Cada grupo protegido lleva el
// middleware de auth más la ruta lógica del control de acceso por rol.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo: medicamentos
	medicines := protected.Group("/medicines")
	medicineHandler := NewMedicineHandler(deps.MedicineUC)
	medicines.Get("/", RequireRoute(RouteCatalogRead), medicineHandler.List)
	medicines.Get("/:id", RequireRoute(RouteCatalogRead), medicineHandler.GetByID)
	medicines.Post("/", RequireRoute(RouteCatalogWrite), medicineHandler.Create)
	medicines.Put("/:id", RequireRoute(RouteCatalogWrite), medicineHandler.Update)
	medicines.Delete("/:id", RequireRoute(RouteCatalogWrite), medicineHandler.Delete)

	// Catálogo: laboratorios
	manufacturers := protected.Group("/manufacturers")
	manufacturerHandler := NewManufacturerHandler(deps.ManufacturerUC)
	manufacturers.Get("/", RequireRoute(RouteCatalogRead), manufacturerHandler.List)
	manufacturers.Get("/:id", RequireRoute(RouteCatalogRead), manufacturerHandler.GetByID)
	manufacturers.Post("/", RequireRoute(RouteCatalogWrite), manufacturerHandler.Create)
	manufacturers.Put("/:id", RequireRoute(RouteCatalogWrite), manufacturerHandler.Update)

	// Catálogo: sucursales
	stores := protected.Group("/stores")
	storeHandler := NewStoreHandler(deps.StoreUC)
	stores.Get("/", RequireRoute(RouteCatalogRead), storeHandler.List)
	stores.Get("/:id", RequireRoute(RouteCatalogRead), storeHandler.GetByID)
	stores.Post("/", RequireRoute(RouteCatalogWrite), storeHandler.Create)
	stores.Put("/:id", RequireRoute(RouteCatalogWrite), storeHandler.Update)

	// Pacientes
	patients := protected.Group("/patients", RequireRoute(RoutePatients))
	patientHandler := NewPatientHandler(deps.PatientUC)
	patients.Get("/", patientHandler.List)
	patients.Get("/:id", patientHandler.GetByID)
	patients.Post("/", patientHandler.Create)
	patients.Put("/:id", patientHandler.Update)

	// Inventario: snapshot y bajas por daño
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryQuery, deps.MovementUC)
	invGroup.Post("/damages", RequireRoute(RouteMovements), inventoryHandler.RegisterDamage)
	invGroup.Get("/damages", RequireRoute(RouteInventoryRead), inventoryHandler.ListDamages)
	invGroup.Get("/:locationId", RequireRoute(RouteInventoryRead), inventoryHandler.ListByLocation)

	// Movimientos con documento propio
	purchases := protected.Group("/purchases", RequireRoute(RouteMovements))
	purchaseHandler := NewPurchaseHandler(deps.MovementUC)
	purchases.Post("/", purchaseHandler.Register)
	purchases.Get("/", purchaseHandler.List)

	transfers := protected.Group("/transfers", RequireRoute(RouteMovements))
	transferHandler := NewTransferHandler(deps.MovementUC)
	transfers.Post("/", transferHandler.Register)
	transfers.Get("/", transferHandler.List)

	returns := protected.Group("/manufacturer-returns", RequireRoute(RouteMovements))
	returnHandler := NewManufacturerReturnHandler(deps.MovementUC)
	returns.Post("/", returnHandler.Register)
	returns.Get("/", returnHandler.List)

	// Ventas
	salesGroup := protected.Group("/sales", RequireRoute(RouteSales))
	saleHandler := NewSaleHandler(deps.SaleUC, deps.CSVRenderer)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/export/csv", saleHandler.ExportCSV)
	salesGroup.Get("/:id", saleHandler.GetByID)

	// Reportes: libro de inventario
	reports := protected.Group("/reports", RequireRoute(RouteReports))
	reportHandler := NewReportHandler(deps.LedgerUC)
	reports.Get("/ledger", reportHandler.Ledger)
	reports.Get("/ledger/csv", reportHandler.LedgerCSV)
	reports.Get("/ledger/pdf", reportHandler.LedgerPDF)
}
