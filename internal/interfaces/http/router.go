package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cerveceria-pro/internal/application/materials"
	"github.com/tu-usuario/cerveceria-pro/internal/application/production"
	"github.com/tu-usuario/cerveceria-pro/internal/application/reports"
	"github.com/tu-usuario/cerveceria-pro/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	MaterialUC  *materials.MaterialUseCase
	SectorUC    *usecase.SectorUseCase
	ProductUC   *usecase.ProductUseCase
	QualityUC   *usecase.QualityUseCase
	Engine      *production.Engine
	OrderReport *reports.OrderReportUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Materias primas y stock
	materialsGroup := api.Group("/materials")
	materialHandler := NewMaterialHandler(deps.MaterialUC)
	materialsGroup.Post("/", materialHandler.Create)
	materialsGroup.Get("/", materialHandler.List)
	materialsGroup.Get("/below-threshold", materialHandler.ListBelowThreshold)
	materialsGroup.Get("/:id", materialHandler.GetByID)
	materialsGroup.Post("/:id/reserve", materialHandler.ReserveStock)
	materialsGroup.Post("/:id/return", materialHandler.ReturnStock)
	materialsGroup.Post("/:id/increase", materialHandler.IncreaseStock)
	materialsGroup.Post("/:id/reduce", materialHandler.ReduceStock)
	materialsGroup.Post("/:id/toggle-active", materialHandler.ToggleActive)

	// Sectores de planta
	sectors := api.Group("/sectors")
	sectorHandler := NewSectorHandler(deps.SectorUC)
	sectors.Post("/", sectorHandler.Create)
	sectors.Get("/", sectorHandler.List)
	sectors.Get("/:id", sectorHandler.GetByID)
	sectors.Post("/:id/increase-production", sectorHandler.IncreaseProduction)
	sectors.Post("/:id/decrease-production", sectorHandler.DecreaseProduction)

	// Productos, plantillas de fase y recetas
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/:id/phases", productHandler.AddPhase)
	products.Post("/:id/phases/:phase/recipes", productHandler.AddRecipe)
	products.Post("/:id/toggle-active", productHandler.ToggleActive)

	// Flujo de producción
	prod := api.Group("/production")
	productionHandler := NewProductionHandler(deps.Engine, deps.OrderReport)
	prod.Post("/orders", productionHandler.CreateOrder)
	prod.Get("/orders", productionHandler.ListOrders)
	prod.Get("/orders/:id", productionHandler.GetOrder)
	prod.Post("/orders/:id/approve", productionHandler.ApproveOrder)
	prod.Post("/orders/:id/return", productionHandler.ReturnOrder)
	prod.Get("/orders/:id/report", productionHandler.OrderReport)
	prod.Get("/batches", productionHandler.ListBatches)
	prod.Get("/batches/:id", productionHandler.GetBatch)
	prod.Post("/batches/:id/cancel", productionHandler.CancelBatch)
	prod.Get("/phases/:id", productionHandler.GetPhase)
	prod.Post("/phases/:id/start", productionHandler.StartPhase)
	prod.Post("/phases/:id/under-review", productionHandler.SetUnderReview)
	prod.Post("/phases/:id/approve", productionHandler.ApprovePhase)
	prod.Post("/phases/:id/reject", productionHandler.RejectPhase)

	// Calidad
	qualityHandler := NewQualityHandler(deps.QualityUC)
	quality := api.Group("/quality")
	quality.Post("/parameters", qualityHandler.CreateParameter)
	quality.Get("/parameters", qualityHandler.ListParameters)
	quality.Post("/values/:id/approve", qualityHandler.ApproveValue)
	prod.Post("/phases/:id/quality", qualityHandler.RecordValue)
	prod.Get("/phases/:id/quality", qualityHandler.ListValues)
}
