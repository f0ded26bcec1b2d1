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
	"github.com/tu-usuario/cerveceria-pro/internal/application/materials"
	"github.com/tu-usuario/cerveceria-pro/internal/application/production"
	"github.com/tu-usuario/cerveceria-pro/internal/application/reports"
	"github.com/tu-usuario/cerveceria-pro/internal/application/usecase"
	infrapdf "github.com/tu-usuario/cerveceria-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/cerveceria-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/cerveceria-pro/internal/interfaces/http"
	"github.com/tu-usuario/cerveceria-pro/pkg/config"
	"github.com/tu-usuario/cerveceria-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
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

	materialRepo := postgres.NewMaterialRepository(pool)
	sectorRepo := postgres.NewSectorRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	productPhaseRepo := postgres.NewProductPhaseRepository(pool)
	orderRepo := postgres.NewProductionOrderRepository(pool)
	batchRepo := postgres.NewBatchRepository(pool)
	phaseRepo := postgres.NewProductionPhaseRepository(pool)
	qualityRepo := postgres.NewQualityRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	materialUC := materials.NewMaterialUseCase(txRunner, materialRepo)
	sectorUC := usecase.NewSectorUseCase(sectorRepo, txRunner)
	productUC := usecase.NewProductUseCase(productRepo, productPhaseRepo, materialRepo)
	qualityUC := usecase.NewQualityUseCase(qualityRepo, phaseRepo)
	engine := production.NewEngine(txRunner, orderRepo, batchRepo, phaseRepo, log)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	orderReportUC := reports.NewOrderReportUseCase(
		orderRepo, productRepo, batchRepo, phaseRepo, pdfGenerator,
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
		Title:    "Cervecería Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		MaterialUC:  materialUC,
		SectorUC:    sectorUC,
		ProductUC:   productUC,
		QualityUC:   qualityUC,
		Engine:      engine,
		OrderReport: orderReportUC,
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
