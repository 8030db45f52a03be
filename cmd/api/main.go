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

	appanalytics "github.com/Hakan0032/modern-stock-management-sub000/internal/application/analytics"
	"github.com/Hakan0032/modern-stock-management-sub000/internal/application/auth"
	"github.com/Hakan0032/modern-stock-management-sub000/internal/application/bom"
	"github.com/Hakan0032/modern-stock-management-sub000/internal/application/consumption"
	"github.com/Hakan0032/modern-stock-management-sub000/internal/application/ledger"
	"github.com/Hakan0032/modern-stock-management-sub000/internal/application/usecase"
	"github.com/Hakan0032/modern-stock-management-sub000/internal/application/workorder"
	"github.com/Hakan0032/modern-stock-management-sub000/internal/infrastructure/postgres"
	httpRouter "github.com/Hakan0032/modern-stock-management-sub000/internal/interfaces/http"
	"github.com/Hakan0032/modern-stock-management-sub000/pkg/config"
	"github.com/Hakan0032/modern-stock-management-sub000/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
		App:   cfg.App.Name,
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
	movementRepo := postgres.NewMovementRepository(pool)
	machineRepo := postgres.NewMachineRepository(pool)
	bomRepo := postgres.NewBOMRepository(pool)
	workOrderRepo := postgres.NewWorkOrderRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	applyMovementUC := ledger.NewApplyMovementUseCase(txRunner, movementRepo)
	engine := consumption.NewEngine(txRunner, applyMovementUC, log)

	materialUC := usecase.NewMaterialUseCase(materialRepo)
	machineUC := usecase.NewMachineUseCase(machineRepo, bomRepo)
	bomUC := bom.NewBOMUseCase(bomRepo, machineRepo, materialRepo)
	workOrderUC := workorder.NewWorkOrderUseCase(
		txRunner, workOrderRepo, machineRepo, engine,
		cfg.Production.ScaleByQuantity,
	)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, materialRepo)
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
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		MaterialUC:  materialUC,
		MachineUC:   machineUC,
		MovementUC:  applyMovementUC,
		BOMUC:       bomUC,
		WorkOrderUC: workOrderUC,
		DashboardUC: dashboardUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
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
