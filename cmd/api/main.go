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
	appanalytics "github.com/tu-usuario/gestion-pyme/internal/application/analytics"
	"github.com/tu-usuario/gestion-pyme/internal/application/usecase"
	infraexcel "github.com/tu-usuario/gestion-pyme/internal/infrastructure/excel"
	infrapdf "github.com/tu-usuario/gestion-pyme/internal/infrastructure/pdf"
	"github.com/tu-usuario/gestion-pyme/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/gestion-pyme/internal/interfaces/http"
	"github.com/tu-usuario/gestion-pyme/pkg/config"
	"github.com/tu-usuario/gestion-pyme/pkg/logger"
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

	supplierRepo := postgres.NewSupplierRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	supplierUC := usecase.NewSupplierUseCase(supplierRepo, invoiceRepo)
	invoiceUC := usecase.NewInvoiceUseCase(invoiceRepo, paymentRepo, txRunner)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, paymentRepo)
	paymentUC := usecase.NewPaymentUseCase(paymentRepo, supplierRepo, employeeRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(invoiceRepo, employeeRepo, paymentRepo, log)
	reportUC := usecase.NewReportUseCase(
		paymentRepo, dashboardUC,
		infraexcel.NewPaymentsReport(), infrapdf.NewSummaryReport(),
	)
	authUC := usecase.NewAuthUseCase(userRepo, usecase.JWTConfig{
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
		Title:    "Gestión PyME API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SupplierUC:  supplierUC,
		InvoiceUC:   invoiceUC,
		EmployeeUC:  employeeUC,
		PaymentUC:   paymentUC,
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
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
