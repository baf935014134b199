package http

import (
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/swaggo/swag"

	"github.com/jhoicas/gst-invoice-api/docs"
	"github.com/jhoicas/gst-invoice-api/internal/application/billing"
	"github.com/jhoicas/gst-invoice-api/internal/application/dto"
	"github.com/jhoicas/gst-invoice-api/internal/infrastructure/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Calculator *billing.CalculatorUseCase
	Metrics    *metrics.Metrics // nil = sin /metrics ni métricas HTTP
}

// AppConfig opciones de la aplicación Fiber.
type AppConfig struct {
	Name         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	DocsEnabled  bool
	DocsFilePath string
	Logger       zerolog.Logger
}

// NewApp crea la aplicación Fiber con middlewares, /health, docs y las rutas de la API.
func NewApp(cfg AppConfig, deps RouterDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(RequestLogger(cfg.Logger))
	if deps.Metrics != nil {
		app.Use(MetricsMiddleware(deps.Metrics))
	}
	// recover va después del logger y las métricas para que un panic quede registrado como 500.
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs (solo si el JSON generado existe)
	if cfg.DocsEnabled && cfg.DocsFilePath != "" {
		if _, err := os.Stat(cfg.DocsFilePath); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.DocsFilePath,
				Path:     "docs",
				Title:    "GST Invoice API",
			}))
		} else {
			cfg.Logger.Warn().Str("file", cfg.DocsFilePath).Msg("swagger.json no encontrado, /docs deshabilitado")
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: cfg.Name})
	})

	Router(app, deps)
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))
	}

	api := app.Group("/api/v1")

	// Especificación OpenAPI registrada por el paquete docs
	api.Get("/openapi.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.SendString(doc)
	})

	gstHandler := NewGSTHandler(deps.Calculator)

	gstGroup := api.Group("/gst")
	gstGroup.Get("/rates", gstHandler.Rates)
	gstGroup.Get("/amount-in-words", gstHandler.AmountInWords)
	gstGroup.Post("/line-items/calculate", gstHandler.CalculateLineItem)
	gstGroup.Post("/invoices/calculate", gstHandler.CalculateInvoice)
	gstGroup.Post("/invoices/verify", gstHandler.VerifyInvoice)

	api.Get("/gstin/:gstin", gstHandler.CheckGSTIN)
}
