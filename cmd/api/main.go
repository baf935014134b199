package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jhoicas/gst-invoice-api/internal/application/billing"
	"github.com/jhoicas/gst-invoice-api/internal/infrastructure/metrics"
	httpRouter "github.com/jhoicas/gst-invoice-api/internal/interfaces/http"
	"github.com/jhoicas/gst-invoice-api/pkg/config"
	"github.com/jhoicas/gst-invoice-api/pkg/logger"
)

// @title        GST Invoice API
// @version      1.0
// @description  Cálculo de GST (CGST + SGST) para facturas, importe en letras y validación de GSTIN.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	var m *metrics.Metrics
	var recorder billing.CalculationRecorder
	if cfg.Metrics.Enabled {
		m = metrics.New(cfg.Metrics.Namespace, prometheus.DefaultRegisterer)
		recorder = m
	}

	calculatorUC := billing.NewCalculatorUseCase(billing.NewValidator(), recorder, time.Now)

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:         cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		DocsEnabled:  cfg.Docs.Enabled,
		DocsFilePath: cfg.Docs.FilePath,
		Logger:       log.Zerolog(),
	}, httpRouter.RouterDeps{
		Calculator: calculatorUC,
		Metrics:    m,
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
