package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/facturas-graph/internal/app"
	"github.com/jhoicas/facturas-graph/internal/domain/entity"
	"github.com/jhoicas/facturas-graph/internal/infrastructure/memory"
	"github.com/jhoicas/facturas-graph/internal/interfaces/graphql"
	httpRouter "github.com/jhoicas/facturas-graph/internal/interfaces/http"
	"github.com/jhoicas/facturas-graph/internal/observability"
	"github.com/jhoicas/facturas-graph/pkg/config"
	"github.com/jhoicas/facturas-graph/pkg/logger"
)

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

	store, err := memory.LoadSeedFile(cfg.Store.SeedFile)
	if err != nil {
		log.Fatal().Err(err).Str("seed", cfg.Store.SeedFile).Msg("carga del seed")
	}
	ev := log.Info()
	for _, k := range entity.Kinds() {
		ev = ev.Int(string(k), store.Len(k))
	}
	ev.Str("ids", cfg.Store.IDStrategy).Bool("memoize", cfg.Graph.Memoize).Msg("almacén en memoria listo")

	var (
		metrics     *observability.Metrics
		metricsHTTP = promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{})
	)
	if cfg.Metrics.Enabled {
		metrics, err = observability.NewMetrics(prometheus.DefaultRegisterer)
		if err != nil {
			log.Fatal().Err(err).Msg("registro de métricas")
		}
	}

	engine := app.NewEngine(store, app.EngineOptions{
		IDStrategy: cfg.Store.IDStrategy,
		Memoize:    cfg.Graph.Memoize,
		Metrics:    metrics,
		Log:        log.Component("graph"),
	})
	parser, err := graphql.NewParser()
	if err != nil {
		log.Fatal().Err(err).Msg("esquema GraphQL")
	}

	fiberApp := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: cfg.IsProduction(),
		ReadTimeout:           time.Second * 10,
		WriteTimeout:          time.Second * 10,
		IdleTimeout:           time.Second * 60,
	})
	fiberApp.Use(recover.New())

	deps := httpRouter.RouterDeps{
		GraphQL:     httpRouter.NewGraphQLHandler(parser, engine, log.Component("http")),
		ServiceName: cfg.App.Name,
	}
	if cfg.Metrics.Enabled {
		deps.Metrics = metricsHTTP
	}
	httpRouter.Router(fiberApp, deps)

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor GraphQL en /graphql")
		if err := fiberApp.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := fiberApp.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
