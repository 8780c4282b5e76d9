// eliteclan-api sirve el API público de contenido del sitio. Con
// DATABASE_URL configurada lee de Postgres (con fallback a fixtures);
// sin base, sirve directo el dataset embebido.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/eliteclan/backoffice/internal/app"
	"github.com/eliteclan/backoffice/internal/cache"
	"github.com/eliteclan/backoffice/internal/config"
	httpserver "github.com/eliteclan/backoffice/internal/http"
	"github.com/eliteclan/backoffice/internal/observability/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	// .env es opcional; las vars reales del entorno ganan.
	_ = godotenv.Load()

	cfgPath := flag.String("config", "", "ruta al YAML de configuración")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return fmt.Errorf("cargando configuración: %w", err)
	}

	logger.Init(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, ServiceName: "eliteclan-api"})
	defer logger.Sync()
	log := logger.Named("main")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gw, cleanup, err := app.BuildGateway(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	cacheClient, err := cache.New(cache.Config{
		Driver:   cfg.Cache.Driver,
		Addr:     cfg.Cache.Addr,
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,
		Prefix:   cfg.Cache.Prefix,
	})
	if err != nil {
		return fmt.Errorf("inicializando cache: %w", err)
	}
	defer cacheClient.Close()

	api := httpserver.NewAPI(gw, cacheClient, config.Duration(cfg.Server.CacheTTL))
	router := httpserver.NewRouter(api, cfg.Server.CORSAllowedOrigins)

	mode := "fixtures"
	if gw.Configured {
		mode = "configured"
	}
	log.Info("arrancando API", zap.String("addr", cfg.Server.Addr), zap.String("mode", mode))

	return httpserver.Serve(ctx, cfg.Server.Addr, router)
}
