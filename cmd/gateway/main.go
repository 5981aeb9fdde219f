package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"jurisdiction_gateway/internal/app/bootstrap"
	"jurisdiction_gateway/internal/app/service"
	"jurisdiction_gateway/internal/infrastructure/configloader"
	"jurisdiction_gateway/internal/infrastructure/restapi"
	"jurisdiction_gateway/internal/pkg/logger"
	"jurisdiction_gateway/internal/pkg/metrics"
)

func main() {
	cfgPath := configloader.GetEnv(configloader.EnvConfigPath, configloader.DefaultConfigPath)
	cfg, err := configloader.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL: failed to load configuration from %s: %v\n", cfgPath, err)
		os.Exit(1)
	}

	zapLogger, err := logger.Init(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL: failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer zapLogger.Sync() //nolint:errcheck

	logger.Info("Jurisdiction gateway starting", "config", cfgPath, "expected_chain_id", cfg.Network.ExpectedChainID)
	appLogger := logger.NewSlogAdapter()

	metrics.MustRegisterMetrics()

	rt, err := bootstrap.NewRuntime(cfg, appLogger)
	if err != nil {
		logger.Fatal("Failed to initialize gateway runtime", "error", err)
	}
	defer rt.Close()

	if cfg.Contracts.AvatarNFTAddress == "" {
		logger.Warn("contracts.avatarNftAddress is not set, reputation endpoints will reject requests")
	}

	batch := service.NewBatchReader(rt.Gateway, cfg.Performance.MaxConcurrentRoutines, cfg.Performance.MaxBatchCalls, appLogger)
	handlers := restapi.Handlers{
		Contracts:     restapi.NewContractHandler(rt.Networks, rt.Descriptors, rt.Gateway, batch),
		Cases:         restapi.NewCaseHandler(rt.Networks, service.NewCaseContract(rt.Gateway, rt.Descriptors)),
		Jurisdictions: restapi.NewJurisdictionHandler(rt.Networks, service.NewJurisdictionContract(rt.Gateway, rt.Descriptors)),
		Profiles: restapi.NewProfileHandler(rt.Networks,
			service.NewAvatarNFTContract(rt.Gateway, rt.Descriptors, cfg.Contracts.AvatarNFTAddress)),
		Network: restapi.NewNetworkHandler(rt.Networks, rt.Definitions),
	}
	router := restapi.SetupRouter(handlers, restapi.RouterOptions{
		Logger:    zapLogger.Named("http"),
		RateLimit: cfg.RateLimit,
		Swagger:   cfg.Swagger,
	})
	if cfg.Swagger.Enabled {
		logger.Info("Swagger UI enabled", "path", "/swagger/index.html", "spec", cfg.Swagger.SpecFile)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		zapLogger.Info("HTTP server starting", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start HTTP server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutdown signal received, stopping HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server forced to shutdown", "error", err)
	}
	logger.Info("Jurisdiction gateway stopped")
}
