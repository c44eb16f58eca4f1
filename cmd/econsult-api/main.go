// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// The econsult-api command serves the e-consultation gateway API.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	logging "github.com/econsultation/econsultation-service/pkg/log"
	"github.com/econsultation/econsultation-service/pkg/utils"
)

func main() {
	cfg, err := loadServerConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	flag.StringVar(&cfg.Port, "p", cfg.Port, "listen port")
	flag.StringVar(&cfg.Bind, "bind", cfg.Bind, "interface to bind on")
	flag.BoolVar(&cfg.Debug, "d", cfg.Debug, "enable debug logging")
	flag.Parse()

	if cfg.Debug {
		if err := os.Setenv("LOG_LEVEL", "debug"); err != nil {
			log.Fatalf("failed to set LOG_LEVEL: %v", err)
		}
	}
	logging.InitStructureLogConfig()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otelShutdown, err := utils.SetupOTelSDK(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "error setting up OpenTelemetry SDK", "error", err)
		os.Exit(1)
	}
	defer func() {
		if shutdownErr := otelShutdown(context.Background()); shutdownErr != nil {
			slog.ErrorContext(ctx, "error shutting down OpenTelemetry SDK", "error", shutdownErr)
		}
	}()

	var wg sync.WaitGroup
	if err := handleHTTPServer(ctx, cfg, &wg); err != nil {
		slog.ErrorContext(ctx, "failed to start HTTP server", "error", err)
		os.Exit(1)
	}

	<-ctx.Done()
	slog.InfoContext(ctx, "shutdown signal received")
	wg.Wait()
	slog.InfoContext(ctx, "exited")
}
