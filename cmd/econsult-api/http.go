// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net"
	"net/http"
	"sync"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/econsultation/econsultation-service/cmd/econsult-api/service"
	internalService "github.com/econsultation/econsultation-service/internal/service"
	"github.com/econsultation/econsultation-service/pkg/constants"
	"github.com/econsultation/econsultation-service/pkg/log"
)

// handleHTTPServer wires the dependencies, starts the gateway and stops it
// gracefully once ctx is cancelled
func handleHTTPServer(ctx context.Context, cfg serverConfig, wg *sync.WaitGroup) error {
	backend := service.Backend(ctx)
	notifier := service.Notifier(ctx)
	authenticator := service.AuthService(ctx)

	api := service.NewAPI(backend, notifier, internalService.NewWorkflowMetrics(),
		service.WithReadinessChecks(service.ReadinessChecks(ctx)),
		service.WithRequestTimeout(cfg.RequestTimeout),
		service.WithMaxBodyBytes(cfg.MaxBodyBytes),
	)

	srv := &http.Server{
		Addr:              cfg.addr(),
		Handler:           otelhttp.NewHandler(api.Handler(authenticator), constants.ServiceName),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return context.WithoutCancel(ctx)
		},
	}

	listener, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return err
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		slog.InfoContext(ctx, "HTTP server listening", "addr", listener.Addr().String())
		if err := srv.Serve(listener); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "HTTP server failed", "error", err, log.PriorityCritical())
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		slog.InfoContext(shutdownCtx, "shutting down HTTP server", "timeout", cfg.ShutdownTimeout)
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "failed to shut down HTTP server", "error", err)
		}
		if err := notifier.Close(); err != nil {
			slog.ErrorContext(shutdownCtx, "failed to close notifier", "error", err)
		}
	}()

	return nil
}
