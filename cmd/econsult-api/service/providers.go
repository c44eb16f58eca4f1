// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log"
	"log/slog"
	"os"
	"sync"

	"github.com/econsultation/econsultation-service/internal/domain/port"
	"github.com/econsultation/econsultation-service/internal/infrastructure/auth"
	"github.com/econsultation/econsultation-service/internal/infrastructure/econsult"
	infrastructure "github.com/econsultation/econsultation-service/internal/infrastructure/mock"
	"github.com/econsultation/econsultation-service/internal/infrastructure/nats"
	"github.com/econsultation/econsultation-service/internal/infrastructure/sendgrid"
	"github.com/econsultation/econsultation-service/pkg/constants"
)

var (
	natsClient *nats.NATSClient
	natsDoOnce sync.Once

	backend       port.Backend
	backendDoOnce sync.Once
)

func natsInit(ctx context.Context) {
	natsDoOnce.Do(func() {
		client, err := nats.NewClient(ctx, nats.NewConfigFromEnv())
		if err != nil {
			log.Fatalf("failed to create NATS client: %v", err)
		}
		natsClient = client
	})
}

// GetNATSClient returns the shared NATS client, connecting on first use
func GetNATSClient(ctx context.Context) *nats.NATSClient {
	natsInit(ctx)
	return natsClient
}

// Backend initializes the backend implementation based on ECONSULT_SOURCE
func Backend(ctx context.Context) port.Backend {
	backendDoOnce.Do(func() {
		source := os.Getenv(constants.EnvBackendSource)
		if source == "" {
			source = constants.SourceAPI
		}
		if err := constants.ValidateSource(source); err != nil {
			log.Fatalf("invalid %s: %v", constants.EnvBackendSource, err)
		}

		switch source {
		case constants.SourceMock:
			slog.InfoContext(ctx, "initializing mock e-consultation backend")
			backend = infrastructure.NewSharedMockBackend()
		case constants.SourceAPI:
			slog.InfoContext(ctx, "initializing e-consultation REST backend")
			client, err := econsult.NewClient(ctx, econsult.NewConfigFromEnv())
			if err != nil {
				log.Fatalf("failed to initialize e-consultation backend client: %v", err)
			}
			backend = client
		}
	})
	return backend
}

// AuthService initializes the authentication service implementation
func AuthService(ctx context.Context) port.Authenticator {
	var authService port.Authenticator

	authSource := os.Getenv(constants.EnvAuthSource)
	if authSource == "" {
		authSource = "jwt"
	}

	switch authSource {
	case "mock":
		slog.InfoContext(ctx, "initializing mock authentication service")
		authService = infrastructure.NewMockAuthService()
	case "jwt":
		slog.InfoContext(ctx, "initializing JWT authentication service")
		jwtAuth, err := auth.NewJWTAuth(auth.NewJWTAuthConfigFromEnv())
		if err != nil {
			log.Fatalf("failed to initialize JWT authentication service: %v", err)
		}
		authService = jwtAuth
	case "jwks":
		slog.InfoContext(ctx, "initializing JWKS authentication service")
		jwksAuth, err := auth.NewJWKSAuth(auth.NewJWTAuthConfigFromEnv())
		if err != nil {
			log.Fatalf("failed to initialize JWKS authentication service: %v", err)
		}
		authService = jwksAuth
	default:
		log.Fatalf("unsupported authentication service implementation: %s", authSource)
	}

	return authService
}

// Notifier initializes the notification channel based on NOTIFIER_SOURCE
func Notifier(ctx context.Context) port.Notifier {
	var notifier port.Notifier

	notifierSource := os.Getenv(constants.EnvNotifierSource)
	if notifierSource == "" {
		notifierSource = "nats"
	}

	switch notifierSource {
	case "nats":
		slog.InfoContext(ctx, "initializing NATS notifier")
		notifier = nats.NewNotifier(GetNATSClient(ctx))
	case "sendgrid":
		slog.InfoContext(ctx, "initializing SendGrid notifier")
		sg, err := sendgrid.NewNotifier(sendgrid.NewConfigFromEnv())
		if err != nil {
			log.Fatalf("failed to initialize SendGrid notifier: %v", err)
		}
		notifier = sg
	case "mock":
		slog.InfoContext(ctx, "initializing mock notifier")
		notifier = infrastructure.NewMockNotifier()
	default:
		log.Fatalf("unsupported notifier implementation: %s", notifierSource)
	}

	return notifier
}

// ReadinessChecks returns the dependencies /readyz checks
func ReadinessChecks(ctx context.Context) map[string]func(context.Context) error {
	checks := map[string]func(context.Context) error{
		"backend": Backend(ctx).IsReady,
	}
	if natsClient != nil {
		checks["nats"] = natsClient.IsReady
	}
	return checks
}
