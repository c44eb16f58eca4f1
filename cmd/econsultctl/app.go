// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/econsultation/econsultation-service/internal/domain/model"
	"github.com/econsultation/econsultation-service/internal/domain/port"
	"github.com/econsultation/econsultation-service/internal/infrastructure/econsult"
	"github.com/econsultation/econsultation-service/internal/infrastructure/mock"
	"github.com/econsultation/econsultation-service/internal/infrastructure/nats"
	"github.com/econsultation/econsultation-service/internal/infrastructure/sendgrid"
	internalService "github.com/econsultation/econsultation-service/internal/service"
	"github.com/econsultation/econsultation-service/pkg/constants"
	"github.com/econsultation/econsultation-service/pkg/log"
)

// app holds the dependencies of one CLI invocation
type app struct {
	profile  Profile
	backend  port.Backend
	notifier port.Notifier
	nats     *nats.NATSClient
	out      io.Writer
}

func newApp(ctx context.Context, profile Profile, out io.Writer) (*app, error) {
	a := &app{profile: profile, out: out}

	switch profile.Source {
	case constants.SourceMock:
		a.backend = mock.NewSharedMockBackend()
	default:
		config := econsult.DefaultConfig()
		config.BaseURL = profile.BaseURL
		config.StaticToken = profile.Token
		if profile.Timeout > 0 {
			config.Timeout = profile.Timeout
		}
		client, err := econsult.NewClient(ctx, config)
		if err != nil {
			return nil, err
		}
		a.backend = client
	}

	switch profile.Notifier {
	case "":
	case "nats":
		client, err := a.natsClient(ctx)
		if err != nil {
			return nil, err
		}
		a.notifier = nats.NewNotifier(client)
	case "sendgrid":
		notifier, err := sendgrid.NewNotifier(sendgrid.NewConfigFromEnv())
		if err != nil {
			return nil, err
		}
		a.notifier = notifier
	default:
		return nil, fmt.Errorf("unsupported notifier: %s", profile.Notifier)
	}

	return a, nil
}

func (a *app) natsClient(ctx context.Context) (*nats.NATSClient, error) {
	if a.nats != nil {
		return a.nats, nil
	}
	config := nats.NewConfigFromEnv()
	if a.profile.NATS.URL != "" {
		config.URL = a.profile.NATS.URL
	}
	config.CredentialsFile = a.profile.NATS.Credentials

	client, err := nats.NewClient(ctx, config)
	if err != nil {
		return nil, err
	}
	a.nats = client
	return client, nil
}

func (a *app) close() {
	if a.notifier != nil {
		if err := a.notifier.Close(); err != nil {
			slog.Warn("failed to close notifier", "error", err)
		}
	}
	// the NATS notifier owns the client and has closed it already
	if a.nats != nil && a.profile.Notifier != "nats" {
		if err := a.nats.Close(); err != nil {
			slog.Warn("failed to close NATS client", "error", err)
		}
	}
}

// context attaches the operator principal and a request id to ctx
func (a *app) context(ctx context.Context) context.Context {
	requestID := uuid.NewString()
	ctx = context.WithValue(ctx, constants.RequestIDContextKey, requestID)
	ctx = log.AppendCtx(ctx, slog.String("request_id", requestID))
	return model.ContextWithPrincipal(ctx, a.profile.principal())
}

func (a *app) print(v any) error {
	encoder := json.NewEncoder(a.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func (a *app) draftReader() internalService.DraftReader {
	return internalService.NewDraftReaderOrchestrator(internalService.WithDraftReader(a.backend))
}

func (a *app) draftWriter() internalService.DraftWriter {
	return internalService.NewDraftWriterOrchestrator(
		internalService.WithDraftReader(a.backend),
		internalService.WithDraftWriter(a.backend),
	)
}

func (a *app) requestReader() internalService.CommentRequestReader {
	return internalService.NewCommentRequestReaderOrchestrator(internalService.WithCommentRequestReader(a.backend))
}

func (a *app) requestWriter() internalService.CommentRequestWriter {
	return internalService.NewCommentRequestWriterOrchestrator(
		internalService.WithCommentRequestWriter(a.backend),
		internalService.WithCommentRequestWriterReader(a.backend),
		internalService.WithCommentRequestNotifier(a.notifier),
	)
}

func (a *app) assignmentWriter() internalService.CommenterAssignmentWriter {
	return internalService.NewCommenterAssignmentWriterOrchestrator(
		internalService.WithAssignmentWriter(a.backend),
		internalService.WithAssignmentReader(a.backend),
		internalService.WithAssignmentRequestReader(a.backend),
		internalService.WithAssignmentDirectory(a.backend),
		internalService.WithAssignmentNotifier(a.notifier),
	)
}

func (a *app) reflectionWriter() internalService.ReflectionWriter {
	return internalService.NewReflectionWriterOrchestrator(
		internalService.WithReflectionWriter(a.backend),
		internalService.WithReflectionReader(a.backend),
		internalService.WithReflectionAssignmentReader(a.backend),
		internalService.WithReflectionRequestReader(a.backend),
	)
}

func (a *app) directory() internalService.DirectoryReader {
	return internalService.NewDirectoryReaderOrchestrator(internalService.WithDirectory(a.backend))
}

func (a *app) directoryWriter() internalService.DirectoryWriter {
	return internalService.NewDirectoryWriterOrchestrator(
		internalService.WithDirectoryWriter(a.backend),
		internalService.WithDirectoryWriterReader(a.backend),
	)
}
