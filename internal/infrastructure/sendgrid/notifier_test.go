// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package sendgrid

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/econsultation/econsultation-service/internal/domain/model"
	"github.com/econsultation/econsultation-service/pkg/constants"
	errs "github.com/econsultation/econsultation-service/pkg/errors"
	"github.com/econsultation/econsultation-service/pkg/utils"
)

func testConfig(host string) Config {
	return Config{
		APIKey:    "SG.test",
		FromEmail: "noreply@econsult.gov.et",
		FromName:  "E-Consultation",
		Host:      host,
		Retry:     utils.NewRetryConfig(2, time.Millisecond, time.Millisecond),
	}
}

func TestNewNotifier_Validation(t *testing.T) {
	_, err := NewNotifier(Config{FromEmail: "noreply@econsult.gov.et"})
	assert.Error(t, err)

	_, err = NewNotifier(Config{APIKey: "SG.test", FromEmail: "not-an-address"})
	assert.Error(t, err)
}

func TestNotify_SendsEmail(t *testing.T) {
	var body map[string]any
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, sendPath, r.URL.Path)
		auth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	notifier, err := NewNotifier(testConfig(srv.URL))
	require.NoError(t, err)

	ctx := context.WithValue(context.Background(), constants.RequestIDContextKey, "req-9")
	n := model.NewNotification(ctx, model.NotificationRequestDecided, constants.CommentRequestDecidedSubject, "hana@moe.gov.et",
		model.RequestDecidedEvent{CommentRequest: &model.CommentRequest{
			DraftID: "42", State: model.RequestStateAccepted,
			CommentOpeningDate: "2024-03-01", CommentClosingDate: "2024-03-31",
		}})

	require.NoError(t, notifier.Notify(ctx, n))
	assert.Equal(t, "Bearer SG.test", auth)
	assert.Equal(t, "Comment request for draft 42 accepted", body["subject"])

	headers, ok := body["headers"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "req-9", headers[constants.RequestIDHeader])
}

func TestNotify_Failures(t *testing.T) {
	var calls atomic.Int32
	status := http.StatusBadRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(status)
	}))
	defer srv.Close()

	notifier, err := NewNotifier(testConfig(srv.URL))
	require.NoError(t, err)

	t.Run("recipient must be an email", func(t *testing.T) {
		err := notifier.Notify(context.Background(), &model.Notification{Kind: model.NotificationCommenterAssigned, Recipient: "user-10"})
		var validation errs.Validation
		assert.True(t, errors.As(err, &validation))
		assert.Equal(t, int32(0), calls.Load())
	})

	t.Run("client errors are not retried", func(t *testing.T) {
		calls.Store(0)
		err := notifier.Notify(context.Background(), &model.Notification{Kind: model.NotificationCommenterAssigned, Recipient: "hana@moe.gov.et"})
		require.Error(t, err)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("server errors are retried", func(t *testing.T) {
		calls.Store(0)
		status = http.StatusBadGateway
		err := notifier.Notify(context.Background(), &model.Notification{Kind: model.NotificationCommenterAssigned, Recipient: "hana@moe.gov.et"})
		require.Error(t, err)
		assert.Equal(t, int32(2), calls.Load())
	})
}

func TestRender(t *testing.T) {
	subject, text := render(&model.Notification{Data: model.CommenterAssignedEvent{DraftID: "42", Message: "please start with chapter 2"}})
	assert.Equal(t, "You have been asked to comment on draft 42", subject)
	assert.Contains(t, text, "chapter 2")

	subject, _ = render(&model.Notification{Data: &model.InvitationCreatedEvent{CommentRequest: &model.CommentRequest{DraftID: "42"}}})
	assert.Equal(t, "Invitation to comment on draft 42", subject)

	subject, text = render(&model.Notification{Kind: model.NotificationRequestDecided, Data: map[string]string{}})
	assert.Equal(t, "E-consultation update", subject)
	assert.Contains(t, text, "request_decided")
}
