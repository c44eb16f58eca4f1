// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package sendgrid

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"net/mail"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/econsultation/econsultation-service/internal/domain/model"
	"github.com/econsultation/econsultation-service/internal/domain/port"
	"github.com/econsultation/econsultation-service/pkg/errors"
	"github.com/econsultation/econsultation-service/pkg/redaction"
	"github.com/econsultation/econsultation-service/pkg/utils"
)

const sendPath = "/v3/mail/send"

// emailNotifier implements port.Notifier by sending one email per notification
type emailNotifier struct {
	client *sendgrid.Client
	from   *sgmail.Email
	config Config
}

// NewNotifier creates a SendGrid backed Notifier
func NewNotifier(config Config) (port.Notifier, error) {
	if config.APIKey == "" {
		return nil, errors.NewValidation("SENDGRID_API_KEY is required")
	}
	if _, err := mail.ParseAddress(config.FromEmail); err != nil {
		return nil, errors.NewValidation("SENDGRID_FROM_EMAIL must be a valid email address", err)
	}

	request := sendgrid.GetRequest(config.APIKey, sendPath, config.Host)
	request.Method = http.MethodPost

	return &emailNotifier{
		client: &sendgrid.Client{Request: request},
		from:   sgmail.NewEmail(config.FromName, config.FromEmail),
		config: config,
	}, nil
}

// Notify emails the notification's recipient. Recipients that are not email
// addresses (institution or user ids) cannot be reached by email and are
// rejected without retry.
func (n *emailNotifier) Notify(ctx context.Context, notification *model.Notification) error {
	if notification == nil {
		return errors.NewValidation("notification is required")
	}
	address, err := mail.ParseAddress(notification.Recipient)
	if err != nil {
		return errors.NewValidation(fmt.Sprintf("recipient of %s notification is not an email address", notification.Kind), err)
	}

	subject, text := render(notification)
	if n.config.PortalURL != "" {
		text += "\n\n" + n.config.PortalURL
	}
	htmlBody := "<p>" + strings.ReplaceAll(html.EscapeString(text), "\n", "<br>") + "</p>"

	message := sgmail.NewSingleEmail(n.from, subject, sgmail.NewEmail(address.Name, address.Address), text, htmlBody)
	for key, value := range notification.Headers {
		message.SetHeader(key, value)
	}

	return utils.RetryWithExponentialBackoff(ctx, n.config.Retry, func(ctx context.Context) error {
		response, err := n.client.SendWithContext(ctx, message)
		if err != nil {
			return errors.NewServiceUnavailable("failed to send email", err)
		}
		if response.StatusCode >= http.StatusBadRequest {
			slog.WarnContext(ctx, "sendgrid rejected email",
				"status", response.StatusCode,
				"recipient", redaction.RedactEmail(address.Address),
			)
			if response.StatusCode < http.StatusInternalServerError && response.StatusCode != http.StatusTooManyRequests {
				return errors.NewValidation(fmt.Sprintf("sendgrid error: status %d", response.StatusCode))
			}
			return errors.NewServiceUnavailable(fmt.Sprintf("sendgrid error: status %d", response.StatusCode))
		}

		slog.DebugContext(ctx, "notification email sent",
			"kind", notification.Kind,
			"recipient", redaction.RedactEmail(address.Address),
		)
		return nil
	})
}

// Close implements port.Notifier; the SendGrid client holds no connection.
func (n *emailNotifier) Close() error {
	return nil
}

// render builds the subject and plain-text body for a notification
func render(notification *model.Notification) (string, string) {
	switch event := notification.Data.(type) {
	case model.RequestDecidedEvent:
		return renderDecision(event.CommentRequest)
	case *model.RequestDecidedEvent:
		return renderDecision(event.CommentRequest)
	case model.CommenterAssignedEvent:
		return renderAssignment(event)
	case *model.CommenterAssignedEvent:
		return renderAssignment(*event)
	case model.InvitationCreatedEvent:
		return renderInvitation(event.CommentRequest)
	case *model.InvitationCreatedEvent:
		return renderInvitation(event.CommentRequest)
	}
	return "E-consultation update", fmt.Sprintf("There is a new %s update for you.", notification.Kind)
}

func renderDecision(cr *model.CommentRequest) (string, string) {
	if cr == nil {
		return "Comment request decided", "A comment request was decided."
	}
	subject := fmt.Sprintf("Comment request for draft %s %s", cr.DraftID, cr.State)
	var b strings.Builder
	fmt.Fprintf(&b, "The comment request for draft %s was %s.", cr.DraftID, cr.State)
	if cr.State == model.RequestStateAccepted && cr.CommentOpeningDate != "" {
		fmt.Fprintf(&b, "\nComments are open from %s to %s.", cr.CommentOpeningDate, cr.CommentClosingDate)
	}
	if cr.DecisionMessage != "" {
		fmt.Fprintf(&b, "\n\n%s", cr.DecisionMessage)
	}
	return subject, b.String()
}

func renderAssignment(event model.CommenterAssignedEvent) (string, string) {
	subject := fmt.Sprintf("You have been asked to comment on draft %s", event.DraftID)
	text := fmt.Sprintf("You were assigned as a commenter for draft %s.", event.DraftID)
	if event.Message != "" {
		text += "\n\n" + event.Message
	}
	return subject, text
}

func renderInvitation(cr *model.CommentRequest) (string, string) {
	if cr == nil {
		return "Invitation to comment", "You have been invited to comment on a draft."
	}
	subject := fmt.Sprintf("Invitation to comment on draft %s", cr.DraftID)
	text := fmt.Sprintf("You have been invited to comment on draft %s.", cr.DraftID)
	if cr.Message != "" {
		text += "\n\n" + cr.Message
	}
	return subject, text
}
