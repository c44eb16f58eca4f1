// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/econsultation/econsultation-service/internal/domain/model"
	"github.com/econsultation/econsultation-service/pkg/constants"
)

const tailHelp = "Published subjects:\n  " + constants.InvitationCreatedSubject +
	"\n  " + constants.CommentRequestDecidedSubject +
	"\n  " + constants.CommenterAssignedSubject

func newNotificationsCmd(current func() *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Watch workflow notifications",
	}

	var subject, queue string
	tail := &cobra.Command{
		Use:   "tail",
		Short: "Print notifications as they are published, until interrupted",
		Long:  tailHelp,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			client, err := a.natsClient(cmd.Context())
			if err != nil {
				return err
			}
			return client.SubscribeNotifications(cmd.Context(), subject, queue, func(ctx context.Context, n *model.Notification) {
				if err := a.print(n); err != nil {
					slog.WarnContext(ctx, "failed to print notification", "error", err)
				}
			})
		},
	}
	tail.Flags().StringVar(&subject, "subject", "econsult.>", "subject to watch; wildcards allowed")
	tail.Flags().StringVar(&queue, "queue", "", "queue group to share notifications with other tails")

	cmd.AddCommand(tail)
	return cmd
}
