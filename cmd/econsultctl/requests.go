// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"strconv"

	"github.com/spf13/cobra"
)

func newRequestsCmd(current func() *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "requests",
		Aliases: []string{"comment-requests"},
		Short:   "Invite commenters and decide comment requests",
	}

	var (
		institutions []string
		emails       []string
		remark       string
	)
	invite := &cobra.Command{
		Use:   "invite DRAFT_ID",
		Short: "Invite institutions to comment on a draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			requests, err := a.requestWriter().CreateInstitutionInvitation(a.context(cmd.Context()), args[0], institutions, remark)
			if err != nil {
				return err
			}
			return a.print(requests)
		},
	}
	invite.Flags().StringSliceVar(&institutions, "institution", nil, "institution id (repeatable)")
	invite.Flags().StringVar(&remark, "remark", "", "invitation remark")

	invitePeople := &cobra.Command{
		Use:   "invite-people DRAFT_ID",
		Short: "Invite individuals by email to comment on a draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			requests, err := a.requestWriter().CreatePersonalInvitation(a.context(cmd.Context()), args[0], emails, remark)
			if err != nil {
				return err
			}
			return a.print(requests)
		},
	}
	invitePeople.Flags().StringSliceVar(&emails, "email", nil, "email address (repeatable)")
	invitePeople.Flags().StringVar(&remark, "remark", "", "invitation remark")

	var personal string
	list := &cobra.Command{
		Use:   "list DRAFT_ID",
		Short: "List the comment requests of a draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			var filter *bool
			if personal != "" {
				v, err := strconv.ParseBool(personal)
				if err != nil {
					return err
				}
				filter = &v
			}
			requests, err := a.requestReader().ListCommentRequests(a.context(cmd.Context()), args[0], filter)
			if err != nil {
				return err
			}
			return a.print(requests)
		},
	}
	list.Flags().StringVar(&personal, "personal", "", "only personal (true) or institution (false) requests")

	get := &cobra.Command{
		Use:   "get REQUEST_ID",
		Short: "Show a comment request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			cr, err := a.requestReader().GetCommentRequest(a.context(cmd.Context()), args[0])
			if err != nil {
				return err
			}
			return a.print(cr)
		},
	}

	var opening, closing string
	accept := &cobra.Command{
		Use:   "accept REQUEST_ID",
		Short: "Accept a pending comment request and open the draft for comment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			cr, err := a.requestWriter().AcceptRequest(a.context(cmd.Context()), args[0], opening, closing, remark)
			if err != nil {
				return err
			}
			return a.print(cr)
		},
	}
	accept.Flags().StringVar(&opening, "opening", "", "comment opening date (YYYY-MM-DD)")
	accept.Flags().StringVar(&closing, "closing", "", "comment closing date (YYYY-MM-DD)")
	accept.Flags().StringVar(&remark, "remark", "", "acceptance remark")
	_ = accept.MarkFlagRequired("opening")
	_ = accept.MarkFlagRequired("closing")

	var message string
	reject := &cobra.Command{
		Use:   "reject REQUEST_ID",
		Short: "Reject a pending comment request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			cr, err := a.requestWriter().RejectRequest(a.context(cmd.Context()), args[0], message)
			if err != nil {
				return err
			}
			return a.print(cr)
		},
	}
	reject.Flags().StringVar(&message, "message", "", "reason for rejecting")

	var commenters []string
	assign := &cobra.Command{
		Use:   "assign REQUEST_ID",
		Short: "Assign commenters to an accepted comment request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			assignment, err := a.assignmentWriter().AssignCommenters(a.context(cmd.Context()), args[0], commenters, message)
			if err != nil {
				return err
			}
			return a.print(assignment)
		},
	}
	assign.Flags().StringSliceVar(&commenters, "commenter", nil, "commenter user id (repeatable)")
	assign.Flags().StringVar(&message, "message", "", "message sent to the commenters")

	cmd.AddCommand(invite, invitePeople, list, get, accept, reject, assign)
	return cmd
}
