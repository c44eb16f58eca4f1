// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/econsultation/econsultation-service/internal/domain/model"
)

func newDraftsCmd(current func() *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drafts",
		Short: "Browse drafts and answer comment-opening requests",
	}

	var (
		page  int
		title string
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List drafts, optionally filtered by short title",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			drafts, err := a.draftReader().ListDrafts(a.context(cmd.Context()), a.profile.principal(), model.DraftFilter{
				Page:       page,
				ShortTitle: title,
			})
			if err != nil {
				return err
			}
			return a.print(drafts)
		},
	}
	list.Flags().IntVar(&page, "page", 0, "page number")
	list.Flags().StringVar(&title, "title", "", "short title search text")

	get := &cobra.Command{
		Use:   "get DRAFT_ID",
		Short: "Show a draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			draft, err := a.draftReader().GetDraft(a.context(cmd.Context()), a.profile.principal(), args[0])
			if err != nil {
				return err
			}
			return a.print(draft)
		},
	}

	var message string
	rejectOpening := &cobra.Command{
		Use:   "reject-opening DRAFT_ID",
		Short: "Decline a request to open a draft for comment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			if err := a.draftWriter().RejectCommentOpening(a.context(cmd.Context()), args[0], message); err != nil {
				return err
			}
			return a.print(map[string]string{"draft_id": args[0], "status": "rejected"})
		},
	}
	rejectOpening.Flags().StringVar(&message, "message", "", "reason shown to the draft owner")

	cmd.AddCommand(list, get, rejectOpening)
	return cmd
}
