// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
)

func newReflectionsCmd(current func() *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reflections",
		Short: "Submit and list reflections on comment requests",
	}

	var text, author string
	submit := &cobra.Command{
		Use:   "submit REQUEST_ID",
		Short: "Submit a reflection; every call records a new one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			if author == "" {
				author = a.profile.User.ID
			}
			reflection, err := a.reflectionWriter().SubmitReflection(a.context(cmd.Context()), args[0], author, text)
			if err != nil {
				return err
			}
			return a.print(reflection)
		},
	}
	submit.Flags().StringVar(&text, "text", "", "reflection text")
	submit.Flags().StringVar(&author, "author", "", "author user id (defaults to the profile user)")

	list := &cobra.Command{
		Use:   "list REQUEST_ID",
		Short: "List the reflections of a comment request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			reflections, err := a.reflectionWriter().ListReflections(a.context(cmd.Context()), args[0])
			if err != nil {
				return err
			}
			return a.print(reflections)
		},
	}

	cmd.AddCommand(submit, list)
	return cmd
}
