// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/econsultation/econsultation-service/internal/domain/model"
)

func newDirectoryCmd(current func() *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "directory",
		Short: "Read and maintain institutions, regions, sectors and users",
	}

	listing := func(use, short string, fetch func(ctx context.Context, a *app) (any, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				a := current()
				items, err := fetch(a.context(cmd.Context()), a)
				if err != nil {
					return err
				}
				return a.print(items)
			},
		}
	}

	users := &cobra.Command{
		Use:   "users INSTITUTION_ID",
		Short: "List the users of an institution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			users, err := a.directory().ListUsersByInstitution(a.context(cmd.Context()), args[0])
			if err != nil {
				return err
			}
			return a.print(users)
		},
	}

	cmd.AddCommand(
		listing("institutions", "List institutions", func(ctx context.Context, a *app) (any, error) {
			return a.directory().ListInstitutions(ctx)
		}),
		listing("regions", "List regions", func(ctx context.Context, a *app) (any, error) {
			return a.directory().ListRegions(ctx)
		}),
		listing("sectors", "List sectors", func(ctx context.Context, a *app) (any, error) {
			return a.directory().ListSectors(ctx)
		}),
		listing("commenters", "List the commenters of the profile user's institution", func(ctx context.Context, a *app) (any, error) {
			return a.directory().ListCommenters(ctx)
		}),
		users,
		newAddInstitutionCmd(current),
		newRenameRegionCmd(current),
		newSaveUserCmd(current, false),
		newSaveUserCmd(current, true),
	)
	return cmd
}

func newAddInstitutionCmd(current func() *app) *cobra.Command {
	var institution model.Institution
	cmd := &cobra.Command{
		Use:   "add-institution NAME",
		Short: "Register an institution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			institution.Name = args[0]
			created, err := a.directoryWriter().CreateInstitution(a.context(cmd.Context()), &institution)
			if err != nil {
				return err
			}
			return a.print(created)
		},
	}
	cmd.Flags().StringVar(&institution.InstitutionTypeID, "type", "", "institution type id")
	cmd.Flags().StringVar(&institution.RegionID, "region", "", "region id")
	cmd.Flags().StringVar(&institution.SectorID, "sector", "", "sector id")
	cmd.Flags().StringVar(&institution.Email, "email", "", "contact email")
	cmd.Flags().StringVar(&institution.Telephone, "telephone", "", "contact telephone")
	cmd.Flags().StringVar(&institution.Address, "address", "", "postal address")
	cmd.Flags().BoolVar(&institution.CanCreateDraft, "can-create-draft", false, "allow the institution to upload drafts")
	return cmd
}

func newRenameRegionCmd(current func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rename-region ID NAME",
		Short: "Rename a region",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			region, err := a.directoryWriter().UpdateRegion(a.context(cmd.Context()), &model.Region{ID: args[0], Name: args[1]})
			if err != nil {
				return err
			}
			return a.print(region)
		},
	}
}

// newSaveUserCmd builds add-user, or edit-user when editing is set
func newSaveUserCmd(current func() *app, editing bool) *cobra.Command {
	var (
		profile model.UserProfile
		role    string
	)
	cmd := &cobra.Command{
		Use:   "add-user",
		Short: "Open a portal account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			profile.Role = model.Role(role)
			if parsed := model.ParseRole(role); parsed != model.RoleGuest {
				profile.Role = parsed
			}
			save := a.directoryWriter().CreateUser
			if editing {
				profile.ID = args[0]
				save = a.directoryWriter().UpdateUser
			}
			user, err := save(a.context(cmd.Context()), &profile)
			if err != nil {
				return err
			}
			return a.print(user)
		},
	}
	if editing {
		cmd.Use = "edit-user ID"
		cmd.Short = "Edit a portal account"
		cmd.Args = cobra.ExactArgs(1)
	}
	cmd.Flags().StringVar(&profile.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&profile.MiddleName, "middle-name", "", "middle name")
	cmd.Flags().StringVar(&profile.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&profile.MobileNumber, "mobile", "", "mobile number")
	cmd.Flags().StringVar(&profile.Email, "email", "", "email address")
	cmd.Flags().StringVar(&role, "role", "", "role name, e.g. Commenter")
	cmd.Flags().StringVar(&profile.InstitutionID, "institution", "", "institution id")
	cmd.Flags().StringVar(&profile.RegionID, "region", "", "region id")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("role")
	return cmd
}
