// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// The econsultctl command drives the comment-request workflow from a terminal.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	logging "github.com/econsultation/econsultation-service/pkg/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Every subcommand receives an app
// built from the --config profile.
func newRootCmd(out io.Writer) *cobra.Command {
	var (
		configPath string
		current    *app
	)

	root := &cobra.Command{
		Use:           "econsultctl",
		Short:         "Operate the e-consultation comment-request workflow",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.InitStructureLogConfig()

			profile, err := loadProfile(configPath)
			if err != nil {
				return err
			}
			current, err = newApp(cmd.Context(), profile, out)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if current != nil {
				current.close()
			}
		},
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&configPath, "config", os.Getenv("ECONSULTCTL_CONFIG"), "path to a YAML profile")

	appFn := func() *app { return current }
	root.AddCommand(
		newDraftsCmd(appFn),
		newRequestsCmd(appFn),
		newReflectionsCmd(appFn),
		newDirectoryCmd(appFn),
		newNotificationsCmd(appFn),
	)
	return root
}
