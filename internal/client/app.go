// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-list-keeper/internal/logger"
	"github.com/MKhiriev/go-list-keeper/internal/service"
)

type App struct {
	services *service.Services
	workers  Worker
	out      io.Writer
	logger   *logger.Logger

	// set by the persistent --yes flag
	force bool

	now       func() time.Time
	clipboard func(string) error
}

// NewApp builds the client over services. workers run for the duration of
// each command; out receives command output.
func NewApp(services *service.Services, workers Worker, out io.Writer, log *logger.Logger) *App {
	return &App{
		services:  services,
		workers:   workers,
		out:       out,
		logger:    log,
		now:       time.Now,
		clipboard: clipboard.WriteAll,
	}
}

// Run executes args (without the program name).
func (a *App) Run(ctx context.Context, args []string) error {
	if a.workers != nil {
		a.workers.Start(ctx)
		defer a.workers.Stop()
	}

	root := a.rootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(a.logger.WithContext(ctx))
}

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "list-keeper",
		Short: "Manage shopping and to-do lists and their trash",
		Long: `list-keeper keeps lists of items, moves deleted lists and items to a
trash with a configurable retention, and sends lists to a paired wearable.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(a.out)
	root.PersistentFlags().BoolVarP(&a.force, "yes", "y", false, "do not ask for confirmation")

	root.AddCommand(
		a.listsCommand(),
		a.showCommand(),
		a.newCommand(),
		a.addCommand(),
		a.rmCommand(),
		a.emptyCommand(),
		a.reorderCommand(),
		a.trashCommand(),
		a.restoreCommand(),
		a.eraseCommand(),
		a.wipeCommand(),
		a.retentionCommand(),
		a.devicesCommand(),
		a.syncCommand(),
		a.exportCommand(),
		a.versionCommand(),
	)
	return root
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := a.services.AppInfo.GetBuildInfo(cmd.Context())
			a.printf(cmd, "Build version: %s\nBuild date: %s\nBuild commit: %s\n",
				info.BuildVersion(), info.BuildDate(), info.BuildCommit())
			return nil
		},
	}
}

func (a *App) printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}

func (a *App) println(cmd *cobra.Command, s string) {
	fmt.Fprintln(cmd.OutOrStdout(), s)
}

// checkResult turns a three-valued result into the command outcome. A
// declined confirmation is not an error.
func (a *App) checkResult(cmd *cobra.Command, res service.Result) error {
	switch res {
	case service.ResultFailure:
		return ErrOperationFailed
	case service.ResultNone:
		a.println(cmd, "Nothing changed.")
	}
	return nil
}
