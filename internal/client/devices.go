// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-list-keeper/internal/logger"
	"github.com/MKhiriev/go-list-keeper/internal/tui"
)

func (a *App) devicesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "Show the paired devices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.services.Devices.Refresh(cmd.Context()); err != nil {
				logger.FromContext(cmd.Context()).Warn().Err(err).Msg("device registry refresh failed")
			}
			a.println(cmd, tui.Devices(a.services.Devices.Devices()))
			return nil
		},
	}
}

func (a *App) syncCommand() *cobra.Command {
	var deviceID string
	cmd := &cobra.Command{
		Use:   "sync <list-id>",
		Short: "Send a list to a device and wait for the answer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.services.Lists.SyncList(cmd.Context(), args[0], deviceID)
			if err != nil {
				return fmt.Errorf("sync list %s: %w", args[0], err)
			}
			if !resp.OK() {
				return fmt.Errorf("%w: %s", ErrDeviceFailed, resp.Status)
			}
			a.printf(cmd, "Sent to %s.\n", resp.DeviceID)
			return nil
		},
	}
	cmd.Flags().StringVar(&deviceID, "device", "", "target device, the default device when empty")
	return cmd
}

func (a *App) exportCommand() *cobra.Command {
	var toClipboard bool
	cmd := &cobra.Command{
		Use:   "export <list-id>",
		Short: "Print the device payload of a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.services.Lists.GetList(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("get list %s: %w", args[0], err)
			}
			obj, err := list.ToDeviceObject()
			if err != nil {
				return fmt.Errorf("export list %s: %w", args[0], err)
			}

			payload := strings.Join(obj.Pairs(), "\n")
			if !toClipboard {
				a.println(cmd, payload)
				return nil
			}
			if err = a.clipboard(payload); err != nil {
				return fmt.Errorf("copy to clipboard: %w", err)
			}
			a.printf(cmd, "Copied %d fields to the clipboard.\n", len(obj))
			return nil
		},
	}
	cmd.Flags().BoolVar(&toClipboard, "clipboard", false, "copy the payload instead of printing it")
	return cmd
}
