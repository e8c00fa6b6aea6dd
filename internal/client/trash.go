// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-list-keeper/internal/tui"
	"github.com/MKhiriev/go-list-keeper/models"
)

func (a *App) trashCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "trash [list-id]",
		Short: "Show the trashed lists, or the trashed items of a list",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if len(args) == 0 {
				lists, err := a.services.Lists.GetTrash(ctx)
				if err != nil {
					return fmt.Errorf("get trash: %w", err)
				}
				a.println(cmd, tui.Trash(lists))
				return nil
			}

			list, err := a.services.Lists.GetList(ctx, args[0])
			if err != nil {
				return fmt.Errorf("get list %s: %w", args[0], err)
			}
			items, err := a.services.Lists.GetListitemsTrash(ctx, args[0])
			if err != nil {
				return fmt.Errorf("get trash of list %s: %w", args[0], err)
			}
			a.println(cmd, tui.ListitemsTrash(list.Name(), items))
			return nil
		},
	}
}

func (a *App) restoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <list-id> [item-id]",
		Short: "Restore a list, or an item of a list, from the trash",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 2 {
				return a.checkResult(cmd, a.services.Lists.RestoreListitemFromTrash(cmd.Context(), args[0], args[1]))
			}
			return a.checkResult(cmd, a.services.Lists.RestoreListFromTrash(cmd.Context(), args[0]))
		},
	}
}

func (a *App) eraseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "erase <list-id> [item-id]",
		Short: "Erase a list, or an item of a list, from the trash permanently",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 2 {
				return a.checkResult(cmd, a.services.Lists.EraseListitemFromTrash(cmd.Context(), args[0], args[1], a.force))
			}
			return a.checkResult(cmd, a.services.Lists.EraseListFromTrash(cmd.Context(), args[0], a.force))
		},
	}
}

func (a *App) wipeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "wipe [list-id]",
		Short: "Erase the whole trash, or the item trash of a list",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return a.checkResult(cmd, a.services.Lists.WipeListitemsTrash(cmd.Context(), args[0], a.force).Result())
			}
			return a.checkResult(cmd, a.services.Lists.WipeTrash(cmd.Context(), a.force).Result())
		},
	}
}

func (a *App) retentionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "retention [unlimited|day|week|month|last-entries]",
		Short: "Show or change how long the trash keeps entries",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if len(args) == 1 {
				setting, ok := models.ParseKeepInTrash(args[0])
				if !ok {
					return fmt.Errorf("%w: %q", ErrUnknownRetention, args[0])
				}
				if err := a.services.Lists.SetTrashRetention(ctx, setting); err != nil {
					return fmt.Errorf("set trash retention: %w", err)
				}
			}

			setting, strategy := a.services.Lists.TrashRetention(ctx)
			a.println(cmd, tui.Retention(setting, strategy))
			return nil
		},
	}
}
