// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-list-keeper/internal/tui"
	"github.com/MKhiriev/go-list-keeper/models"
)

func (a *App) listsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lists",
		Short: "Show the active lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lists, err := a.services.Lists.GetLists(cmd.Context())
			if err != nil {
				return fmt.Errorf("get lists: %w", err)
			}
			a.println(cmd, tui.Lists(lists))
			return nil
		},
	}
}

func (a *App) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <list-id>",
		Short: "Show a list with its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.services.Lists.GetList(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("get list %s: %w", args[0], err)
			}
			a.println(cmd, tui.List(list, a.now()))
			return nil
		},
	}
}

func (a *App) newCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "new <name>",
		Short: "Create a list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, res := a.services.Lists.CreateList(cmd.Context(), strings.Join(args, " "))
			if err := a.checkResult(cmd, res); err != nil {
				return err
			}
			if list != nil {
				a.println(cmd, list.ID())
			}
			return nil
		},
	}
}

func (a *App) addCommand() *cobra.Command {
	var note string
	cmd := &cobra.Command{
		Use:   "add <list-id> <text>",
		Short: "Append an item to a list",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			item := models.NewListitem(strings.Join(args[1:], " "))
			if note != "" {
				item.SetNote(note)
			}
			if err := a.checkResult(cmd, a.services.Lists.AddListitem(cmd.Context(), args[0], item)); err != nil {
				return err
			}
			a.println(cmd, item.ID())
			return nil
		},
	}
	cmd.Flags().StringVar(&note, "note", "", "note attached to the item")
	return cmd
}

func (a *App) rmCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <list-id> [item-id...]",
		Short: "Delete a list, or the given items of it",
		Long: `Delete a list, or only the given items of it when item ids follow the
list id. Deleted entries go to the trash when the trash is enabled.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			switch len(args) {
			case 1:
				return a.checkResult(cmd, a.services.Lists.DeleteList(ctx, args[0], a.force))
			case 2:
				return a.checkResult(cmd, a.services.Lists.DeleteListitem(ctx, args[0], args[1], a.force))
			default:
				return a.checkResult(cmd, a.services.Lists.DeleteListitems(ctx, args[0], args[1:], a.force).Result())
			}
		},
	}
}

func (a *App) emptyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "empty <list-id>",
		Short: "Delete every unlocked item of a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.checkResult(cmd, a.services.Lists.EmptyList(cmd.Context(), args[0], a.force))
		},
	}
}

func (a *App) reorderCommand() *cobra.Command {
	var listID string
	cmd := &cobra.Command{
		Use:   "reorder <id...>",
		Short: "Set the order of the lists, or of the items of --list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if listID != "" {
				return a.checkResult(cmd, a.services.Lists.ReorderListitems(cmd.Context(), listID, args))
			}
			return a.checkResult(cmd, a.services.Lists.ReorderLists(cmd.Context(), args))
		},
	}
	cmd.Flags().StringVar(&listID, "list", "", "reorder the items of this list")
	return cmd
}
