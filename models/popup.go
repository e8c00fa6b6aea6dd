// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ConfirmKind names the destructive action a confirmation is asked for. Each
// kind has its own preference toggle.
type ConfirmKind string

const (
	ConfirmDeleteList     ConfirmKind = "delete_list"
	ConfirmDeleteListitem ConfirmKind = "delete_listitem"
	ConfirmEmptyList      ConfirmKind = "empty_list"
	ConfirmEraseList      ConfirmKind = "erase_list"
	ConfirmEraseListitem  ConfirmKind = "erase_listitem"
	ConfirmWipeTrash      ConfirmKind = "wipe_trash"
	ConfirmWipeItemsTrash ConfirmKind = "wipe_listitems_trash"
)

// Confirmation describes a question shown to the user before a destructive
// action.
type Confirmation struct {
	Kind ConfirmKind `json:"kind"`
	// Subject is the display name of the affected entity, if there is one.
	Subject string `json:"subject,omitempty"`
	Count   int    `json:"count"`
}

// ToastLevel selects the presentation of a toast.
type ToastLevel string

const (
	ToastSuccess ToastLevel = "success"
	ToastWarning ToastLevel = "warning"
	ToastError   ToastLevel = "error"
)

// Toast is a short non-blocking notification.
type Toast struct {
	Level   ToastLevel `json:"level"`
	Message string     `json:"message"`
}
