// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-list-keeper services, handlers and the terminal client.
//
// Msg* constants are human-readable strings shown to the user as toasts or
// written into HTTP response bodies. Keeping them in one place keeps the
// wording consistent between the API and the CLI. Constants ending in "f"
// are fmt format strings.
package app

// API responses.
const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation (e.g. an empty list name).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a bridge token is either
	// expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgListNotFound is returned when a list does not exist in the
	// requested partition.
	MsgListNotFound = "list not found"

	// MsgListitemNotFound is returned when an item does not exist in the
	// requested partition of its list.
	MsgListitemNotFound = "list item not found"

	// MsgUnknownRetentionSetting is returned for a trash retention value
	// outside the known settings.
	MsgUnknownRetentionSetting = "unknown trash retention setting"

	// MsgDeviceSelectionRequired is returned when no device was given and
	// none can be picked automatically.
	MsgDeviceSelectionRequired = "select a device: no default device and not exactly one device is ready"

	// MsgRequestTimedOut is the body of a request cancelled by the server
	// request timeout.
	MsgRequestTimedOut = "request timed out"
)

// Toasts.
const (
	MsgListSaveFailed = "The list could not be saved"

	MsgListTrashed      = "List moved to trash"
	MsgListDeleted      = "List deleted"
	MsgListDeleteFailed = "The list could not be deleted"

	MsgListsDeletedf       = "%d lists deleted"
	MsgListsDeleteFailed   = "The lists could not be deleted"
	MsgListsDeletePartialf = "%d of %d lists could not be deleted"

	MsgListEmptied     = "List emptied"
	MsgListEmptyFailed = "The list could not be emptied"

	MsgListitemDeleted      = "Item deleted"
	MsgListitemDeleteFailed = "The item could not be deleted"

	MsgListitemsDeletedf       = "%d items deleted"
	MsgListitemsDeleteFailed   = "The items could not be deleted"
	MsgListitemsDeletePartialf = "%d of %d items could not be deleted"

	MsgReorderFailed = "The new order could not be saved"

	MsgListRestored        = "List restored"
	MsgListRestoreFailed   = "The list could not be restored"
	MsgListErased          = "List erased"
	MsgListEraseFailed     = "The list could not be erased"
	MsgListitemRestored    = "Item restored"
	MsgListitemRestoreFail = "The item could not be restored"
	MsgListitemErased      = "Item erased"
	MsgListitemEraseFailed = "The item could not be erased"

	MsgTrashWipedf       = "%d entries erased from trash"
	MsgTrashWipeFailed   = "The trash could not be emptied"
	MsgTrashWipePartialf = "%d of %d trash entries could not be erased"

	MsgDeviceSyncFailed = "The list could not be sent to the device"
	MsgDeviceNotReady   = "The device is not ready"
	MsgDeviceNoResponse = "The device did not respond"
)
