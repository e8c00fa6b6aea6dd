// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal side of the command-line client: the
// confirmation dialog and toast output behind the service popup, and the
// plain-text views the commands print.
package tui
