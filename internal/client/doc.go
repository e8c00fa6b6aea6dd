// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the list keeper.
//
// Every subcommand runs one orchestration operation against the local
// storage. Destructive commands ask for confirmation on the terminal unless
// --yes is given; toasts are printed as they are raised.
package client
