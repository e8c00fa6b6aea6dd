// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by storage methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrListNotFound is returned when the list does not exist in the
	// requested partition.
	ErrListNotFound = errors.New("list was not found")

	// ErrListitemNotFound is returned when one or more listitems do not exist
	// in the requested partition of their list.
	ErrListitemNotFound = errors.New("listitem was not found")

	// ErrMissingListID is returned when a listitem is written without the id
	// of its parent list.
	ErrMissingListID = errors.New("listitem has no list id")

	// ErrUnsupportedBackend is returned for an unknown storage backend kind.
	ErrUnsupportedBackend = errors.New("unsupported storage backend")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrFileStorage is returned when the JSON file backend cannot read or
	// write its file.
	ErrFileStorage = errors.New("file storage failure")
)
