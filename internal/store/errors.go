// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSyncStateNotFound is returned when no sync bookkeeping row exists
	// for the requested clinic, i.e. the clinic has never been synced on
	// this device.
	ErrSyncStateNotFound = errors.New("sync state not found")

	// ErrRecordsNotSaved is returned when an INSERT of one or more entity
	// records completes without error but the number of affected rows is
	// zero, indicating that no data was actually persisted.
	ErrRecordsNotSaved = errors.New("entity records were not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")
)
