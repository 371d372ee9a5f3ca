// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists accounts and profiles in a relational database.
//
// Two drivers are supported: PostgreSQL through pgx and SQLite through
// go-sqlite3. SQL is built with squirrel so that the same repositories serve
// both dialects; only placeholders and error classification differ.
//
// Multi-step writes go through [Storage.WithinTx]. Repositories obtained from
// the Storage passed to the callback run on the open transaction.
package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/go-profiles/models"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// AccountRepository manages rows of the "accounts" table.
type AccountRepository interface {
	// CreateAccount inserts account and returns it with AccountID and
	// DateJoined filled in. Duplicate usernames yield
	// [ErrUsernameAlreadyExists], duplicate emails [ErrEmailAlreadyExists].
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)

	FindAccountByID(ctx context.Context, accountID int64) (models.Account, error)
	FindAccountByUsername(ctx context.Context, username string) (models.Account, error)

	// FindInactiveAccountByEmail matches email case-insensitively.
	FindInactiveAccountByEmail(ctx context.Context, email string) (models.Account, error)

	ActivateAccount(ctx context.Context, accountID int64) error
	UpdateLastLogin(ctx context.Context, accountID int64, at time.Time) error
}

// ProfileRepository manages rows of the "profiles" table.
type ProfileRepository interface {
	CreateProfile(ctx context.Context, profile models.Profile) (models.Profile, error)
	FindProfileByID(ctx context.Context, profileID int64) (models.Profile, error)
	FindProfileByAccountID(ctx context.Context, accountID int64) (models.Profile, error)
	UpdateLocation(ctx context.Context, profileID int64, location string) (models.Profile, error)
	UpdateBio(ctx context.Context, profileID int64, bio string) (models.Profile, error)
	ConfirmEmail(ctx context.Context, accountID int64) error
}

// Storage is the entry point the service layer depends on.
type Storage interface {
	Accounts() AccountRepository
	Profiles() ProfileRepository

	// WithinTx runs fn inside a database transaction. The transaction is
	// committed when fn returns nil and rolled back otherwise. Nested calls
	// join the outer transaction.
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx Storage) error) error
}

// ErrorClassificator inspects driver errors.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may be retried.
	Classify(err error) ErrorClassification

	// UniqueViolation reports whether err is a unique constraint violation
	// and returns the violated constraint or column description.
	UniqueViolation(err error) (string, bool)
}
