// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-profiles/internal/logger"
	"github.com/MKhiriev/go-profiles/models"
)

// accountRepository is the SQL implementation of [AccountRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type accountRepository struct {
	q          querier
	builder    queryBuilder
	classifier ErrorClassificator
}

// CreateAccount inserts a new account. DateJoined defaults to the current
// UTC time when zero.
//
// Error handling:
//   - unique violation on username → [ErrUsernameAlreadyExists]
//   - unique violation on email → [ErrEmailAlreadyExists]
//   - any other driver error → wrapped [ErrExecutingQuery]
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	if account.DateJoined.IsZero() {
		account.DateJoined = time.Now().UTC()
	}

	query, args, err := r.builder.insertAccount(account)
	if err != nil {
		return models.Account{}, err
	}

	if err = r.q.QueryRowContext(ctx, query, args...).Scan(&account.AccountID); err != nil {
		if constraint, ok := r.classifier.UniqueViolation(err); ok {
			log.Warn().
				Str("func", "accountRepository.CreateAccount").
				Str("constraint", constraint).
				Msg("account already exists")
			return models.Account{}, duplicateAccountError(constraint)
		}

		log.Err(err).Str("func", "accountRepository.CreateAccount").Msg("failed to insert account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Debug().
		Str("func", "accountRepository.CreateAccount").
		Int64("account_id", account.AccountID).
		Msg("account created")

	return account, nil
}

// duplicateAccountError maps a violated constraint to a domain error.
func duplicateAccountError(constraint string) error {
	if strings.Contains(strings.ToLower(constraint), "email") {
		return ErrEmailAlreadyExists
	}
	return ErrUsernameAlreadyExists
}

func (r *accountRepository) FindAccountByID(ctx context.Context, accountID int64) (models.Account, error) {
	query, args, err := r.builder.selectAccountByID(accountID)
	if err != nil {
		return models.Account{}, err
	}
	return r.findAccount(ctx, "accountRepository.FindAccountByID", query, args)
}

func (r *accountRepository) FindAccountByUsername(ctx context.Context, username string) (models.Account, error) {
	query, args, err := r.builder.selectAccountByUsername(username)
	if err != nil {
		return models.Account{}, err
	}
	return r.findAccount(ctx, "accountRepository.FindAccountByUsername", query, args)
}

func (r *accountRepository) FindInactiveAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	query, args, err := r.builder.selectInactiveAccountByEmail(email)
	if err != nil {
		return models.Account{}, err
	}
	return r.findAccount(ctx, "accountRepository.FindInactiveAccountByEmail", query, args)
}

func (r *accountRepository) findAccount(ctx context.Context, funcName, query string, args []any) (models.Account, error) {
	log := logger.FromContext(ctx)

	var (
		account   models.Account
		lastLogin sql.NullTime
	)

	err := r.q.QueryRowContext(ctx, query, args...).Scan(
		&account.AccountID,
		&account.Username,
		&account.Email,
		&account.PasswordHash,
		&account.IsActive,
		&account.DateJoined,
		&lastLogin,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to scan account row")
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if lastLogin.Valid {
		account.LastLogin = &lastLogin.Time
	}

	return account, nil
}

// ActivateAccount sets is_active. Returns [ErrAccountNotFound] when no row
// was touched.
func (r *accountRepository) ActivateAccount(ctx context.Context, accountID int64) error {
	query, args, err := r.builder.activateAccount(accountID)
	if err != nil {
		return err
	}
	return r.execSingle(ctx, "accountRepository.ActivateAccount", accountID, query, args)
}

func (r *accountRepository) UpdateLastLogin(ctx context.Context, accountID int64, at time.Time) error {
	query, args, err := r.builder.updateLastLogin(accountID, at.UTC())
	if err != nil {
		return err
	}
	return r.execSingle(ctx, "accountRepository.UpdateLastLogin", accountID, query, args)
}

func (r *accountRepository) execSingle(ctx context.Context, funcName string, accountID int64, query string, args []any) error {
	log := logger.FromContext(ctx)

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("account_id", accountID).Msg("failed to execute update")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrAccountNotFound
	}

	return nil
}
