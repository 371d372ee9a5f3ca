// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-profiles/models"
	sq "github.com/Masterminds/squirrel"
)

var (
	accountColumns = []string{
		"id",
		"username",
		"email",
		"password_hash",
		"is_active",
		"date_joined",
		"last_login",
	}

	profileColumns = []string{
		"id",
		"account_id",
		"bio",
		"location",
		"email_confirmed",
		"created_at",
		"updated_at",
	}
)

// queryBuilder renders dialect-specific SQL. The zero value is not usable;
// it is always derived from a [DB].
type queryBuilder struct {
	sq.StatementBuilderType
}

func wrapBuildErr(query string, args []any, err error) (string, []any, error) {
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (b queryBuilder) insertAccount(account models.Account) (string, []any, error) {
	return wrapBuildErr(b.Insert(models.Account{}.TableName()).
		Columns("username", "email", "password_hash", "is_active", "date_joined").
		Values(account.Username, account.Email, account.PasswordHash, account.IsActive, account.DateJoined).
		Suffix("RETURNING id").
		ToSql())
}

func (b queryBuilder) selectAccount(where sq.Sqlizer) (string, []any, error) {
	return wrapBuildErr(b.Select(accountColumns...).
		From(models.Account{}.TableName()).
		Where(where).
		Limit(1).
		ToSql())
}

func (b queryBuilder) selectAccountByID(accountID int64) (string, []any, error) {
	return b.selectAccount(sq.Eq{"id": accountID})
}

func (b queryBuilder) selectAccountByUsername(username string) (string, []any, error) {
	return b.selectAccount(sq.Eq{"username": username})
}

func (b queryBuilder) selectInactiveAccountByEmail(email string) (string, []any, error) {
	return b.selectAccount(sq.And{
		sq.Expr("LOWER(email) = LOWER(?)", email),
		sq.Eq{"is_active": false},
	})
}

func (b queryBuilder) activateAccount(accountID int64) (string, []any, error) {
	return wrapBuildErr(b.Update(models.Account{}.TableName()).
		Set("is_active", true).
		Where(sq.Eq{"id": accountID}).
		ToSql())
}

func (b queryBuilder) updateLastLogin(accountID int64, at time.Time) (string, []any, error) {
	return wrapBuildErr(b.Update(models.Account{}.TableName()).
		Set("last_login", at).
		Where(sq.Eq{"id": accountID}).
		ToSql())
}

func (b queryBuilder) insertProfile(profile models.Profile) (string, []any, error) {
	return wrapBuildErr(b.Insert(models.Profile{}.TableName()).
		Columns("account_id", "bio", "location", "email_confirmed", "created_at", "updated_at").
		Values(profile.AccountID, profile.Bio, profile.Location, profile.EmailConfirmed, profile.CreatedAt, profile.UpdatedAt).
		Suffix("RETURNING id").
		ToSql())
}

func (b queryBuilder) selectProfile(where sq.Sqlizer) (string, []any, error) {
	return wrapBuildErr(b.Select(profileColumns...).
		From(models.Profile{}.TableName()).
		Where(where).
		Limit(1).
		ToSql())
}

func (b queryBuilder) selectProfileByID(profileID int64) (string, []any, error) {
	return b.selectProfile(sq.Eq{"id": profileID})
}

func (b queryBuilder) selectProfileByAccountID(accountID int64) (string, []any, error) {
	return b.selectProfile(sq.Eq{"account_id": accountID})
}

// updateProfile sets the given columns and bumps updated_at.
func (b queryBuilder) updateProfile(where sq.Eq, set map[string]any, at time.Time) (string, []any, error) {
	return wrapBuildErr(b.Update(models.Profile{}.TableName()).
		SetMap(set).
		Set("updated_at", at).
		Where(where).
		ToSql())
}
