// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-profiles/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var accountRowColumns = []string{"id", "username", "email", "password_hash", "is_active", "date_joined", "last_login"}

func TestCreateAccount_Success(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery("INSERT INTO accounts").
		WithArgs("alice", "alice@example.com", "hash", false, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	created, err := s.Accounts().CreateAccount(context.Background(), models.Account{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), created.AccountID)
	assert.False(t, created.IsActive)
	assert.False(t, created.DateJoined.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAccount_UniqueViolations(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		want       error
	}{
		{"username", "accounts_username_key", ErrUsernameAlreadyExists},
		{"email", "accounts_email_key", ErrEmailAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newMockStorage(t)

			mock.ExpectQuery("INSERT INTO accounts").
				WillReturnError(pgUniqueError(tt.constraint))

			_, err := s.Accounts().CreateAccount(context.Background(), models.Account{Username: "alice"})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCreateAccount_UnexpectedDBError(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery("INSERT INTO accounts").
		WillReturnError(errors.New("db network error"))

	_, err := s.Accounts().CreateAccount(context.Background(), models.Account{Username: "alice"})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestFindAccountByID(t *testing.T) {
	s, mock := newMockStorage(t)
	joined := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	login := joined.Add(time.Hour)

	mock.ExpectQuery("SELECT (.+) FROM accounts WHERE id = \\$1").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(accountRowColumns).
			AddRow(int64(3), "bob", "", "hash", true, joined, login))

	account, err := s.Accounts().FindAccountByID(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, "bob", account.Username)
	assert.True(t, account.IsActive)
	assert.Equal(t, joined, account.DateJoined)
	require.NotNil(t, account.LastLogin)
	assert.Equal(t, login, *account.LastLogin)
}

func TestFindAccountByUsername_NullLastLogin(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery("SELECT (.+) FROM accounts WHERE username = \\$1").
		WithArgs("bob").
		WillReturnRows(sqlmock.NewRows(accountRowColumns).
			AddRow(int64(3), "bob", "", "hash", false, time.Now(), nil))

	account, err := s.Accounts().FindAccountByUsername(context.Background(), "bob")
	require.NoError(t, err)
	assert.Nil(t, account.LastLogin)
}

func TestFindAccount_NotFound(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery("SELECT (.+) FROM accounts").
		WillReturnRows(sqlmock.NewRows(accountRowColumns))

	_, err := s.Accounts().FindAccountByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestFindAccount_ScanError(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery("SELECT (.+) FROM accounts").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	_, err := s.Accounts().FindAccountByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestFindInactiveAccountByEmail(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery("SELECT (.+) FROM accounts WHERE \\(LOWER\\(email\\) = LOWER\\(\\$1\\) AND is_active = \\$2\\)").
		WithArgs("Alice@Example.com", false).
		WillReturnRows(sqlmock.NewRows(accountRowColumns).
			AddRow(int64(5), "alice", "alice@example.com", "hash", false, time.Now(), nil))

	account, err := s.Accounts().FindInactiveAccountByEmail(context.Background(), "Alice@Example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(5), account.AccountID)
}

func TestActivateAccount(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectExec("UPDATE accounts SET is_active = \\$1 WHERE id = \\$2").
		WithArgs(true, int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Accounts().ActivateAccount(context.Background(), 9))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivateAccount_NotFound(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectExec("UPDATE accounts").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, s.Accounts().ActivateAccount(context.Background(), 9), ErrAccountNotFound)
}

func TestUpdateLastLogin_ExecError(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectExec("UPDATE accounts SET last_login").
		WillReturnError(errors.New("boom"))

	err := s.Accounts().UpdateLastLogin(context.Background(), 1, time.Now())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestDuplicateAccountError(t *testing.T) {
	assert.ErrorIs(t, duplicateAccountError("accounts_email_key"), ErrEmailAlreadyExists)
	assert.ErrorIs(t, duplicateAccountError("UNIQUE constraint failed: accounts.email"), ErrEmailAlreadyExists)
	assert.ErrorIs(t, duplicateAccountError("accounts_username_key"), ErrUsernameAlreadyExists)
	assert.ErrorIs(t, duplicateAccountError(""), ErrUsernameAlreadyExists)
}
