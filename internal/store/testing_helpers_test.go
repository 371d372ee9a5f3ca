// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-profiles/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
)

// newMockStorage returns a Postgres-flavoured storage backed by sqlmock.
func newMockStorage(t *testing.T) (*storage, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return NewStorageFromDB(newPostgresDB(conn, logger.Nop())).(*storage), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func pgUniqueError(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}
