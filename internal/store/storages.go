// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-profiles/internal/config"
	"github.com/MKhiriev/go-profiles/internal/logger"
	"github.com/MKhiriev/go-profiles/migrations"
)

// storage is the default implementation of [Storage].
type storage struct {
	db *DB

	// q is either the pool or the open transaction.
	q    querier
	inTx bool
}

// NewStorage connects to the configured database, applies migrations and
// returns a ready [Storage] together with the underlying pool so the caller
// can close it on shutdown.
func NewStorage(ctx context.Context, cfg config.DB, log *logger.Logger) (Storage, *DB, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.Driver {
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
	if err != nil {
		return nil, nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorage").Msg("error applying migrations")
		_ = db.Close()
		return nil, nil, err
	}

	return NewStorageFromDB(db), db, nil
}

// NewStorageFromDB wraps an already opened [DB].
func NewStorageFromDB(db *DB) Storage {
	return &storage{db: db, q: db.DB}
}

// Migrate applies embedded migrations for the pool's driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

func (s *storage) builder() queryBuilder {
	return queryBuilder{s.db.builder}
}

func (s *storage) Accounts() AccountRepository {
	return &accountRepository{q: s.q, builder: s.builder(), classifier: s.db.errorClassificator}
}

func (s *storage) Profiles() ProfileRepository {
	return &profileRepository{q: s.q, builder: s.builder()}
}

// WithinTx implements [Storage]. Failed transactions are not retried; the
// driver's retryability verdict is only logged.
func (s *storage) WithinTx(ctx context.Context, fn func(ctx context.Context, tx Storage) error) error {
	if s.inTx {
		return fn(ctx, s)
	}

	err := s.runTx(ctx, fn)
	if err != nil && s.db.errorClassificator.Classify(err) == Retryable {
		logger.FromContext(ctx).Warn().
			Str("func", "storage.WithinTx").
			Err(err).
			Msg("transaction failed with a transient error")
	}

	return err
}

func (s *storage) runTx(ctx context.Context, fn func(ctx context.Context, tx Storage) error) error {
	log := logger.FromContext(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "storage.runTx").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = fn(ctx, &storage{db: s.db, q: tx, inTx: true}); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "storage.runTx").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
