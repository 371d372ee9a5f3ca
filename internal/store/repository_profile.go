// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-profiles/internal/logger"
	"github.com/MKhiriev/go-profiles/models"
	sq "github.com/Masterminds/squirrel"
)

// profileRepository is the SQL implementation of [ProfileRepository].
type profileRepository struct {
	q       querier
	builder queryBuilder
}

// CreateProfile inserts profile. CreatedAt and UpdatedAt default to the
// current UTC time.
func (r *profileRepository) CreateProfile(ctx context.Context, profile models.Profile) (models.Profile, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	if profile.UpdatedAt.IsZero() {
		profile.UpdatedAt = profile.CreatedAt
	}

	query, args, err := r.builder.insertProfile(profile)
	if err != nil {
		return models.Profile{}, err
	}

	if err = r.q.QueryRowContext(ctx, query, args...).Scan(&profile.ProfileID); err != nil {
		log.Err(err).
			Str("func", "profileRepository.CreateProfile").
			Int64("account_id", profile.AccountID).
			Msg("failed to insert profile")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return profile, nil
}

func (r *profileRepository) FindProfileByID(ctx context.Context, profileID int64) (models.Profile, error) {
	query, args, err := r.builder.selectProfileByID(profileID)
	if err != nil {
		return models.Profile{}, err
	}
	return r.findProfile(ctx, "profileRepository.FindProfileByID", query, args)
}

func (r *profileRepository) FindProfileByAccountID(ctx context.Context, accountID int64) (models.Profile, error) {
	query, args, err := r.builder.selectProfileByAccountID(accountID)
	if err != nil {
		return models.Profile{}, err
	}
	return r.findProfile(ctx, "profileRepository.FindProfileByAccountID", query, args)
}

func (r *profileRepository) findProfile(ctx context.Context, funcName, query string, args []any) (models.Profile, error) {
	var profile models.Profile

	err := r.q.QueryRowContext(ctx, query, args...).Scan(
		&profile.ProfileID,
		&profile.AccountID,
		&profile.Bio,
		&profile.Location,
		&profile.EmailConfirmed,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Profile{}, ErrProfileNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("failed to scan profile row")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return profile, nil
}

// UpdateLocation overwrites the location and returns the updated profile.
func (r *profileRepository) UpdateLocation(ctx context.Context, profileID int64, location string) (models.Profile, error) {
	return r.update(ctx, "profileRepository.UpdateLocation", profileID, map[string]any{"location": location})
}

// UpdateBio overwrites the bio and returns the updated profile.
func (r *profileRepository) UpdateBio(ctx context.Context, profileID int64, bio string) (models.Profile, error) {
	return r.update(ctx, "profileRepository.UpdateBio", profileID, map[string]any{"bio": bio})
}

func (r *profileRepository) update(ctx context.Context, funcName string, profileID int64, set map[string]any) (models.Profile, error) {
	query, args, err := r.builder.updateProfile(sq.Eq{"id": profileID}, set, time.Now().UTC())
	if err != nil {
		return models.Profile{}, err
	}

	if err = r.exec(ctx, funcName, query, args); err != nil {
		return models.Profile{}, err
	}

	return r.FindProfileByID(ctx, profileID)
}

// ConfirmEmail flags the profile of accountID as confirmed.
func (r *profileRepository) ConfirmEmail(ctx context.Context, accountID int64) error {
	query, args, err := r.builder.updateProfile(sq.Eq{"account_id": accountID}, map[string]any{"email_confirmed": true}, time.Now().UTC())
	if err != nil {
		return err
	}

	return r.exec(ctx, "profileRepository.ConfirmEmail", query, args)
}

func (r *profileRepository) exec(ctx context.Context, funcName, query string, args []any) error {
	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("failed to execute update")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrProfileNotFound
	}

	return nil
}
