// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-profiles/internal/logger"
	"github.com/MKhiriev/go-profiles/internal/store"
	"github.com/MKhiriev/go-profiles/models"
)

type profileService struct {
	storage store.Storage
	logger  *logger.Logger
}

func NewProfileService(storage store.Storage, logger *logger.Logger) ProfileService {
	return &profileService{storage: storage, logger: logger}
}

// GetProfile returns the profile only to its owner.
func (s *profileService) GetProfile(ctx context.Context, callerID, profileID int64) (models.Profile, error) {
	profile, err := s.storage.Profiles().FindProfileByID(ctx, profileID)
	if err != nil {
		return models.Profile{}, fmt.Errorf("error getting profile: %w", err)
	}

	if profile.AccountID != callerID {
		logger.FromContext(ctx).Warn().
			Int64("caller_id", callerID).
			Int64("profile_id", profileID).
			Msg("profile read by non-owner")
		return models.Profile{}, ErrForbidden
	}

	return profile, nil
}

// UpdateProfile implements [ProfileService]. Ownership is checked and the
// bio written on one transaction so the owner cannot change in between.
func (s *profileService) UpdateProfile(ctx context.Context, callerID, profileID int64, update models.ProfileUpdate) (models.Profile, error) {
	log := logger.FromContext(ctx)

	var updated models.Profile
	err := s.storage.WithinTx(ctx, func(ctx context.Context, tx store.Storage) error {
		profile, err := tx.Profiles().FindProfileByID(ctx, profileID)
		if err != nil {
			return err
		}

		if profile.AccountID != callerID {
			return ErrForbidden
		}

		if update.Bio == nil {
			updated = profile
			return nil
		}

		updated, err = tx.Profiles().UpdateBio(ctx, profileID, *update.Bio)
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "profileService.UpdateProfile").
			Int64("caller_id", callerID).
			Int64("profile_id", profileID).
			Msg("profile update failed")
		return models.Profile{}, fmt.Errorf("profile update failed: %w", err)
	}

	return updated, nil
}

// Dashboard returns the caller's account with its profile.
func (s *profileService) Dashboard(ctx context.Context, accountID int64) (models.AccountWithProfile, error) {
	account, err := s.storage.Accounts().FindAccountByID(ctx, accountID)
	if err != nil {
		return models.AccountWithProfile{}, fmt.Errorf("error getting account: %w", err)
	}

	profile, err := s.storage.Profiles().FindProfileByAccountID(ctx, accountID)
	if err != nil {
		return models.AccountWithProfile{}, fmt.Errorf("error getting profile: %w", err)
	}

	return models.AccountWithProfile{Account: account, Profile: profile}, nil
}
