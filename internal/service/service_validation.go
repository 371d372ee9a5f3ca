// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-profiles/internal/validators"
	"github.com/MKhiriev/go-profiles/models"
)

// AccountValidationService validates input before it reaches the wrapped
// AccountService.
type AccountValidationService struct {
	inner     AccountService
	validator validators.Validator
}

func NewAccountValidationService() AccountServiceWrapper {
	return &AccountValidationService{
		validator: validators.NewAccountValidator(),
	}
}

func (v *AccountValidationService) SignUp(ctx context.Context, req models.SignUpRequest) (models.AccountWithProfile, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.AccountWithProfile{}, fmt.Errorf("error during signup validation: %w", err)
	}

	return v.inner.SignUp(ctx, req)
}

// Activate is passed through: malformed links must end up as an invalid
// activation, not a validation error.
func (v *AccountValidationService) Activate(ctx context.Context, uidb64, token string) (models.Account, models.ActivationResult, error) {
	return v.inner.Activate(ctx, uidb64, token)
}

func (v *AccountValidationService) ResendActivation(ctx context.Context, req models.ResendActivationRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("error during resend validation: %w", err)
	}

	return v.inner.ResendActivation(ctx, req)
}

func (v *AccountValidationService) Wrap(wrapped AccountService) AccountService {
	v.inner = wrapped
	return v
}

// ProfileValidationService validates profile edits before they reach the
// wrapped ProfileService.
type ProfileValidationService struct {
	inner     ProfileService
	validator validators.Validator
}

func NewProfileValidationService() ProfileServiceWrapper {
	return &ProfileValidationService{
		validator: validators.NewAccountValidator(),
	}
}

func (v *ProfileValidationService) GetProfile(ctx context.Context, callerID, profileID int64) (models.Profile, error) {
	return v.inner.GetProfile(ctx, callerID, profileID)
}

func (v *ProfileValidationService) UpdateProfile(ctx context.Context, callerID, profileID int64, update models.ProfileUpdate) (models.Profile, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Profile{}, fmt.Errorf("error during profile validation: %w", err)
	}

	return v.inner.UpdateProfile(ctx, callerID, profileID, update)
}

func (v *ProfileValidationService) Dashboard(ctx context.Context, accountID int64) (models.AccountWithProfile, error) {
	return v.inner.Dashboard(ctx, accountID)
}

func (v *ProfileValidationService) Wrap(wrapped ProfileService) ProfileService {
	v.inner = wrapped
	return v
}
