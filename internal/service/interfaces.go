// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the server: signup with
// profile provisioning, email activation, session tokens, profile editing
// and service information.
package service

import (
	"context"

	"github.com/MKhiriev/go-profiles/models"
)

// ActivationTokenService issues and checks activation tokens.
type ActivationTokenService interface {
	Issue(account models.Account) string
	Verify(account models.Account, token string) bool
}

// AccountService drives the account lifecycle.
type AccountService interface {
	// SignUp creates an inactive account with its profile in one transaction
	// and mails an activation link.
	SignUp(ctx context.Context, req models.SignUpRequest) (models.AccountWithProfile, error)

	// Activate follows an activation link. The result is either
	// ActivationActivated or ActivationInvalid; err is non-nil only for
	// infrastructure failures.
	Activate(ctx context.Context, uidb64, token string) (models.Account, models.ActivationResult, error)

	// ResendActivation mails a fresh link to an inactive account registered
	// with req.Email. Unknown addresses are ignored silently.
	ResendActivation(ctx context.Context, req models.ResendActivationRequest) error
}

type AuthService interface {
	Login(ctx context.Context, req models.LoginRequest) (models.Account, error)
	CreateToken(ctx context.Context, account models.Account) (models.SessionToken, error)
	ParseToken(ctx context.Context, tokenString string) (models.SessionToken, error)
}

// ProfileService reads and edits profiles on behalf of an authenticated
// caller.
type ProfileService interface {
	GetProfile(ctx context.Context, callerID, profileID int64) (models.Profile, error)

	// UpdateProfile changes the bio only. Non-owners get ErrForbidden.
	UpdateProfile(ctx context.Context, callerID, profileID int64, update models.ProfileUpdate) (models.Profile, error)

	Dashboard(ctx context.Context, accountID int64) (models.AccountWithProfile, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetHomeInfo(ctx context.Context) models.HomeInfo
}

// AccountServiceWrapper decorates an AccountService, e.g. with validation.
type AccountServiceWrapper interface {
	Wrap(AccountService) AccountService
}

// ProfileServiceWrapper decorates a ProfileService, e.g. with validation.
type ProfileServiceWrapper interface {
	Wrap(ProfileService) ProfileService
}
