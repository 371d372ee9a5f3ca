// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-profiles/internal/config"
	"github.com/MKhiriev/go-profiles/internal/logger"
	"github.com/MKhiriev/go-profiles/internal/store"
	"github.com/MKhiriev/go-profiles/internal/utils"
	"github.com/MKhiriev/go-profiles/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It checks credentials against bcrypt hashes and issues session JWTs.
type authService struct {
	// accounts is the data-access layer used to look up accounts.
	accounts store.AccountRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(accounts store.AccountRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		accounts:      accounts,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		now:           time.Now,
		logger:        logger,
	}
}

// Login authenticates an existing account.
//
// Unknown usernames and wrong passwords both yield ErrInvalidCredentials.
// A correct password for an account that was never activated yields
// ErrAccountInactive. On success the last login time is recorded.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Account, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Password == "" {
		return models.Account{}, ErrInvalidDataProvided
	}

	account, err := a.accounts.FindAccountByUsername(ctx, req.Username)
	if errors.Is(err, store.ErrAccountNotFound) {
		log.Debug().Str("username", req.Username).Msg("login for unknown username")
		return models.Account{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Msg("account search by username failed")
		return models.Account{}, fmt.Errorf("account search by username failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		log.Debug().Int64("account_id", account.AccountID).Msg("wrong password")
		return models.Account{}, ErrInvalidCredentials
	}

	if !account.IsActive {
		return models.Account{}, ErrAccountInactive
	}

	now := a.now().UTC()
	if err = a.accounts.UpdateLastLogin(ctx, account.AccountID, now); err != nil {
		log.Err(err).Str("func", "authService.Login").Int64("account_id", account.AccountID).Msg("error recording last login")
		return models.Account{}, fmt.Errorf("error recording last login: %w", err)
	}
	account.LastLogin = &now

	return account, nil
}

// CreateToken issues a signed session JWT for account.
func (a *authService) CreateToken(ctx context.Context, account models.Account) (models.SessionToken, error) {
	token, err := utils.GenerateSessionToken(a.tokenIssuer, account.AccountID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw JWT string. Any validation failure (expired,
// wrong issuer, malformed) is normalised to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.SessionToken, error) {
	token, err := utils.ValidateSessionToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.SessionToken{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
