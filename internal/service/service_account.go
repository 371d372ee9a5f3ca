// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/MKhiriev/go-profiles/internal/adapter"
	"github.com/MKhiriev/go-profiles/internal/config"
	"github.com/MKhiriev/go-profiles/internal/logger"
	"github.com/MKhiriev/go-profiles/internal/store"
	"github.com/MKhiriev/go-profiles/internal/utils"
	"github.com/MKhiriev/go-profiles/models"
	"golang.org/x/crypto/bcrypt"
)

const (
	activationSubject = "Activate your account"

	// maxLocationLen mirrors profiles.location.
	maxLocationLen = 64
)

var activationMailTemplate = template.Must(template.New("activation").Parse(
	`Hi {{.Username}},

Please click on the link below to confirm your registration:

{{.Link}}

If you did not sign up, ignore this message.
`))

type accountService struct {
	storage store.Storage
	geo     adapter.GeoLocator
	mailer  adapter.Mailer
	tokens  ActivationTokenService

	baseURL  string
	hashCost int

	logger *logger.Logger
}

func NewAccountService(
	storage store.Storage,
	geo adapter.GeoLocator,
	mailer adapter.Mailer,
	tokens ActivationTokenService,
	cfg config.App,
	logger *logger.Logger,
) AccountService {
	return &accountService{
		storage:  storage,
		geo:      geo,
		mailer:   mailer,
		tokens:   tokens,
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		hashCost: cfg.PasswordHashCost,
		logger:   logger,
	}
}

// SignUp implements [AccountService].
//
// The account, its profile and the resolved location are written in one
// transaction. Geolocation never fails the signup; mail dispatch happens
// after commit and its failure is only logged.
func (s *accountService) SignUp(ctx context.Context, req models.SignUpRequest) (models.AccountWithProfile, error) {
	log := logger.FromContext(ctx)

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password1), s.hashCost)
	if err != nil {
		log.Err(err).Str("func", "accountService.SignUp").Msg("error hashing password")
		return models.AccountWithProfile{}, fmt.Errorf("%w: %w", ErrPasswordHashing, err)
	}

	var created models.AccountWithProfile
	err = s.storage.WithinTx(ctx, func(ctx context.Context, tx store.Storage) error {
		account, err := tx.Accounts().CreateAccount(ctx, models.Account{
			Username:     req.Username,
			Email:        strings.TrimSpace(req.Email),
			PasswordHash: string(hash),
		})
		if err != nil {
			return err
		}

		profile, err := s.provisionProfile(ctx, tx, account.AccountID, req.Location)
		if err != nil {
			return err
		}

		created = models.AccountWithProfile{Account: account, Profile: profile}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "accountService.SignUp").Str("username", req.Username).Msg("signup transaction failed")
		return models.AccountWithProfile{}, fmt.Errorf("signup failed: %w", err)
	}

	log.Info().
		Int64("account_id", created.Account.AccountID).
		Str("location", created.Profile.Location).
		Msg("account created")

	s.sendActivation(ctx, created.Account)

	return created, nil
}

// provisionProfile creates the profile with the raw client IP and replaces
// it with the resolved location on the same transaction.
func (s *accountService) provisionProfile(ctx context.Context, tx store.Storage, accountID int64, ip string) (models.Profile, error) {
	profile, err := tx.Profiles().CreateProfile(ctx, models.Profile{
		AccountID: accountID,
		Location:  truncateRunes(ip, maxLocationLen),
	})
	if err != nil {
		return models.Profile{}, err
	}

	location := truncateRunes(s.geo.Resolve(ctx, ip), maxLocationLen)
	return tx.Profiles().UpdateLocation(ctx, profile.ProfileID, location)
}

// Activate implements [AccountService].
func (s *accountService) Activate(ctx context.Context, uidb64, token string) (models.Account, models.ActivationResult, error) {
	log := logger.FromContext(ctx)

	accountID, err := utils.DecodeUID(uidb64)
	if err != nil {
		log.Debug().Str("func", "accountService.Activate").Msg("malformed uid")
		return models.Account{}, models.ActivationInvalid, nil
	}

	var activated models.Account
	err = s.storage.WithinTx(ctx, func(ctx context.Context, tx store.Storage) error {
		account, err := tx.Accounts().FindAccountByID(ctx, accountID)
		if err != nil {
			return err
		}

		if !s.tokens.Verify(account, token) {
			return ErrActivationInvalid
		}

		if err = tx.Accounts().ActivateAccount(ctx, account.AccountID); err != nil {
			return err
		}
		if err = tx.Profiles().ConfirmEmail(ctx, account.AccountID); err != nil {
			return err
		}

		account.IsActive = true
		activated = account
		return nil
	})

	switch {
	case err == nil:
		log.Info().Int64("account_id", activated.AccountID).Msg("account activated")
		return activated, models.ActivationActivated, nil
	case errors.Is(err, ErrActivationInvalid), errors.Is(err, store.ErrAccountNotFound):
		log.Debug().Int64("account_id", accountID).Msg("activation rejected")
		return models.Account{}, models.ActivationInvalid, nil
	default:
		log.Err(err).Str("func", "accountService.Activate").Int64("account_id", accountID).Msg("activation failed")
		return models.Account{}, models.ActivationInvalid, fmt.Errorf("activation failed: %w", err)
	}
}

// ResendActivation implements [AccountService].
func (s *accountService) ResendActivation(ctx context.Context, req models.ResendActivationRequest) error {
	log := logger.FromContext(ctx)

	account, err := s.storage.Accounts().FindInactiveAccountByEmail(ctx, strings.TrimSpace(req.Email))
	if errors.Is(err, store.ErrAccountNotFound) {
		log.Debug().Msg("no inactive account for resend request")
		return nil
	}
	if err != nil {
		log.Err(err).Str("func", "accountService.ResendActivation").Msg("account lookup failed")
		return fmt.Errorf("account lookup failed: %w", err)
	}

	s.sendActivation(ctx, account)
	return nil
}

// activationLink builds the link mailed to account.
func (s *accountService) activationLink(account models.Account) models.ActivationLink {
	uid := utils.EncodeUID(account.AccountID)
	token := s.tokens.Issue(account)

	return models.ActivationLink{
		UID:   uid,
		Token: token,
		URL:   s.baseURL + "/activate/" + uid + "/" + token + "/",
	}
}

func (s *accountService) sendActivation(ctx context.Context, account models.Account) {
	log := logger.FromContext(ctx).WithAccountID(account.AccountID)

	if account.Email == "" {
		log.Warn().Msg("account has no email, activation mail skipped")
		return
	}

	link := s.activationLink(account)

	var body bytes.Buffer
	err := activationMailTemplate.Execute(&body, struct {
		Username string
		Link     string
	}{account.Username, link.URL})
	if err != nil {
		log.Err(err).Msg("error rendering activation mail")
		return
	}

	err = s.mailer.Send(ctx, models.Mail{
		To:      account.Email,
		Subject: activationSubject,
		Body:    body.String(),
	})
	if err != nil {
		log.Err(err).Msg("error sending activation mail")
		return
	}

	log.Info().Msg("activation mail sent")
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
