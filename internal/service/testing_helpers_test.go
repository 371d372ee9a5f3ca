// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"maps"
	"strings"
	"time"

	"github.com/MKhiriev/go-profiles/internal/store"
	"github.com/MKhiriev/go-profiles/models"
)

// fakeStorage is an in-memory store.Storage. WithinTx snapshots the state
// and restores it when the callback fails.
type fakeStorage struct {
	accounts map[int64]models.Account
	profiles map[int64]models.Profile

	nextAccountID int64
	nextProfileID int64

	// injected failures
	createAccountErr  error
	createProfileErr  error
	updateLocationErr error
	activateErr       error

	txCount int
	inTx    bool
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		accounts: map[int64]models.Account{},
		profiles: map[int64]models.Profile{},
	}
}

func (f *fakeStorage) Accounts() store.AccountRepository { return fakeAccounts{f} }
func (f *fakeStorage) Profiles() store.ProfileRepository { return fakeProfiles{f} }

func (f *fakeStorage) WithinTx(ctx context.Context, fn func(ctx context.Context, tx store.Storage) error) error {
	if f.inTx {
		return fn(ctx, f)
	}

	f.txCount++
	accounts, profiles := maps.Clone(f.accounts), maps.Clone(f.profiles)
	nextAccountID, nextProfileID := f.nextAccountID, f.nextProfileID

	f.inTx = true
	err := fn(ctx, f)
	f.inTx = false

	if err != nil {
		f.accounts, f.profiles = accounts, profiles
		f.nextAccountID, f.nextProfileID = nextAccountID, nextProfileID
	}
	return err
}

// addAccount stores account with a profile directly, bypassing the services.
func (f *fakeStorage) addAccount(account models.Account) (models.Account, models.Profile) {
	f.nextAccountID++
	account.AccountID = f.nextAccountID
	if account.DateJoined.IsZero() {
		account.DateJoined = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	}
	f.accounts[account.AccountID] = account

	f.nextProfileID++
	profile := models.Profile{ProfileID: f.nextProfileID, AccountID: account.AccountID, EmailConfirmed: account.IsActive}
	f.profiles[profile.ProfileID] = profile

	return account, profile
}

func (f *fakeStorage) profileOf(accountID int64) (models.Profile, bool) {
	for _, p := range f.profiles {
		if p.AccountID == accountID {
			return p, true
		}
	}
	return models.Profile{}, false
}

type fakeAccounts struct{ f *fakeStorage }

func (r fakeAccounts) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	if r.f.createAccountErr != nil {
		return models.Account{}, r.f.createAccountErr
	}
	for _, a := range r.f.accounts {
		if a.Username == account.Username {
			return models.Account{}, store.ErrUsernameAlreadyExists
		}
		if account.Email != "" && strings.EqualFold(a.Email, account.Email) {
			return models.Account{}, store.ErrEmailAlreadyExists
		}
	}

	r.f.nextAccountID++
	account.AccountID = r.f.nextAccountID
	account.IsActive = false
	account.DateJoined = time.Now().UTC().Truncate(time.Second)
	r.f.accounts[account.AccountID] = account
	return account, nil
}

func (r fakeAccounts) FindAccountByID(ctx context.Context, accountID int64) (models.Account, error) {
	a, ok := r.f.accounts[accountID]
	if !ok {
		return models.Account{}, store.ErrAccountNotFound
	}
	return a, nil
}

func (r fakeAccounts) FindAccountByUsername(ctx context.Context, username string) (models.Account, error) {
	for _, a := range r.f.accounts {
		if a.Username == username {
			return a, nil
		}
	}
	return models.Account{}, store.ErrAccountNotFound
}

func (r fakeAccounts) FindInactiveAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	for _, a := range r.f.accounts {
		if !a.IsActive && a.Email != "" && strings.EqualFold(a.Email, email) {
			return a, nil
		}
	}
	return models.Account{}, store.ErrAccountNotFound
}

func (r fakeAccounts) ActivateAccount(ctx context.Context, accountID int64) error {
	if r.f.activateErr != nil {
		return r.f.activateErr
	}
	a, ok := r.f.accounts[accountID]
	if !ok {
		return store.ErrAccountNotFound
	}
	a.IsActive = true
	r.f.accounts[accountID] = a
	return nil
}

func (r fakeAccounts) UpdateLastLogin(ctx context.Context, accountID int64, at time.Time) error {
	a, ok := r.f.accounts[accountID]
	if !ok {
		return store.ErrAccountNotFound
	}
	a.LastLogin = &at
	r.f.accounts[accountID] = a
	return nil
}

type fakeProfiles struct{ f *fakeStorage }

func (r fakeProfiles) CreateProfile(ctx context.Context, profile models.Profile) (models.Profile, error) {
	if r.f.createProfileErr != nil {
		return models.Profile{}, r.f.createProfileErr
	}
	r.f.nextProfileID++
	profile.ProfileID = r.f.nextProfileID
	profile.CreatedAt = time.Now().UTC()
	profile.UpdatedAt = profile.CreatedAt
	r.f.profiles[profile.ProfileID] = profile
	return profile, nil
}

func (r fakeProfiles) FindProfileByID(ctx context.Context, profileID int64) (models.Profile, error) {
	p, ok := r.f.profiles[profileID]
	if !ok {
		return models.Profile{}, store.ErrProfileNotFound
	}
	return p, nil
}

func (r fakeProfiles) FindProfileByAccountID(ctx context.Context, accountID int64) (models.Profile, error) {
	p, ok := r.f.profileOf(accountID)
	if !ok {
		return models.Profile{}, store.ErrProfileNotFound
	}
	return p, nil
}

func (r fakeProfiles) UpdateLocation(ctx context.Context, profileID int64, location string) (models.Profile, error) {
	if r.f.updateLocationErr != nil {
		return models.Profile{}, r.f.updateLocationErr
	}
	p, ok := r.f.profiles[profileID]
	if !ok {
		return models.Profile{}, store.ErrProfileNotFound
	}
	p.Location = location
	r.f.profiles[profileID] = p
	return p, nil
}

func (r fakeProfiles) UpdateBio(ctx context.Context, profileID int64, bio string) (models.Profile, error) {
	p, ok := r.f.profiles[profileID]
	if !ok {
		return models.Profile{}, store.ErrProfileNotFound
	}
	p.Bio = bio
	r.f.profiles[profileID] = p
	return p, nil
}

func (r fakeProfiles) ConfirmEmail(ctx context.Context, accountID int64) error {
	p, ok := r.f.profileOf(accountID)
	if !ok {
		return store.ErrProfileNotFound
	}
	p.EmailConfirmed = true
	r.f.profiles[p.ProfileID] = p
	return nil
}

// fixedClock returns a controllable clock for token tests.
type fixedClock struct{ t time.Time }

func (c *fixedClock) now() time.Time          { return c.t }
func (c *fixedClock) advance(d time.Duration) { c.t = c.t.Add(d) }
