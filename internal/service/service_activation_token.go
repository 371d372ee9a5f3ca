// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-profiles/internal/utils"
	"github.com/MKhiriev/go-profiles/models"
)

// tokenEpoch is the reference point of the base36 timestamp embedded in
// activation tokens. Counting from 2001 keeps the timestamp segment short.
var tokenEpoch = time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)

const (
	// signatureLen caps the hex signature segment of a token.
	signatureLen = 20
	// passwordFragmentLen is how much of the keyed password digest enters
	// the payload. A password change invalidates outstanding tokens.
	passwordFragmentLen = 16
)

// ActivationTokenPattern matches every token Issue produces.
var ActivationTokenPattern = regexp.MustCompile(`^[0-9A-Za-z]{1,13}-[0-9A-Za-z]{1,20}$`)

// activationTokenService signs tokens of the form "<ts36>-<signature>".
//
// The signature is an HMAC over the account id, its activation flag, a
// fragment of its password hash, its join date and the timestamp. Because
// the activation flag is signed, a token stops verifying the moment the
// account becomes active.
type activationTokenService struct {
	// secret is the process-wide signing key.
	secret string

	// timeout is the validity window of an issued token.
	timeout time.Duration

	// now is the clock; replaced in tests.
	now func() time.Time
}

// NewActivationTokenService returns an [ActivationTokenService] signing with
// secret and accepting tokens younger than timeout.
func NewActivationTokenService(secret string, timeout time.Duration) ActivationTokenService {
	return &activationTokenService{secret: secret, timeout: timeout, now: time.Now}
}

// Issue implements [ActivationTokenService].
func (s *activationTokenService) Issue(account models.Account) string {
	return s.makeToken(account, s.timestamp(s.now()))
}

// Verify implements [ActivationTokenService]. Every failure returns false
// without further detail.
func (s *activationTokenService) Verify(account models.Account, token string) bool {
	if account.AccountID <= 0 || !ActivationTokenPattern.MatchString(token) {
		return false
	}

	tsPart, _, _ := strings.Cut(token, "-")
	ts, err := strconv.ParseInt(tsPart, 36, 64)
	if err != nil || ts < 0 {
		return false
	}

	if !utils.EqualHashes(s.makeToken(account, ts), token) {
		return false
	}

	age := s.timestamp(s.now()) - ts
	return age >= 0 && time.Duration(age)*time.Second <= s.timeout
}

func (s *activationTokenService) timestamp(t time.Time) int64 {
	return int64(t.Sub(tokenEpoch) / time.Second)
}

func (s *activationTokenService) makeToken(account models.Account, ts int64) string {
	payload := fmt.Sprintf("%d|%t|%s|%d|%d",
		account.AccountID,
		account.IsActive,
		s.passwordFragment(account.PasswordHash),
		account.DateJoined.Unix(),
		ts,
	)

	return strconv.FormatInt(ts, 36) + "-" + compactSignature(utils.HashString(payload, s.secret))
}

func (s *activationTokenService) passwordFragment(passwordHash string) string {
	return utils.HashString(passwordHash, s.secret)[:passwordFragmentLen]
}

// compactSignature keeps every other hex digit and cuts to signatureLen.
func compactSignature(hexDigest string) string {
	var b strings.Builder
	b.Grow(signatureLen)
	for i := 0; i < len(hexDigest) && b.Len() < signatureLen; i += 2 {
		b.WriteByte(hexDigest[i])
	}
	return b.String()
}
