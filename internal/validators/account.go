// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"net"
	"net/mail"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-profiles/models"
)

const (
	FieldUsername  = "username"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldPassword1 = "password1"
	FieldPassword2 = "password2"
	FieldLocation  = "location"
	FieldBio       = "bio"
)

const (
	usernameMinLen = 5
	usernameMaxLen = 30
	passwordMinLen = 8
	passwordMaxLen = 30
	emailMaxLen    = 255
	locationMaxLen = 45
	bioMaxLen      = 50
)

const (
	msgRequired          = "This field is required."
	msgInvalidEmail      = "Enter a valid email address."
	msgInvalidUsername   = "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
	msgPasswordsMismatch = "The two password fields didn't match."
	msgInvalidIP         = "Enter a valid IPv4 or IPv6 address."
)

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

// AccountValidator validates account and profile input.
type AccountValidator struct{}

func NewAccountValidator() Validator {
	return &AccountValidator{}
}

// Validate implements [Validator]. fields restricts validation to the named
// fields; with no fields every rule applies. Failures are reported as a
// [*ValidationError].
func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignUpRequest:
		return v.validateSignUp(value, fields...)
	case *models.SignUpRequest:
		return v.validateSignUp(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.ResendActivationRequest:
		return v.validateResend(value, fields...)
	case *models.ResendActivationRequest:
		return v.validateResend(*value, fields...)

	case models.ProfileUpdate:
		return v.validateProfileUpdate(value, fields...)
	case *models.ProfileUpdate:
		return v.validateProfileUpdate(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// selector reports whether a field is in scope.
type selector func(field string) bool

func newSelector(known []string, fields []string) (selector, error) {
	for _, f := range fields {
		if !slices.Contains(known, f) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return func(field string) bool {
		return len(fields) == 0 || slices.Contains(fields, field)
	}, nil
}

func (v *AccountValidator) validateSignUp(req models.SignUpRequest, fields ...string) error {
	in, err := newSelector([]string{FieldUsername, FieldEmail, FieldPassword1, FieldPassword2, FieldLocation}, fields)
	if err != nil {
		return err
	}

	verr := &ValidationError{}

	if in(FieldUsername) {
		checkUsername(verr, req.Username)
	}
	if in(FieldEmail) && req.Email != "" {
		checkEmail(verr, req.Email)
	}
	if in(FieldPassword1) {
		checkLength(verr, FieldPassword1, req.Password1, passwordMinLen, passwordMaxLen)
	}
	if in(FieldPassword2) {
		switch {
		case req.Password2 == "":
			verr.add(FieldPassword2, msgRequired)
		case req.Password1 != req.Password2:
			verr.add(FieldPassword2, msgPasswordsMismatch)
		}
	}
	if in(FieldLocation) && req.Location != "" {
		checkIP(verr, FieldLocation, req.Location)
	}

	return verr.errOrNil()
}

func (v *AccountValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	in, err := newSelector([]string{FieldUsername, FieldPassword}, fields)
	if err != nil {
		return err
	}

	verr := &ValidationError{}
	if in(FieldUsername) && strings.TrimSpace(req.Username) == "" {
		verr.add(FieldUsername, msgRequired)
	}
	if in(FieldPassword) && req.Password == "" {
		verr.add(FieldPassword, msgRequired)
	}

	return verr.errOrNil()
}

func (v *AccountValidator) validateResend(req models.ResendActivationRequest, fields ...string) error {
	in, err := newSelector([]string{FieldEmail}, fields)
	if err != nil {
		return err
	}

	verr := &ValidationError{}
	if in(FieldEmail) {
		if req.Email == "" {
			verr.add(FieldEmail, msgRequired)
		} else {
			checkEmail(verr, req.Email)
		}
	}

	return verr.errOrNil()
}

func (v *AccountValidator) validateProfileUpdate(upd models.ProfileUpdate, fields ...string) error {
	in, err := newSelector([]string{FieldBio}, fields)
	if err != nil {
		return err
	}

	verr := &ValidationError{}
	if in(FieldBio) {
		if upd.Bio == nil {
			verr.add(FieldBio, msgRequired)
		} else {
			checkMaxLength(verr, FieldBio, *upd.Bio, bioMaxLen)
		}
	}

	return verr.errOrNil()
}

func checkUsername(verr *ValidationError, username string) {
	if username == "" {
		verr.add(FieldUsername, msgRequired)
		return
	}
	checkLength(verr, FieldUsername, username, usernameMinLen, usernameMaxLen)
	if !usernamePattern.MatchString(username) {
		verr.add(FieldUsername, msgInvalidUsername)
	}
}

// checkEmail accepts a bare address only; display names are rejected.
func checkEmail(verr *ValidationError, email string) {
	if checkMaxLength(verr, FieldEmail, email, emailMaxLen) {
		return
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		verr.add(FieldEmail, msgInvalidEmail)
	}
}

func checkLength(verr *ValidationError, field, value string, minLen, maxLen int) {
	n := utf8.RuneCountInString(value)
	switch {
	case n == 0:
		verr.add(field, msgRequired)
	case n < minLen:
		verr.add(field, fmt.Sprintf("Ensure this value has at least %d characters (it has %d).", minLen, n))
	case n > maxLen:
		verr.add(field, fmt.Sprintf("Ensure this value has at most %d characters (it has %d).", maxLen, n))
	}
}

// checkIP accepts textual IPv4 and IPv6 addresses, including the
// IPv4-mapped form.
func checkIP(verr *ValidationError, field, value string) {
	if checkMaxLength(verr, field, value, locationMaxLen) {
		return
	}
	if net.ParseIP(value) == nil {
		verr.add(field, msgInvalidIP)
	}
}

// checkMaxLength reports whether a message was recorded.
func checkMaxLength(verr *ValidationError, field, value string, maxLen int) bool {
	if n := utf8.RuneCountInString(value); n > maxLen {
		verr.add(field, fmt.Sprintf("Ensure this value has at most %d characters (it has %d).", maxLen, n))
		return true
	}
	return false
}
