// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ActivationResult is the terminal outcome of following an activation link.
type ActivationResult int

const (
	// ActivationInvalid covers every failure: malformed id, unknown account,
	// bad, expired or already used token. Callers get no further detail.
	ActivationInvalid ActivationResult = iota

	// ActivationActivated means the account and its profile were confirmed.
	ActivationActivated
)

// String implements [fmt.Stringer].
func (r ActivationResult) String() string {
	switch r {
	case ActivationActivated:
		return "activated"
	default:
		return "invalid"
	}
}

// ActivationLink is what the signup flow mails to the user.
type ActivationLink struct {
	// UID is the URL-safe base64 encoding of the account id.
	UID string
	// Token is the activation token issued for the account.
	Token string
	// URL is the absolute link embedding UID and Token.
	URL string
}
