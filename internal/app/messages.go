// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings written into HTTP
// response bodies by the go-profiles handlers.
package app

const (
	// MsgActivationSent acknowledges a signup; the account stays inactive
	// until the emailed link is followed.
	MsgActivationSent = "Please confirm your email address to complete the registration."

	// MsgActivationResent is answered to every resend request, whether or
	// not the address belongs to an inactive account.
	MsgActivationResent = "If an inactive account uses this address, a new activation link has been sent."

	// MsgActivated is returned after a successful activation.
	MsgActivated = "Thank you for your email confirmation. Now you can login your account."

	// MsgActivationInvalid is the single answer for every failed activation.
	MsgActivationInvalid = "Activation link is invalid!"
)
