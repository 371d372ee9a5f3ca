// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks signup, login, resend and profile-edit input
// before it reaches the services.
//
// Failures are reported as a [*ValidationError] holding one message per
// offending field, so a client can show every problem of a form at once.
// Uniqueness of usernames and emails is left to the database.
package validators

import "context"

// Validator checks obj. When fields are given only those fields are
// checked; an unknown field name yields [ErrUnknownField].
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
