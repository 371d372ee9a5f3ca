// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// LocationLookupFailed is stored in [Profile.Location] when the IP
// geolocation lookup could not produce a result.
const LocationLookupFailed = "Failed fetching location"

// Profile is the one-to-one extension of an [Account]. It exists if and only
// if its owning account exists and is never created on its own.
type Profile struct {
	// ProfileID is the server-assigned identifier of the profile.
	ProfileID int64 `json:"id"`

	// AccountID references the owning account.
	AccountID int64 `json:"account_id"`

	// Bio is a short free-form text. The only field the owner may edit.
	Bio string `json:"bio"`

	// Location holds "City - CountryCode" resolved from the signup IP,
	// or [LocationLookupFailed].
	Location string `json:"location"`

	// EmailConfirmed turns true together with [Account.IsActive].
	EmailConfirmed bool `json:"email_confirmed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Profile model.
func (p Profile) TableName() string {
	return "profiles"
}

// ProfileUpdate lists the fields an owner may change.
// Nil fields are left untouched.
type ProfileUpdate struct {
	Bio *string `json:"bio,omitempty"`
}

// AccountWithProfile bundles an account and its profile, as returned by the
// signup and dashboard endpoints.
type AccountWithProfile struct {
	Account Account `json:"account"`
	Profile Profile `json:"profile"`
}
