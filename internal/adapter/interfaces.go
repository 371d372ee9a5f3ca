// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for the third-party services the server
// depends on: the IP geolocation provider and outgoing mail delivery.
//
// [GeoLocator] never returns an error. Any lookup failure degrades to
// [models.LocationLookupFailed] so that signup is never blocked by the
// provider. [Mailer] does return errors; callers decide whether a failed
// delivery matters.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-profiles/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// GeoLocator resolves an IP address to a human readable location.
type GeoLocator interface {
	// Resolve returns "City - CountryCode" for ip, or
	// models.LocationLookupFailed on any failure.
	Resolve(ctx context.Context, ip string) string
}

// Mailer delivers a single plain-text message.
type Mailer interface {
	Send(ctx context.Context, mail models.Mail) error
}
