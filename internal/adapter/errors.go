// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrEmptyIP             = errors.New("empty ip address")
	ErrInvalidIP           = errors.New("invalid ip address")
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrLookupFailed        = errors.New("geolocation lookup failed")
	ErrIncompleteLocation  = errors.New("geolocation response misses city or country code")

	ErrInvalidMail    = errors.New("invalid mail")
	ErrSendingMail    = errors.New("error sending mail")
	ErrInvalidBaseURL = errors.New("invalid base url")
	ErrInvalidRedis   = errors.New("invalid redis url")
)
