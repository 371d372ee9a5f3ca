// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-profiles/internal/config"
	"github.com/MKhiriev/go-profiles/internal/logger"
	"github.com/MKhiriev/go-profiles/internal/utils"
	"github.com/MKhiriev/go-profiles/models"
)

// ipAPIResponse holds the fields of an ip-api.com JSON answer that we use.
type ipAPIResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	City        string `json:"city"`
	CountryCode string `json:"countryCode"`
}

type ipAPIGeoLocator struct {
	client *utils.HTTPClient
}

// NewIPAPIGeoLocator returns a [GeoLocator] backed by an ip-api.com
// compatible endpoint. Every lookup is bounded by geoCfg.Timeout.
func NewIPAPIGeoLocator(geoCfg config.Geo) (GeoLocator, error) {
	baseURL, err := normalizeBaseURL(geoCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	return &ipAPIGeoLocator{
		client: utils.NewHTTPClient(baseURL, geoCfg.Timeout),
	}, nil
}

// normalizeBaseURL validates raw and guarantees a trailing slash so that
// the IP is appended as the last path segment.
func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/") + "/", nil
}

// Resolve implements [GeoLocator].
func (g *ipAPIGeoLocator) Resolve(ctx context.Context, ip string) string {
	location, err := g.lookup(ctx, ip)
	if err != nil {
		logger.FromContext(ctx).Warn().
			Str("func", "ipAPIGeoLocator.Resolve").
			Str("ip", ip).
			Err(err).
			Msg("geolocation lookup degraded")
		return models.LocationLookupFailed
	}

	return location
}

func (g *ipAPIGeoLocator) lookup(ctx context.Context, ip string) (string, error) {
	ip = strings.TrimSpace(ip)
	if ip == "" {
		return "", ErrEmptyIP
	}
	if net.ParseIP(ip) == nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidIP, ip)
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetPathParam("ip", ip).
		Get("{ip}")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var body ipAPIResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return "", fmt.Errorf("decode geolocation response: %w", err)
	}
	if body.Status != "" && body.Status != "success" {
		return "", fmt.Errorf("%w: %s", ErrLookupFailed, body.Message)
	}
	if body.City == "" || body.CountryCode == "" {
		return "", ErrIncompleteLocation
	}

	return body.City + " - " + body.CountryCode, nil
}
