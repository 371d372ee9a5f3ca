// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-profiles/internal/config"
	"github.com/MKhiriev/go-profiles/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Adapters groups the outbound integrations used by the services.
type Adapters struct {
	GeoLocator GeoLocator
	Mailer     Mailer

	redis *redis.Client
}

// NewAdapters builds the geolocation client (cached when a Redis URL is
// configured) and the mailer (SMTP when a host is configured, log otherwise).
func NewAdapters(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Adapters, error) {
	geo, err := NewIPAPIGeoLocator(cfg.Adapter.Geo)
	if err != nil {
		return nil, err
	}

	adapters := &Adapters{GeoLocator: geo}

	if cfg.Storage.Cache.RedisURL != "" {
		client, err := NewRedisClient(ctx, cfg.Storage.Cache.RedisURL)
		if err != nil {
			return nil, err
		}
		adapters.redis = client
		adapters.GeoLocator = NewCachedGeoLocator(geo, client, cfg.Storage.Cache.GeoTTL)
		log.Info().Msg("geolocation cache enabled")
	}

	if cfg.Adapter.Mail.Host == "" {
		log.Warn().Msg("smtp host not configured, activation mails will be logged")
		adapters.Mailer = NewLogMailer(log)
		return adapters, nil
	}

	adapters.Mailer, err = NewSMTPMailer(cfg.Adapter.Mail)
	if err != nil {
		_ = adapters.Close()
		return nil, fmt.Errorf("error creating mailer: %w", err)
	}

	return adapters, nil
}

// Close releases the Redis connection pool if one was opened.
func (a *Adapters) Close() error {
	if a.redis == nil {
		return nil
	}
	return a.redis.Close()
}
