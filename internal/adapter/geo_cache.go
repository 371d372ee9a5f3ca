// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-profiles/internal/logger"
	"github.com/MKhiriev/go-profiles/models"
	"github.com/redis/go-redis/v9"
)

const geoCacheKeyPrefix = "geo:"

// errCacheMiss is returned by a [geoCache] when the key is absent.
var errCacheMiss = errors.New("cache miss")

// geoCache is the subset of key-value operations cachedGeoLocator needs.
type geoCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}

type redisGeoCache struct {
	client *redis.Client
}

// NewRedisClient parses redisURL and returns a connected client.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRedis, err)
	}

	client := redis.NewClient(opts)
	if err = client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("error pinging redis: %w", err)
	}

	return client, nil
}

func (r *redisGeoCache) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", errCacheMiss
	}
	return value, err
}

func (r *redisGeoCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

// cachedGeoLocator remembers successful lookups. Degraded answers are never
// cached so a provider outage does not outlive itself.
type cachedGeoLocator struct {
	next  GeoLocator
	cache geoCache
	ttl   time.Duration
}

// NewCachedGeoLocator wraps next with a Redis-backed cache.
func NewCachedGeoLocator(next GeoLocator, client *redis.Client, ttl time.Duration) GeoLocator {
	return &cachedGeoLocator{next: next, cache: &redisGeoCache{client: client}, ttl: ttl}
}

// Resolve implements [GeoLocator]. Cache errors are logged and bypassed.
func (c *cachedGeoLocator) Resolve(ctx context.Context, ip string) string {
	log := logger.FromContext(ctx)
	key := geoCacheKeyPrefix + ip

	cached, err := c.cache.Get(ctx, key)
	switch {
	case err == nil:
		return cached
	case !errors.Is(err, errCacheMiss):
		log.Warn().Str("func", "cachedGeoLocator.Resolve").Err(err).Msg("error reading geolocation cache")
	}

	location := c.next.Resolve(ctx, ip)
	if location == models.LocationLookupFailed {
		return location
	}

	if err = c.cache.Set(ctx, key, location, c.ttl); err != nil {
		log.Warn().Str("func", "cachedGeoLocator.Resolve").Err(err).Msg("error writing geolocation cache")
	}

	return location
}
