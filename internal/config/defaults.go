// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// defaultConfig returns the values used when no source sets a field.
// ActivationTimeout deliberately has no default.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      "go-profiles",
			TokenDuration:    24 * time.Hour,
			PasswordHashCost: 10,
			BaseURL:          "http://localhost:8080",
			LogLevel:         "debug",
			Version:          "dev",
		},
		Storage: Storage{
			DB:    DB{Driver: DriverPostgres},
			Cache: Cache{GeoTTL: 24 * time.Hour},
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Adapter: Adapter{
			Geo: Geo{
				BaseURL: "http://ip-api.com/json/",
				Timeout: 3 * time.Second,
			},
			Mail: Mail{
				Port: 587,
				From: "no-reply@localhost",
			},
		},
	}
}
