// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the merged [StructuredConfig] satisfies all
// invariants required at startup.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: session token sign key and duration are required", ErrInvalidAppConfigs)
	}
	if cfg.App.ActivationSecret == "" {
		return fmt.Errorf("%w: activation secret is required", ErrInvalidAppConfigs)
	}
	if cfg.App.ActivationTimeout <= 0 {
		return fmt.Errorf("%w: activation timeout is required", ErrInvalidAppConfigs)
	}
	if cfg.App.BaseURL == "" {
		return fmt.Errorf("%w: base url is required", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty HTTP address", ErrInvalidServerConfigs)
	}

	if cfg.Adapter.Geo.BaseURL == "" || cfg.Adapter.Geo.Timeout <= 0 {
		return fmt.Errorf("%w: geolocation url and timeout are required", ErrInvalidAdapterConfigs)
	}
	if cfg.Adapter.Mail.Host != "" && (cfg.Adapter.Mail.Port == 0 || cfg.Adapter.Mail.From == "") {
		return fmt.Errorf("%w: smtp port and sender are required", ErrInvalidAdapterConfigs)
	}

	return nil
}
