// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-profiles/internal/adapter"
	"github.com/MKhiriev/go-profiles/internal/config"
	"github.com/MKhiriev/go-profiles/internal/logger"
	"github.com/MKhiriev/go-profiles/internal/store"
	"github.com/MKhiriev/go-profiles/models"
)

type Services struct {
	AuthService    AuthService
	AccountService AccountService
	ProfileService ProfileService
	AppInfoService AppInfoService
}

func NewServices(storage store.Storage, adapters *adapter.Adapters, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	tokens := NewActivationTokenService(cfg.App.ActivationSecret, cfg.App.ActivationTimeout)

	accountService := NewAccountValidationService().Wrap(
		NewAccountService(storage, adapters.GeoLocator, adapters.Mailer, tokens, cfg.App, logger),
	)
	profileService := NewProfileValidationService().Wrap(
		NewProfileService(storage, logger),
	)

	return &Services{
		AuthService:    NewAuthService(storage.Accounts(), cfg.App, logger),
		AccountService: accountService,
		ProfileService: profileService,
		AppInfoService: appInfoService,
	}, nil
}
