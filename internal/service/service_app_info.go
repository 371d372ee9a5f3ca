// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-profiles/internal/config"
	"github.com/MKhiriev/go-profiles/internal/logger"
	"github.com/MKhiriev/go-profiles/models"
)

// ServiceName is reported by the home endpoint.
const ServiceName = "go-profiles"

type appInfoService struct {
	appVersion string
	buildInfo  models.AppBuildInfo

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		buildInfo:  buildInfo,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetHomeInfo(ctx context.Context) models.HomeInfo {
	return models.HomeInfo{
		Service:      ServiceName,
		Version:      s.appVersion,
		BuildVersion: s.buildInfo.BuildVersion(),
		BuildDate:    s.buildInfo.BuildDate(),
		BuildCommit:  s.buildInfo.BuildCommit(),
	}
}
