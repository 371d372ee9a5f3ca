// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client for outbound calls to third-party services.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client bound to baseURL whose requests fail once
// timeout elapses. Retries are disabled: callers decide how to degrade.
//
//	client := utils.NewHTTPClient("http://ip-api.com/json/", 3*time.Second)
//	resp, err := client.R().SetContext(ctx).Get("8.8.8.8")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: cli}
}
