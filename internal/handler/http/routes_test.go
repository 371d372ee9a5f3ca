// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-profiles/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestRoutes_AuthRequired(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: acceptingAuth(1), ProfileService: &mockProfileService{}})

	tests := []struct {
		method string
		path   string
	}{
		{method: http.MethodGet, path: "/dashboard"},
		{method: http.MethodGet, path: "/profile/1"},
		{method: http.MethodPost, path: "/profile/1/edit"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := serve(h, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("Authorization", "Bearer forged")
			rec = serve(h, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRoutes_WrongMethodIsNotFound(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	tests := []struct {
		method string
		path   string
	}{
		{method: http.MethodGet, path: "/signup"},
		{method: http.MethodGet, path: "/login"},
		{method: http.MethodDelete, path: "/"},
		{method: http.MethodPost, path: "/account-activation-sent"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := serve(h, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestRoutes_UnknownPath(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutes_EchoTraceID(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "trace-1")
	rec := serve(h, req)

	assert.Equal(t, "trace-1", rec.Header().Get(traceIDHeader))
}
