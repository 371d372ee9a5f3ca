// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-profiles/internal/service"
	"github.com/MKhiriev/go-profiles/internal/store"
	"github.com/MKhiriev/go-profiles/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: service.ErrForbidden, want: http.StatusForbidden},
		{err: fmt.Errorf("wrapped: %w", service.ErrInvalidCredentials), want: http.StatusUnauthorized},
		{err: validators.NewFieldError(validators.FieldBio, "x"), want: http.StatusBadRequest},
		{err: fmt.Errorf("signup failed: %w", store.ErrEmailAlreadyExists), want: http.StatusConflict},
		{err: store.ErrAccountNotFound, want: http.StatusNotFound},
		{err: fmt.Errorf("%w: boom", store.ErrExecutingQuery), want: http.StatusInternalServerError},
		{err: errors.New("unknown"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantBody string
	}{
		{
			name:     "validation fields",
			err:      validators.NewFieldError(validators.FieldBio, "too long"),
			wantBody: `{"errors":{"bio":"too long"}}`,
		},
		{
			name:     "duplicate username as field error",
			err:      fmt.Errorf("signup failed: %w", store.ErrUsernameAlreadyExists),
			wantBody: `{"errors":{"username":"A user with that username already exists."}}`,
		},
		{
			name:     "client error message",
			err:      fmt.Errorf("profile update failed: %w", service.ErrForbidden),
			wantBody: `{"message":"forbidden"}`,
		},
		{
			name:     "server error hides detail",
			err:      fmt.Errorf("%w: password authentication failed for user", store.ErrBeginningTransaction),
			wantBody: `{"message":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(rec, tt.err)

			assert.Equal(t, statusFromError(tt.err), rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
