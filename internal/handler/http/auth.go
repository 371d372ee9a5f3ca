// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-profiles/internal/logger"
	"github.com/MKhiriev/go-profiles/internal/metrics"
	"github.com/MKhiriev/go-profiles/internal/service"
	"github.com/MKhiriev/go-profiles/internal/utils"
	"github.com/MKhiriev/go-profiles/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, ErrInvalidJSON)
		return
	}

	account, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrAccountInactive),
			errors.Is(err, service.ErrInvalidDataProvided):
			log.Info().Err(err).Str("username", req.Username).Msg("login rejected")
			h.metrics.RecordLogin(metrics.OutcomeInvalid)
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			h.metrics.RecordLogin(metrics.OutcomeError)
		}
		writeError(w, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, account)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		h.metrics.RecordLogin(metrics.OutcomeError)
		writeError(w, err)
		return
	}

	h.metrics.RecordLogin(metrics.OutcomeSuccess)
	log.Debug().Int64("account_id", account.AccountID).Msg("account successfully logged in")

	setSession(w, r, token)
	utils.WriteJSON(w, account, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	clearSession(w, r)
	w.WriteHeader(http.StatusNoContent)
}
