// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"

	"github.com/MKhiriev/go-profiles/internal/app"
	"github.com/MKhiriev/go-profiles/internal/logger"
	"github.com/MKhiriev/go-profiles/internal/metrics"
	"github.com/MKhiriev/go-profiles/internal/service"
	"github.com/MKhiriev/go-profiles/internal/store"
	"github.com/MKhiriev/go-profiles/internal/utils"
	"github.com/MKhiriev/go-profiles/internal/validators"
	"github.com/MKhiriev/go-profiles/models"
	"github.com/go-chi/chi/v5"
)

type activationResponse struct {
	Message string         `json:"message"`
	Account models.Account `json:"account"`
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, ErrInvalidJSON)
		return
	}

	if req.Location == "" {
		req.Location = clientIP(r)
	}

	created, err := h.services.AccountService.SignUp(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, validators.ErrValidation):
			h.metrics.RecordSignup(metrics.OutcomeInvalid)
		case errors.Is(err, store.ErrUsernameAlreadyExists), errors.Is(err, store.ErrEmailAlreadyExists):
			h.metrics.RecordSignup(metrics.OutcomeConflict)
		default:
			log.Err(err).Msg("unexpected error occurred during signup")
			h.metrics.RecordSignup(metrics.OutcomeError)
		}
		writeError(w, err)
		return
	}

	h.metrics.RecordSignup(metrics.OutcomeSuccess)

	w.Header().Set("Location", "/account-activation-sent")
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) activationSent(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, app.MsgActivationSent, http.StatusOK)
}

// resendActivation answers 202 whether or not the address is known.
func (h *Handler) resendActivation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ResendActivationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, ErrInvalidJSON)
		return
	}

	if err := h.services.AccountService.ResendActivation(ctx, req); err != nil {
		if !errors.Is(err, validators.ErrValidation) {
			log.Err(err).Msg("unexpected error occurred during activation resend")
		}
		writeError(w, err)
		return
	}

	utils.WriteMessage(w, app.MsgActivationResent, http.StatusAccepted)
}

// activate is the target of the mailed link. Every failure produces the same
// response.
func (h *Handler) activate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	uidb64 := chi.URLParam(r, "uidb64")
	token := chi.URLParam(r, "token")

	if !service.ActivationTokenPattern.MatchString(token) {
		h.metrics.RecordActivation(metrics.OutcomeInvalid)
		utils.WriteMessage(w, app.MsgActivationInvalid, http.StatusBadRequest)
		return
	}

	account, result, err := h.services.AccountService.Activate(ctx, uidb64, token)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during activation")
		h.metrics.RecordActivation(metrics.OutcomeError)
		writeError(w, err)
		return
	}

	if result != models.ActivationActivated {
		h.metrics.RecordActivation(metrics.OutcomeInvalid)
		utils.WriteMessage(w, app.MsgActivationInvalid, http.StatusBadRequest)
		return
	}

	h.metrics.RecordActivation(metrics.OutcomeSuccess)

	session, err := h.services.AuthService.CreateToken(ctx, account)
	if err != nil {
		// the account is active already; the user can still log in
		log.Err(err).Int64("account_id", account.AccountID).Msg("creation of token failed after activation")
	} else {
		setSession(w, r, session)
	}

	utils.WriteJSON(w, activationResponse{Message: app.MsgActivated, Account: account}, http.StatusOK)
}

// clientIP returns the host part of RemoteAddr, which middleware.RealIP has
// already replaced with the forwarded address when one was sent.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
