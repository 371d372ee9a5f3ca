// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-profiles/internal/logger"
	"github.com/MKhiriev/go-profiles/internal/metrics"
	"github.com/MKhiriev/go-profiles/internal/service"
	"github.com/MKhiriev/go-profiles/internal/utils"
	"github.com/MKhiriev/go-profiles/internal/validators"
	"github.com/MKhiriev/go-profiles/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.GetHomeInfo(r.Context()), http.StatusOK)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		utils.WriteMessage(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	dashboard, err := h.services.ProfileService.Dashboard(ctx, accountID)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("error loading dashboard")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, dashboard, http.StatusOK)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accountID, profileID, err := callerAndProfile(r)
	if err != nil {
		writeError(w, err)
		return
	}

	profile, err := h.services.ProfileService.GetProfile(ctx, accountID, profileID)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) editProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, profileID, err := callerAndProfile(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var update models.ProfileUpdate
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, ErrInvalidJSON)
		return
	}

	profile, err := h.services.ProfileService.UpdateProfile(ctx, accountID, profileID, update)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			h.metrics.RecordProfileEdit(metrics.OutcomeForbidden)
		case errors.Is(err, validators.ErrValidation):
			h.metrics.RecordProfileEdit(metrics.OutcomeInvalid)
		default:
			h.metrics.RecordProfileEdit(metrics.OutcomeError)
		}
		writeError(w, err)
		return
	}

	h.metrics.RecordProfileEdit(metrics.OutcomeSuccess)
	utils.WriteJSON(w, profile, http.StatusOK)
}

// callerAndProfile reads the authenticated account id and the {id} path
// parameter.
func callerAndProfile(r *http.Request) (int64, int64, error) {
	accountID, ok := utils.GetAccountIDFromContext(r.Context())
	if !ok {
		return 0, 0, service.ErrTokenIsExpiredOrInvalid
	}

	profileID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || profileID <= 0 {
		return 0, 0, ErrInvalidID
	}

	return accountID, profileID, nil
}
