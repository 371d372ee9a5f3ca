// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-profiles/internal/service"
	"github.com/MKhiriev/go-profiles/internal/store"
	"github.com/MKhiriev/go-profiles/internal/utils"
	"github.com/MKhiriev/go-profiles/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrAccountInactive:         http.StatusForbidden,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	service.ErrActivationInvalid:       http.StatusBadRequest,
	service.ErrForbidden:               http.StatusForbidden,
	service.ErrPasswordHashing:         http.StatusInternalServerError,

	validators.ErrValidation: http.StatusBadRequest,

	ErrInvalidJSON: http.StatusBadRequest,
	ErrInvalidID:   http.StatusNotFound,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrEmailAlreadyExists:    http.StatusConflict,
	store.ErrAccountNotFound:       http.StatusNotFound,
	store.ErrProfileNotFound:       http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
}

// fieldErrors turns uniqueness violations into the same field-level shape
// the validators produce.
var fieldErrors = map[error]*validators.ValidationError{
	store.ErrUsernameAlreadyExists: validators.NewFieldError(validators.FieldUsername, "A user with that username already exists."),
	store.ErrEmailAlreadyExists:    validators.NewFieldError(validators.FieldEmail, "A user with that email already exists."),
}

func statusFromError(err error) int {
	_, status := matchError(err)
	return status
}

// matchError returns the known sentinel err wraps and its status.
func matchError(err error) (error, int) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return target, status
		}
	}
	return nil, http.StatusInternalServerError
}

// writeError renders err. Field-level problems are written as
// {"errors": {...}}, everything else as {"message": ...}. Messages of
// server errors are never exposed.
func writeError(w http.ResponseWriter, err error) {
	target, status := matchError(err)

	var verr *validators.ValidationError
	if errors.As(err, &verr) {
		utils.WriteJSON(w, verr, status)
		return
	}
	for target, fe := range fieldErrors {
		if errors.Is(err, target) {
			utils.WriteJSON(w, fe, status)
			return
		}
	}

	message := http.StatusText(status)
	if target != nil && status < http.StatusInternalServerError {
		message = target.Error()
	}
	utils.WriteMessage(w, message, status)
}
