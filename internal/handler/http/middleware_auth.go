// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-profiles/internal/logger"
	"github.com/MKhiriev/go-profiles/internal/utils"
)

// auth is an HTTP middleware that enforces session-based authentication.
//
// The session JWT is taken from the "session" cookie or, when the cookie is
// absent, from an "Authorization: Bearer <token>" header. It is validated via
// [service.AuthService.ParseToken] and the authenticated account id is stored
// in the request context with [utils.WithAccountID].
//
// Requests without a valid session are rejected with 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := sessionTokenFromRequest(r)
		if err != nil {
			log.Debug().Err(err).Msg("request without session")
			utils.WriteMessage(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			writeError(w, err)
			return
		}

		ctx = utils.WithAccountID(ctx, token.AccountID)
		ctx = log.WithAccountID(token.AccountID).WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionTokenFromRequest prefers the session cookie over the
// Authorization header.
func sessionTokenFromRequest(r *http.Request) (string, error) {
	if c, err := r.Cookie(sessionCookieName); err == nil && c.Value != "" {
		return c.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrNoSession
	}

	return utils.ParseBearerToken(authHeader)
}
