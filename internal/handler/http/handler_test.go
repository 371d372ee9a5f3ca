// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-profiles/internal/config"
	"github.com/MKhiriev/go-profiles/internal/logger"
	"github.com/MKhiriev/go-profiles/internal/metrics"
	"github.com/MKhiriev/go-profiles/internal/service"
	"github.com/MKhiriev/go-profiles/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	loginFn       func(ctx context.Context, req models.LoginRequest) (models.Account, error)
	createTokenFn func(ctx context.Context, account models.Account) (models.SessionToken, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.SessionToken, error)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.Account, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, account models.Account) (models.SessionToken, error) {
	if m.createTokenFn == nil {
		return stubToken("signed." + account.Username), nil
	}
	return m.createTokenFn(ctx, account)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.SessionToken, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockAccountService struct {
	signUpFn   func(ctx context.Context, req models.SignUpRequest) (models.AccountWithProfile, error)
	activateFn func(ctx context.Context, uidb64, token string) (models.Account, models.ActivationResult, error)
	resendFn   func(ctx context.Context, req models.ResendActivationRequest) error
}

func (m *mockAccountService) SignUp(ctx context.Context, req models.SignUpRequest) (models.AccountWithProfile, error) {
	return m.signUpFn(ctx, req)
}

func (m *mockAccountService) Activate(ctx context.Context, uidb64, token string) (models.Account, models.ActivationResult, error) {
	return m.activateFn(ctx, uidb64, token)
}

func (m *mockAccountService) ResendActivation(ctx context.Context, req models.ResendActivationRequest) error {
	return m.resendFn(ctx, req)
}

type mockProfileService struct {
	getFn       func(ctx context.Context, callerID, profileID int64) (models.Profile, error)
	updateFn    func(ctx context.Context, callerID, profileID int64, update models.ProfileUpdate) (models.Profile, error)
	dashboardFn func(ctx context.Context, accountID int64) (models.AccountWithProfile, error)
}

func (m *mockProfileService) GetProfile(ctx context.Context, callerID, profileID int64) (models.Profile, error) {
	return m.getFn(ctx, callerID, profileID)
}

func (m *mockProfileService) UpdateProfile(ctx context.Context, callerID, profileID int64, update models.ProfileUpdate) (models.Profile, error) {
	return m.updateFn(ctx, callerID, profileID, update)
}

func (m *mockProfileService) Dashboard(ctx context.Context, accountID int64) (models.AccountWithProfile, error) {
	return m.dashboardFn(ctx, accountID)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(ctx context.Context) string {
	return m.version
}

func (m *mockAppInfoService) GetHomeInfo(ctx context.Context) models.HomeInfo {
	return models.HomeInfo{Service: service.ServiceName, Version: m.version}
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler whose unset services panic when used.
func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()
	if services.AppInfoService == nil {
		services.AppInfoService = &mockAppInfoService{version: "test"}
	}
	return NewHandler(services, metrics.New(), config.Server{RequestTimeout: 5 * time.Second}, logger.Nop())
}

// acceptingAuth accepts the token "valid" as a session of accountID.
func acceptingAuth(accountID int64) *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.SessionToken, error) {
			if tokenString != "valid" {
				return models.SessionToken{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.SessionToken{AccountID: accountID}, nil
		},
	}
}

func stubToken(signed string) models.SessionToken {
	return models.SessionToken{
		SignedString: signed,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func jsonBody(t *testing.T, v any) *strings.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return strings.NewReader(string(b))
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName {
			return c
		}
	}
	return nil
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	m := metrics.New()
	log := logger.Nop()

	h := NewHandler(svc, m, config.Server{RequestTimeout: time.Second}, log)

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Same(t, m, h.metrics)
	assert.Equal(t, log, h.logger)
	assert.Equal(t, time.Second, h.requestTimeout)
}

func TestHome(t *testing.T) {
	h := newTestHandler(t, &service.Services{AppInfoService: &mockAppInfoService{version: "1.2.3"}})

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	info := decodeBody[models.HomeInfo](t, rec)
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, service.ServiceName, info.Service)
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
	rec := serve(h, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `go_profiles_http_requests_total{method="GET",route="/",status="200"} 1`)
}
