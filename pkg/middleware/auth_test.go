package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"helpdesk-system/pkg/service"
	"helpdesk-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubVerifier struct {
	active bool
	err    error
}

func (s *stubVerifier) IsUserActive(ctx context.Context, id uint64) (bool, error) {
	return s.active, s.err
}

type stubRevocations struct {
	revoked bool
	err     error
}

func (s *stubRevocations) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	return s.revoked, s.err
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func performRequest(t *testing.T, mw *AuthMiddleware, authHeader string, handler echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/tickets", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := mw.Auth(handler)(c)
	require.NoError(t, err)
	return rec
}

func newTestMiddleware(verifier *stubVerifier, revocations *stubRevocations) (*AuthMiddleware, service.JWTService) {
	jwtSvc := service.NewJWTService("test-secret", time.Hour)
	return NewAuthMiddleware(jwtSvc, verifier, revocations, zap.NewNop()), jwtSvc
}

func TestAuth_MissingHeader(t *testing.T) {
	mw, _ := newTestMiddleware(&stubVerifier{active: true}, &stubRevocations{})

	rec := performRequest(t, mw, "", okHandler)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_MalformedHeader(t *testing.T) {
	mw, _ := newTestMiddleware(&stubVerifier{active: true}, &stubRevocations{})

	rec := performRequest(t, mw, "Token abc", okHandler)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_InvalidToken(t *testing.T) {
	mw, _ := newTestMiddleware(&stubVerifier{active: true}, &stubRevocations{})

	rec := performRequest(t, mw, "Bearer pas.un.token", okHandler)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_RevokedToken(t *testing.T) {
	mw, jwtSvc := newTestMiddleware(&stubVerifier{active: true}, &stubRevocations{revoked: true})

	token, err := jwtSvc.GenerateToken(5, "user")
	require.NoError(t, err)

	rec := performRequest(t, mw, "Bearer "+token, okHandler)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_InactiveUser(t *testing.T) {
	mw, jwtSvc := newTestMiddleware(&stubVerifier{active: false}, &stubRevocations{})

	token, err := jwtSvc.GenerateToken(5, "user")
	require.NoError(t, err)

	rec := performRequest(t, mw, "Bearer "+token, okHandler)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_StashesUserInContext(t *testing.T) {
	mw, jwtSvc := newTestMiddleware(&stubVerifier{active: true}, &stubRevocations{})

	token, err := jwtSvc.GenerateToken(5, "admin")
	require.NoError(t, err)

	var gotID uint64
	var gotRole string
	handler := func(c echo.Context) error {
		var err error
		gotID, err = utils.GetUserIDFromCtx(c.Request().Context())
		require.NoError(t, err)
		gotRole, err = utils.GetUserRoleFromCtx(c.Request().Context())
		require.NoError(t, err)
		return c.String(http.StatusOK, "ok")
	}

	rec := performRequest(t, mw, "Bearer "+token, handler)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint64(5), gotID)
	assert.Equal(t, "admin", gotRole)
}

func TestRequireAdmin_ForbidsUser(t *testing.T) {
	mw, jwtSvc := newTestMiddleware(&stubVerifier{active: true}, &stubRevocations{})

	token, err := jwtSvc.GenerateToken(5, "user")
	require.NoError(t, err)

	rec := performRequest(t, mw, "Bearer "+token, func(c echo.Context) error {
		return mw.RequireAdmin(okHandler)(c)
	})

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	mw, jwtSvc := newTestMiddleware(&stubVerifier{active: true}, &stubRevocations{})

	token, err := jwtSvc.GenerateToken(5, "admin")
	require.NoError(t, err)

	rec := performRequest(t, mw, "Bearer "+token, func(c echo.Context) error {
		return mw.RequireAdmin(okHandler)(c)
	})

	assert.Equal(t, http.StatusOK, rec.Code)
}
