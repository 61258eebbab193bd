// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/gestalent-portal/auth"
	"github.com/danielhkuo/gestalent-portal/metrics"
	"github.com/danielhkuo/gestalent-portal/models"
	"github.com/danielhkuo/gestalent-portal/testutil"
)

func attemptLogin(t *testing.T, h *LoginHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	h.Login(rec, req)
	return rec
}

func TestLogin(t *testing.T) {
	cfg := testutil.GetTestConfig(t)
	tokens := auth.NewTokenService(cfg.TokenSecret, cfg.TokenTTL)
	h := NewLoginHandler(cfg, tokens, metrics.New())

	rec := attemptLogin(t, h, `{"username":"admin","password":"test-password"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)

	// The token round-trips through the same service
	claims, err := tokens.Verify(body.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)

	// Expiry is the configured TTL, give or take test slack
	assert.WithinDuration(t, time.Now().Add(cfg.TokenTTL), body.ExpiresAt, 5*time.Second)
}

func TestLoginBadCredentials(t *testing.T) {
	cfg := testutil.GetTestConfig(t)
	tokens := auth.NewTokenService(cfg.TokenSecret, cfg.TokenTTL)
	h := NewLoginHandler(cfg, tokens, metrics.New())

	for name, body := range map[string]string{
		"wrong password": `{"username":"admin","password":"nope"}`,
		"wrong user":     `{"username":"root","password":"test-password"}`,
		"empty":          `{}`,
	} {
		rec := attemptLogin(t, h, body)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, name)

		var resp models.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Credenciales inválidas", resp.Message, name)
	}
}

func TestLoginMalformedBody(t *testing.T) {
	cfg := testutil.GetTestConfig(t)
	tokens := auth.NewTokenService(cfg.TokenSecret, cfg.TokenTTL)
	h := NewLoginHandler(cfg, tokens, metrics.New())

	rec := attemptLogin(t, h, `{"username":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
