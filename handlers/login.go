// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/gestalent-portal/auth"
	"github.com/danielhkuo/gestalent-portal/cliparse"
	"github.com/danielhkuo/gestalent-portal/metrics"
	"github.com/danielhkuo/gestalent-portal/middleware"
	"github.com/danielhkuo/gestalent-portal/models"
)

type LoginHandler struct {
	cfg     cliparse.Config
	tokens  *auth.TokenService
	metrics *metrics.Metrics
}

func NewLoginHandler(cfg cliparse.Config, tokens *auth.TokenService, m *metrics.Metrics) *LoginHandler {
	return &LoginHandler{cfg: cfg, tokens: tokens, metrics: m}
}

// Login handles POST /api/login
func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	if err := auth.CheckCredentials(req.Username, req.Password, h.cfg.AdminUser, h.cfg.AdminPassword); err != nil {
		slog.Warn("failed login attempt", "username", req.Username)
		h.metrics.AuthFailures.Inc()
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Credenciales inválidas")
		return
	}

	token, expiresAt, err := h.tokens.Issue(req.Username)
	if err != nil {
		slog.Error("failed to issue token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "No se pudo iniciar sesión")
		return
	}

	slog.Info("admin logged in", "username", req.Username)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	})
}
