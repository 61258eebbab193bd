// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"
	"os"
	"path/filepath"

	"github.com/danielhkuo/gestalent-portal/auth"
	"github.com/danielhkuo/gestalent-portal/cliparse"
	"github.com/danielhkuo/gestalent-portal/handlers"
	"github.com/danielhkuo/gestalent-portal/itembank"
	"github.com/danielhkuo/gestalent-portal/metrics"
	"github.com/danielhkuo/gestalent-portal/middleware"
	"github.com/danielhkuo/gestalent-portal/models"
	"github.com/danielhkuo/gestalent-portal/upload"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, bank *itembank.Bank, m *metrics.Metrics) *http.ServeMux {
	mux := http.NewServeMux()

	tokens := auth.NewTokenService(cfg.TokenSecret, cfg.TokenTTL)
	store := upload.NewStore(cfg.UploadDir, cfg.UploadMaxBytes)

	// Initialize handlers
	candidateHandler := handlers.NewCandidateHandler(db, cfg, store, m)
	assessmentHandler := handlers.NewAssessmentHandler(db, cfg, m)
	bigFiveHandler := handlers.NewBigFiveHandler(db, cfg, bank, m)
	loginHandler := handlers.NewLoginHandler(cfg, tokens, m)

	wrap := func(endpoint string, h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.WithMetrics(m, endpoint, h))
	}
	admin := func(endpoint string, h http.HandlerFunc) http.HandlerFunc {
		return wrap(endpoint, middleware.RequireAdmin(tokens, m, h))
	}

	// Health check
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{Status: "ok"})
	})

	// Prometheus metrics
	mux.Handle("GET /metrics", m.Handler())

	// Admin session
	mux.HandleFunc("POST /api/login", wrap("login", loginHandler.Login))

	// Candidate registration (public)
	mux.HandleFunc("POST /api/candidates", wrap("candidates_create", candidateHandler.Create))
	mux.HandleFunc("GET /api/candidates/check", wrap("candidates_check", candidateHandler.CheckEmail))

	// Questionnaire submission (public)
	mux.HandleFunc("POST /api/assessments", wrap("assessments_submit", assessmentHandler.Submit))
	mux.HandleFunc("GET /api/bigfive/items", wrap("bigfive_items", bigFiveHandler.Items))
	mux.HandleFunc("POST /api/bigfive", wrap("bigfive_submit", bigFiveHandler.Submit))

	// Admin listings (token gated)
	mux.HandleFunc("GET /api/candidates", admin("candidates_list", candidateHandler.List))
	mux.HandleFunc("GET /api/assessments", admin("assessments_list", assessmentHandler.List))
	mux.HandleFunc("GET /api/bigfive", admin("bigfive_list", bigFiveHandler.List))

	// Stored résumés
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/",
		http.FileServer(http.Dir(cfg.UploadDir))))

	// Frontend shell: serve the requested static file when it exists,
	// otherwise fall back to index.html so SPA routes deep-link correctly.
	mux.HandleFunc("GET /", spaFallback(cfg.PublicDir))

	return mux
}

func spaFallback(publicDir string) http.HandlerFunc {
	index := filepath.Join(publicDir, "index.html")

	return func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(publicDir, filepath.Clean("/"+r.URL.Path))

		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, r, path)
			return
		}

		http.ServeFile(w, r, index)
	}
}
