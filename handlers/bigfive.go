// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/gestalent-portal/auth"
	"github.com/danielhkuo/gestalent-portal/cliparse"
	"github.com/danielhkuo/gestalent-portal/itembank"
	"github.com/danielhkuo/gestalent-portal/metrics"
	"github.com/danielhkuo/gestalent-portal/middleware"
	"github.com/danielhkuo/gestalent-portal/models"
)

type BigFiveHandler struct {
	db      *sql.DB
	cfg     cliparse.Config
	bank    *itembank.Bank
	metrics *metrics.Metrics
}

func NewBigFiveHandler(db *sql.DB, cfg cliparse.Config, bank *itembank.Bank, m *metrics.Metrics) *BigFiveHandler {
	return &BigFiveHandler{db: db, cfg: cfg, bank: bank, metrics: m}
}

// Items handles GET /api/bigfive/items
// Serves the item bank loaded at startup; empty list if the resource was
// absent.
func (h *BigFiveHandler) Items(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.bank.Items())
}

// Submit handles POST /api/bigfive
func (h *BigFiveHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitBigFiveRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	if req.Email == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "El email es obligatorio")
		return
	}

	email := NormalizeEmail(req.Email)

	exists, err := CandidateExists(h.db, email)
	if err != nil {
		slog.Error("failed to query candidate", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error de base de datos")
		return
	}
	if !exists {
		middleware.ErrorResponse(w, http.StatusBadRequest, MsgRegistrationRequired)
		return
	}

	resultID, err := auth.GenerateID(12)
	if err != nil {
		slog.Error("failed to generate result ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "No se pudo guardar el test")
		return
	}

	result := models.BigFiveResult{
		ID:             resultID,
		Name:           req.Name,
		Email:          email,
		City:           req.City,
		AreaOfInterest: req.AreaOfInterest,
		Answers:        orEmptyAnswers(req.Answers),
		Scores:         orEmptyScores(req.Scores),
		GlobalScore:    req.GlobalScore,
		CreatedAt:      time.Now(),
	}

	answersJSON, err := marshalMap(result.Answers)
	if err != nil {
		slog.Error("failed to encode bigfive answers", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "No se pudo guardar el test")
		return
	}
	scoresJSON, err := marshalMap(result.Scores)
	if err != nil {
		slog.Error("failed to encode bigfive scores", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "No se pudo guardar el test")
		return
	}

	_, err = h.db.Exec(`
		INSERT INTO bigfive_result (id, name, email, city, area_of_interest, answers, scores, global_score, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, result.ID, result.Name, result.Email, result.City, result.AreaOfInterest,
		answersJSON, scoresJSON, nullableFloat(result.GlobalScore), result.CreatedAt)

	if err != nil {
		slog.Error("failed to insert bigfive result", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "No se pudo guardar el test")
		return
	}

	h.metrics.BigFiveSubmitted.Inc()
	slog.Info("bigfive result submitted", "result_id", result.ID, "email", email)

	middleware.JSONResponse(w, http.StatusCreated, result)
}

// List handles GET /api/bigfive (admin)
func (h *BigFiveHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT id, name, email, city, area_of_interest, answers, scores, global_score, created_at
		FROM bigfive_result
		ORDER BY created_at DESC
		LIMIT $1
	`, models.ListLimit)

	if err != nil {
		slog.Error("failed to query bigfive results", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error de base de datos")
		return
	}
	defer rows.Close()

	results := []models.BigFiveResult{}
	for rows.Next() {
		var res models.BigFiveResult
		var answersJSON, scoresJSON string
		var globalScore sql.NullFloat64

		if err := rows.Scan(&res.ID, &res.Name, &res.Email, &res.City, &res.AreaOfInterest,
			&answersJSON, &scoresJSON, &globalScore, &res.CreatedAt); err != nil {
			slog.Error("failed to scan bigfive result", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Error de base de datos")
			return
		}

		if err := decodeAnswerFields(answersJSON, scoresJSON, &res.Answers, &res.Scores); err != nil {
			slog.Error("failed to decode stored bigfive result", "error", err, "result_id", res.ID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Error de base de datos")
			return
		}

		if globalScore.Valid {
			res.GlobalScore = &globalScore.Float64
		}

		results = append(results, res)
	}

	middleware.JSONResponse(w, http.StatusOK, results)
}
