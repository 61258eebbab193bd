// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/gestalent-portal/auth"
	"github.com/danielhkuo/gestalent-portal/cliparse"
	"github.com/danielhkuo/gestalent-portal/metrics"
	"github.com/danielhkuo/gestalent-portal/middleware"
	"github.com/danielhkuo/gestalent-portal/models"
)

// MsgRegistrationRequired is returned when a questionnaire arrives for an
// email that never registered.
const MsgRegistrationRequired = "Debes completar el registro antes de enviar el cuestionario"

type AssessmentHandler struct {
	db      *sql.DB
	cfg     cliparse.Config
	metrics *metrics.Metrics
}

func NewAssessmentHandler(db *sql.DB, cfg cliparse.Config, m *metrics.Metrics) *AssessmentHandler {
	return &AssessmentHandler{db: db, cfg: cfg, metrics: m}
}

// Submit handles POST /api/assessments
func (h *AssessmentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitAssessmentRequest
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

	assessmentID, err := auth.GenerateID(12)
	if err != nil {
		slog.Error("failed to generate assessment ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "No se pudo guardar el cuestionario")
		return
	}

	assessment := models.Assessment{
		ID:             assessmentID,
		Name:           req.Name,
		Email:          email,
		City:           req.City,
		AreaOfInterest: req.AreaOfInterest,
		Answers:        orEmptyAnswers(req.Answers),
		Averages:       orEmptyScores(req.Averages),
		GlobalScore:    req.GlobalScore,
		CreatedAt:      time.Now(),
	}

	answersJSON, err := marshalMap(assessment.Answers)
	if err != nil {
		slog.Error("failed to encode assessment answers", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "No se pudo guardar el cuestionario")
		return
	}
	averagesJSON, err := marshalMap(assessment.Averages)
	if err != nil {
		slog.Error("failed to encode assessment averages", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "No se pudo guardar el cuestionario")
		return
	}

	_, err = h.db.Exec(`
		INSERT INTO assessment (id, name, email, city, area_of_interest, answers, averages, global_score, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, assessment.ID, assessment.Name, assessment.Email, assessment.City,
		assessment.AreaOfInterest, answersJSON, averagesJSON,
		nullableFloat(assessment.GlobalScore), assessment.CreatedAt)

	if err != nil {
		slog.Error("failed to insert assessment", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "No se pudo guardar el cuestionario")
		return
	}

	h.metrics.AssessmentsSubmitted.Inc()
	slog.Info("assessment submitted", "assessment_id", assessment.ID, "email", email)

	middleware.JSONResponse(w, http.StatusCreated, assessment)
}

// List handles GET /api/assessments (admin)
func (h *AssessmentHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT id, name, email, city, area_of_interest, answers, averages, global_score, created_at
		FROM assessment
		ORDER BY created_at DESC
		LIMIT $1
	`, models.ListLimit)

	if err != nil {
		slog.Error("failed to query assessments", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error de base de datos")
		return
	}
	defer rows.Close()

	assessments := []models.Assessment{}
	for rows.Next() {
		var a models.Assessment
		var answersJSON, averagesJSON string
		var globalScore sql.NullFloat64

		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.City, &a.AreaOfInterest,
			&answersJSON, &averagesJSON, &globalScore, &a.CreatedAt); err != nil {
			slog.Error("failed to scan assessment", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Error de base de datos")
			return
		}

		if err := decodeAnswerFields(answersJSON, averagesJSON, &a.Answers, &a.Averages); err != nil {
			slog.Error("failed to decode stored assessment", "error", err, "assessment_id", a.ID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Error de base de datos")
			return
		}

		if globalScore.Valid {
			a.GlobalScore = &globalScore.Float64
		}

		assessments = append(assessments, a)
	}

	middleware.JSONResponse(w, http.StatusOK, assessments)
}

// Storage helpers shared with the Big Five handler. Maps are stored as JSON
// text columns; nil maps are stored as empty objects so decoding stays
// uniform.

func orEmptyAnswers(m models.AnswerMap) models.AnswerMap {
	if m == nil {
		return models.AnswerMap{}
	}
	return m
}

func orEmptyScores(m models.ScoreMap) models.ScoreMap {
	if m == nil {
		return models.ScoreMap{}
	}
	return m
}

func marshalMap(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeAnswerFields(answersJSON, scoresJSON string, answers *models.AnswerMap, scores *models.ScoreMap) error {
	if err := json.Unmarshal([]byte(answersJSON), answers); err != nil {
		return err
	}
	return json.Unmarshal([]byte(scoresJSON), scores)
}

func nullableFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
