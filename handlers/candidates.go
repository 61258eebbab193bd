// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/gestalent-portal/auth"
	"github.com/danielhkuo/gestalent-portal/cliparse"
	"github.com/danielhkuo/gestalent-portal/metrics"
	"github.com/danielhkuo/gestalent-portal/middleware"
	"github.com/danielhkuo/gestalent-portal/models"
	"github.com/danielhkuo/gestalent-portal/upload"
)

type CandidateHandler struct {
	db      *sql.DB
	cfg     cliparse.Config
	store   *upload.Store
	metrics *metrics.Metrics
}

func NewCandidateHandler(db *sql.DB, cfg cliparse.Config, store *upload.Store, m *metrics.Metrics) *CandidateHandler {
	return &CandidateHandler{db: db, cfg: cfg, store: store, metrics: m}
}

// Create handles POST /api/candidates
// Accepts JSON or multipart/form-data (with an optional résumé under "cv").
func (h *CandidateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCandidateRequest
	var cvFilename *string

	switch {
	case isMultipart(r):
		if err := r.ParseMultipartForm(h.cfg.UploadMaxBytes + 1<<20); err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Formulario inválido")
			return
		}
		req = candidateFromForm(r)

		name, err := h.saveResume(r)
		if err != nil {
			if errors.Is(err, upload.ErrTooLarge) {
				middleware.ErrorResponse(w, http.StatusBadRequest, "El archivo supera el tamaño máximo permitido")
				return
			}
			slog.Error("failed to store resume", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "No se pudo guardar el archivo")
			return
		}
		if name != "" {
			cvFilename = &name
		}
	case isFormEncoded(r):
		if err := r.ParseForm(); err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Formulario inválido")
			return
		}
		req = candidateFromForm(r)
	default:
		if err := middleware.ParseJSONBody(r, &req); err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "JSON inválido")
			return
		}
	}

	// Validate input
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "El nombre es obligatorio")
		return
	}
	if req.Email == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "El email es obligatorio")
		return
	}

	candidateID, err := auth.GenerateID(12)
	if err != nil {
		slog.Error("failed to generate candidate ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "No se pudo registrar el candidato")
		return
	}

	now := time.Now()
	candidate := models.Candidate{
		ID:             candidateID,
		Name:           req.Name,
		Email:          NormalizeEmail(req.Email),
		Phone:          req.Phone,
		City:           req.City,
		AreaOfInterest: req.AreaOfInterest,
		DesiredRole:    req.DesiredRole,
		CVFilename:     cvFilename,
		Origin:         models.OriginPortal,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err = h.db.Exec(`
		INSERT INTO candidate (id, name, email, phone, city, area_of_interest, desired_role, cv_filename, origin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, candidate.ID, candidate.Name, candidate.Email, candidate.Phone, candidate.City,
		candidate.AreaOfInterest, candidate.DesiredRole, candidate.CVFilename,
		candidate.Origin, candidate.CreatedAt, candidate.UpdatedAt)

	if err != nil {
		slog.Error("failed to insert candidate", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "No se pudo registrar el candidato")
		return
	}

	h.metrics.CandidatesRegistered.Inc()
	slog.Info("candidate registered", "candidate_id", candidate.ID, "email", candidate.Email)

	middleware.JSONResponse(w, http.StatusCreated, candidate)
}

// CheckEmail handles GET /api/candidates/check?email=
func (h *CandidateHandler) CheckEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "El parámetro email es obligatorio")
		return
	}

	exists, err := CandidateExists(h.db, NormalizeEmail(email))
	if err != nil {
		slog.Error("failed to query candidate", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error de base de datos")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CheckEmailResponse{Exists: exists})
}

// List handles GET /api/candidates (admin)
func (h *CandidateHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT id, name, email, phone, city, area_of_interest, desired_role, cv_filename, origin, created_at, updated_at
		FROM candidate
		ORDER BY created_at DESC
		LIMIT $1
	`, models.ListLimit)

	if err != nil {
		slog.Error("failed to query candidates", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error de base de datos")
		return
	}
	defer rows.Close()

	candidates := []models.Candidate{}
	for rows.Next() {
		var c models.Candidate
		var desiredRole, cvFilename sql.NullString

		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.City, &c.AreaOfInterest,
			&desiredRole, &cvFilename, &c.Origin, &c.CreatedAt, &c.UpdatedAt); err != nil {
			slog.Error("failed to scan candidate", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Error de base de datos")
			return
		}

		if desiredRole.Valid {
			c.DesiredRole = &desiredRole.String
		}
		if cvFilename.Valid {
			c.CVFilename = &cvFilename.String
		}

		candidates = append(candidates, c)
	}

	middleware.JSONResponse(w, http.StatusOK, candidates)
}

// saveResume stores the uploaded résumé, if any. The frontend sends it as
// "cv"; the legacy upload form used "file", so both are accepted.
func (h *CandidateHandler) saveResume(r *http.Request) (string, error) {
	file, header, err := r.FormFile("cv")
	if errors.Is(err, http.ErrMissingFile) {
		file, header, err = r.FormFile("file")
	}
	if errors.Is(err, http.ErrMissingFile) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	file.Close()

	return h.store.Save(header)
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

func isFormEncoded(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded")
}

func candidateFromForm(r *http.Request) models.CreateCandidateRequest {
	req := models.CreateCandidateRequest{
		Name:           r.FormValue("nombre"),
		Email:          r.FormValue("email"),
		Phone:          r.FormValue("telefono"),
		City:           r.FormValue("ciudad"),
		AreaOfInterest: r.FormValue("areaInteres"),
	}
	if role := r.FormValue("puestoDeseado"); role != "" {
		req.DesiredRole = &role
	}
	return req
}

// NormalizeEmail lower-cases and trims an email address. Every lookup and
// every stored email goes through this, which is what makes the
// register-then-submit match work regardless of how the frontend cased it.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CandidateExists reports whether a candidate with the normalized email has
// registered. The questionnaire handlers call this before accepting a
// submission; there is no database-level constraint behind it.
func CandidateExists(db *sql.DB, email string) (bool, error) {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM candidate WHERE email = $1", email).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
