package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// OriginPortal is the default origin tag stamped on every registration that
// comes through this backend.
const OriginPortal = "Portal GesTalent"

// ListLimit caps every admin listing query.
const ListLimit = 1000

// AnswerValue is a single questionnaire answer. The frontend sends either a
// free-text answer or a numeric one depending on the question type, so both
// are accepted; anything else is rejected at the boundary.
type AnswerValue struct {
	Text     string
	Number   float64
	IsNumber bool
}

func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		v.Number = num
		v.IsNumber = true
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		v.Text = text
		v.IsNumber = false
		return nil
	}

	return fmt.Errorf("answer must be a string or a number, got %s", string(data))
}

func (v AnswerValue) MarshalJSON() ([]byte, error) {
	if v.IsNumber {
		return json.Marshal(v.Number)
	}
	return json.Marshal(v.Text)
}

// AnswerMap holds raw questionnaire answers keyed by item ID.
type AnswerMap map[string]AnswerValue

// ScoreMap holds computed numeric scores keyed by category or dimension.
type ScoreMap map[string]float64

// Request types

type CreateCandidateRequest struct {
	Name           string  `json:"nombre"`
	Email          string  `json:"email"`
	Phone          string  `json:"telefono"`
	City           string  `json:"ciudad"`
	AreaOfInterest string  `json:"areaInteres"`
	DesiredRole    *string `json:"puestoDeseado,omitempty"`
}

type SubmitAssessmentRequest struct {
	Name           string    `json:"nombre"`
	Email          string    `json:"email"`
	City           string    `json:"ciudad"`
	AreaOfInterest string    `json:"areaInteres"`
	Answers        AnswerMap `json:"respuestas"`
	Averages       ScoreMap  `json:"promedios"`
	GlobalScore    *float64  `json:"puntajeGlobal,omitempty"`
}

type SubmitBigFiveRequest struct {
	Name           string    `json:"nombre"`
	Email          string    `json:"email"`
	City           string    `json:"ciudad"`
	AreaOfInterest string    `json:"areaInteres"`
	Answers        AnswerMap `json:"respuestas"`
	Scores         ScoreMap  `json:"puntuaciones"`
	GlobalScore    *float64  `json:"puntajeGlobal,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Response types

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type CheckEmailResponse struct {
	Exists bool `json:"exists"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// Domain types

type Candidate struct {
	ID             string    `json:"id"`
	Name           string    `json:"nombre"`
	Email          string    `json:"email"`
	Phone          string    `json:"telefono"`
	City           string    `json:"ciudad"`
	AreaOfInterest string    `json:"areaInteres"`
	DesiredRole    *string   `json:"puestoDeseado,omitempty"`
	CVFilename     *string   `json:"cvArchivo,omitempty"`
	Origin         string    `json:"origen"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type Assessment struct {
	ID             string    `json:"id"`
	Name           string    `json:"nombre"`
	Email          string    `json:"email"`
	City           string    `json:"ciudad"`
	AreaOfInterest string    `json:"areaInteres"`
	Answers        AnswerMap `json:"respuestas"`
	Averages       ScoreMap  `json:"promedios"`
	GlobalScore    *float64  `json:"puntajeGlobal,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

type BigFiveResult struct {
	ID             string    `json:"id"`
	Name           string    `json:"nombre"`
	Email          string    `json:"email"`
	City           string    `json:"ciudad"`
	AreaOfInterest string    `json:"areaInteres"`
	Answers        AnswerMap `json:"respuestas"`
	Scores         ScoreMap  `json:"puntuaciones"`
	GlobalScore    *float64  `json:"puntajeGlobal,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
