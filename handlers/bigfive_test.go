// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/gestalent-portal/itembank"
	"github.com/danielhkuo/gestalent-portal/metrics"
	"github.com/danielhkuo/gestalent-portal/models"
	"github.com/danielhkuo/gestalent-portal/testutil"
)

const bigFivePayload = `{
	"nombre": "Ana",
	"email": "ana@x.com",
	"ciudad": "Madrid",
	"areaInteres": "Tecnología",
	"respuestas": {"1": 4, "2": 2, "3": 5},
	"puntuaciones": {"extraversion": 3.5, "apertura": 4.2},
	"puntajeGlobal": 3.8
}`

func newBigFiveHandler(t *testing.T, bank *itembank.Bank) (*BigFiveHandler, *sql.DB) {
	t.Helper()

	conn := testutil.SetupTestDB(t)
	if bank == nil {
		bank = emptyBank(t)
	}
	h := NewBigFiveHandler(conn, testutil.GetTestConfig(t), bank, metrics.New())
	return h, conn
}

func submitBigFive(t *testing.T, h *BigFiveHandler, payload string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/bigfive", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	h.Submit(rec, req)
	return rec
}

func emptyBank(t *testing.T) *itembank.Bank {
	t.Helper()

	bank, err := itembank.Load(t.TempDir() + "/missing.json")
	require.NoError(t, err)
	return bank
}

func loadedBank(t *testing.T) *itembank.Bank {
	t.Helper()

	path := t.TempDir() + "/items.json"
	content := `[
		{"id": 1, "texto": "Me siento cómodo/a rodeado/a de gente.", "dimension": "extraversion", "invertido": false},
		{"id": 2, "texto": "Prefiero quedarme en un segundo plano.", "dimension": "extraversion", "invertido": true}
	]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	bank, err := itembank.Load(path)
	require.NoError(t, err)
	return bank
}

func TestBigFiveItems(t *testing.T) {
	h, _ := newBigFiveHandler(t, loadedBank(t))

	rec := httptest.NewRecorder()
	h.Items(rec, httptest.NewRequest(http.MethodGet, "/api/bigfive/items", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var items []itembank.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "extraversion", items[0].Dimension)
}

func TestBigFiveItemsEmptyBank(t *testing.T) {
	h, _ := newBigFiveHandler(t, nil)

	rec := httptest.NewRecorder()
	h.Items(rec, httptest.NewRequest(http.MethodGet, "/api/bigfive/items", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestSubmitBigFiveWithoutRegistration(t *testing.T) {
	h, conn := newBigFiveHandler(t, nil)

	rec := submitBigFive(t, h, `{"email":"new@x.com","respuestas":{"1":3}}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, MsgRegistrationRequired, body.Message)

	var count int
	require.NoError(t, conn.QueryRow("SELECT COUNT(*) FROM bigfive_result").Scan(&count))
	assert.Zero(t, count)
}

func TestSubmitBigFive(t *testing.T) {
	h, conn := newBigFiveHandler(t, nil)

	testutil.CreateTestCandidate(t, conn, "ana@x.com", time.Now())

	rec := submitBigFive(t, h, bigFivePayload)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.BigFiveResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "ana@x.com", created.Email)
	assert.Equal(t, 3.5, created.Scores["extraversion"])
	require.NotNil(t, created.GlobalScore)
	assert.Equal(t, 3.8, *created.GlobalScore)

	var count int
	require.NoError(t, conn.QueryRow("SELECT COUNT(*) FROM bigfive_result").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestSubmitBigFiveMissingEmail(t *testing.T) {
	h, _ := newBigFiveHandler(t, nil)

	rec := submitBigFive(t, h, `{"nombre":"Ana","respuestas":{"1":3}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitBigFiveMalformedScores(t *testing.T) {
	h, conn := newBigFiveHandler(t, nil)

	testutil.CreateTestCandidate(t, conn, "ana@x.com", time.Now())

	rec := submitBigFive(t, h, `{"email":"ana@x.com","puntuaciones":{"extraversion":"alta"}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var count int
	require.NoError(t, conn.QueryRow("SELECT COUNT(*) FROM bigfive_result").Scan(&count))
	assert.Zero(t, count)
}

func TestListBigFiveNewestFirst(t *testing.T) {
	h, conn := newBigFiveHandler(t, nil)

	base := time.Now().Add(-time.Hour)
	testutil.CreateTestBigFive(t, conn, "vieja@x.com", base)
	testutil.CreateTestBigFive(t, conn, "nueva@x.com", base.Add(time.Minute))

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/bigfive", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var results []models.BigFiveResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "nueva@x.com", results[0].Email)
	assert.Equal(t, 3.2, results[0].Scores["extraversion"])
}
