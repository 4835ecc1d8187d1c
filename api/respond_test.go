package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-cms-backend/errs"
)

func TestWriteJSONStatusSetsContentTypeOnCreated(t *testing.T) {
	rec := httptest.NewRecorder()
	responder := NewResponder(zerolog.Nop())

	responder.WriteJSONStatus(rec, http.StatusCreated, map[string]string{"id": "abc"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":"abc"}`, rec.Body.String())
}

func TestWriteJSONDefaultsToOK(t *testing.T) {
	rec := httptest.NewRecorder()
	responder := NewResponder(zerolog.Nop())

	responder.WriteJSON(rec, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
}

func TestWriteErrorCarriesContentType(t *testing.T) {
	rec := httptest.NewRecorder()
	responder := NewResponder(zerolog.Nop())

	responder.WriteError(rec, errs.NewNotFound("project"))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"status":"error"`)
}

func TestWriteErrorUnexpectedBecomesInternal(t *testing.T) {
	rec := httptest.NewRecorder()
	responder := NewResponder(zerolog.Nop())

	responder.WriteError(rec, assert.AnError)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "Internal Server Error")
}

func TestWriteValidationErrorCarriesContentType(t *testing.T) {
	rec := httptest.NewRecorder()
	responder := NewResponder(zerolog.Nop())

	responder.WriteValidationError(rec, "email", "must contain @")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"field":"email"`)
}
