package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingColumn(t *testing.T) {
	err := errors.New(`ERROR: column "overview" of relation "projects" does not exist (SQLSTATE 42703)`)
	assert.Equal(t, "overview", MissingColumn(err))

	short := errors.New(`column "metrics" does not exist`)
	assert.Equal(t, "metrics", MissingColumn(short))

	assert.Equal(t, "", MissingColumn(errors.New("connection refused")))
	assert.Equal(t, "", MissingColumn(nil))
}

func TestNewDatabaseErrorDetectsSchemaMismatch(t *testing.T) {
	cause := errors.New(`ERROR: column "overview" of relation "projects" does not exist`)

	apiErr := NewDatabaseError("update project", "projects", cause)

	require.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.True(t, errors.Is(apiErr, ErrSchemaMismatch))
	assert.Equal(t, "overview", apiErr.Field)
	assert.Contains(t, apiErr.Details, "GENERATE_MODELS")
}

func TestNewDatabaseErrorClassification(t *testing.T) {
	duplicate := NewDatabaseError("create", "project", errors.New(`duplicate key value violates unique constraint`))
	assert.Equal(t, http.StatusConflict, duplicate.StatusCode)

	fk := NewDatabaseError("create", "project", errors.New(`violates foreign key constraint "fk_series"`))
	assert.Equal(t, http.StatusBadRequest, fk.StatusCode)

	missing := NewDatabaseError("find", "project", errors.New("record not found"))
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)

	conn := NewDatabaseError("find", "project", errors.New("connection refused"))
	assert.Equal(t, http.StatusServiceUnavailable, conn.StatusCode)

	generic := NewDatabaseError("find", "project", errors.New("something else"))
	assert.Equal(t, http.StatusInternalServerError, generic.StatusCode)
	assert.True(t, errors.Is(generic, ErrDatabaseQuery))
}

func TestNewSlugConflictError(t *testing.T) {
	apiErr := NewSlugConflictError("my-page", "Design Work")

	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.True(t, errors.Is(apiErr, ErrSlugConflict))
	assert.Equal(t, "url_slug", apiErr.Field)
	assert.Contains(t, apiErr.Details, "my-page")
}

func TestApiErrFullErrorChain(t *testing.T) {
	cause := errors.New("underlying failure")
	apiErr := NewDatabaseError("find", "project", cause)

	full := apiErr.GetFullError()
	assert.Contains(t, full, "database query failed")
	assert.Contains(t, full, "underlying failure")
}
