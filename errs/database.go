package errs

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
)

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrDatabaseQuery      = errors.New("database query failed")
	ErrDatabaseConnection = errors.New("database connection failed")
	ErrSchemaMismatch     = errors.New("schema mismatch")
	ErrSlugConflict       = errors.New("url slug already in use")
)

func NewAlreadyExists(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusConflict,
		err:        fmt.Errorf("%s %w", entity, ErrAlreadyExists),
	}
}

func NewNotFound(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        fmt.Errorf("%s %w", entity, ErrNotFound),
	}
}

// NewSlugConflictError reports a url_slug collision within a routing
// namespace. Slugs are unique across projects, series, and ventures that
// share a namespace, not per table.
func NewSlugConflictError(slug, namespace string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusConflict,
		err:        ErrSlugConflict,
		Field:      "url_slug",
		Details:    fmt.Sprintf("slug %q is already used in the %s namespace", slug, namespace),
	}
}

// missingColumnPattern matches the Postgres message emitted when a query
// references a column the environment's schema does not have yet, e.g.
//
//	column "overview" of relation "projects" does not exist
var missingColumnPattern = regexp.MustCompile(`column "([^"]+)"(?: of relation "([^"]+)")? does not exist`)

// MissingColumn extracts the column named by a missing-column database
// error, or "" if the error is not one.
func MissingColumn(cause error) string {
	if cause == nil {
		return ""
	}
	m := missingColumnPattern.FindStringSubmatch(cause.Error())
	if m == nil {
		return ""
	}
	return m[1]
}

// NewSchemaMismatchError reports that an environment's database schema is
// behind the model, with a remediation hint distinct from the generic
// database failure path.
func NewSchemaMismatchError(column string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrSchemaMismatch,
		Field:      column,
		Details: fmt.Sprintf(
			"column %q does not exist in this environment's schema; run the migration (GENERATE_MODELS=true) or drop the field from the request",
			column),
		Cause: cause,
	}
}

// NewDatabaseError creates a new database error with details about the operation
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	details := fmt.Sprintf("Failed to %s %s", operation, entity)

	if cause != nil {
		if column := MissingColumn(cause); column != "" {
			return NewSchemaMismatchError(column, cause)
		}

		errStr := cause.Error()
		switch {
		case strings.Contains(errStr, "duplicate key"):
			return &ApiErr{
				StatusCode: http.StatusConflict,
				err:        fmt.Errorf("%s already exists", entity),
				Details:    details,
				Cause:      cause,
			}
		case strings.Contains(errStr, "foreign key constraint"):
			return &ApiErr{
				StatusCode: http.StatusBadRequest,
				err:        fmt.Errorf("invalid reference in %s", entity),
				Details:    "The referenced resource does not exist or cannot be linked",
				Cause:      cause,
			}
		case strings.Contains(errStr, "record not found"):
			return &ApiErr{
				StatusCode: http.StatusNotFound,
				err:        fmt.Errorf("%s not found", entity),
				Details:    details,
				Cause:      cause,
			}
		case strings.Contains(errStr, "connection"):
			return &ApiErr{
				StatusCode: http.StatusServiceUnavailable,
				err:        ErrDatabaseConnection,
				Details:    details,
				Cause:      cause,
			}
		}
	}

	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrDatabaseQuery,
		Details:    details,
		Cause:      cause,
	}
}
