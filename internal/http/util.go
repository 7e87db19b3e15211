package httpx

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	apperrors "github.com/hustlehub/hustle-api/internal/errors"
)

// parseIntQuery returns the integer value of a query param or a default.
// It is tolerant of missing/invalid values.
func parseIntQuery(r *http.Request, key string, def int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

// pageParams reads limit/offset. Services clamp the values to their own bounds.
func pageParams(r *http.Request) (int, int) {
	return parseIntQuery(r, "limit", 0), parseIntQuery(r, "offset", 0)
}

// pathID reads a uuid path value, writing a 400 and returning false when it is malformed.
func pathID(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	id := r.PathValue(name)
	if _, err := uuid.Parse(id); err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: string(apperrors.ErrCodeValidation),
			Err:     apperrors.ValidationField(name, "malformed id"),
			Field:   name,
		})
		return "", false
	}
	return id, true
}
