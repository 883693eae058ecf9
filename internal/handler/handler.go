package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"scent-shop/internal/model"

	"github.com/rs/zerolog"
)

// statusByCode maps domain error codes to HTTP statuses.
var statusByCode = map[string]int{
	model.ErrCodeProductNotFound:  http.StatusNotFound,
	model.ErrCodeCategoryNotFound: http.StatusNotFound,
	model.ErrCodeMemberNotFound:   http.StatusBadRequest,
	model.ErrCodeInvalidPassword:  http.StatusBadRequest,
	model.ErrCodeInvalidToken:     http.StatusBadRequest,
	model.ErrCodeInvalidJSON:      http.StatusBadRequest,
	model.ErrCodeUnauthorised:     http.StatusUnauthorized,
}

var errInvalidBody = model.NewDomainError(model.ErrCodeInvalidJSON, "Invalid request body")

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already sent; nothing useful left to tell the client.
		return
	}
}

// writeText writes a plain-text confirmation or client error.
func writeText(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(message))
}

// writeError answers with the status of a domain error, or a generic 500 for
// anything else. Storage errors are logged, never echoed to the client.
func writeError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		if status, ok := statusByCode[domainErr.Code]; ok {
			logger.Debug().Str("code", domainErr.Code).Int("status", status).Msg("request rejected")
			writeText(w, status, domainErr.Message)
			return
		}
	}

	logger.Error().Err(err).Int("status", http.StatusInternalServerError).Msg("handler error")
	writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{
		Error:   model.ErrCodeInternalError,
		Message: "internal server error",
	})
}

// decodeJSON decodes the request body into dst. An empty body leaves dst at
// its zero value, the same as "{}".
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return errInvalidBody
	}
	return nil
}
