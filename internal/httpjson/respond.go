// Package httpjson holds the JSON response helpers shared by every HTTP
// service.
package httpjson

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"amistoso/internal/apperrors"
)

type errorBody struct {
	Kind    apperrors.Kind `json:"kind"`
	Message string         `json:"message"`
	Field   string         `json:"field,omitempty"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

// Write encodes v as JSON with the given status code.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// WriteError maps err onto the taxonomy and writes it. Internal errors are
// logged with the operation name but reach the caller with no detail.
func WriteError(w http.ResponseWriter, op string, err error) {
	status := apperrors.HTTPStatus(err)

	var appErr *apperrors.Error
	if !errors.As(err, &appErr) || appErr.Kind == apperrors.KindInternal {
		log.Error().Err(err).Str("op", op).Msg("internal error")
		Write(w, http.StatusInternalServerError, errorResponse{Error: errorBody{
			Kind:    apperrors.KindInternal,
			Message: "internal error",
		}})
		return
	}

	Write(w, status, errorResponse{Error: errorBody{
		Kind:    appErr.Kind,
		Message: appErr.Message,
		Field:   appErr.Field,
	}})
}
