package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/sells-group/ai-navigator/internal/advisor"
	"github.com/sells-group/ai-navigator/internal/scorer"
	"github.com/sells-group/ai-navigator/internal/session"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		ve   *scorer.ValidationError
		ie   *advisor.InputError
		gate *session.GateError
		ae   *advisor.Error
	)
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: "invalid input", Problems: ve.Problems})
	case errors.As(err, &ie):
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: "invalid input", Problems: ie.Problems})
	case errors.Is(err, session.ErrUnknownView):
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.As(err, &gate):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: gate.Error()})
	case errors.Is(err, session.ErrNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "session not found"})
	case errors.As(err, &ae):
		zap.L().Warn("advisor request failed", zap.String("path", r.URL.Path), zap.Error(err))
		writeJSON(w, http.StatusBadGateway, ErrorResponse{Error: ae.Message, Retryable: ae.Retryable})
	default:
		zap.L().Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

// maxBodyBytes bounds every JSON request body.
const maxBodyBytes = 1 << 20

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: "request body too large"})
			return false
		}
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return false
	}
	return true
}
