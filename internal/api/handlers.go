package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/yourusername/scoreline/internal/models"
	"github.com/yourusername/scoreline/internal/snapshot"
)

// ErrorResponse is the body of every non-2xx reply
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) handleProject(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, s.apiCfg.MaxBodyBytes)
	defer body.Close()

	snap, err := snapshot.Decode(body, snapshot.FormatJSON)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := s.projector.ProjectSnapshot(r.Context(), snap)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, p)
	case errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusServiceUnavailable, "projection timed out")
	case errors.Is(err, context.Canceled):
		writeError(w, http.StatusServiceUnavailable, "request cancelled")
	case errors.Is(err, models.ErrNilSnapshot), errors.Is(err, models.ErrUnknownEvidence):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.logger.WithError(err).WithField("event_id", snap.EventID).Error("Projection failed")
		writeError(w, http.StatusInternalServerError, "projection failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{
		Error:     message,
		RequestID: w.Header().Get(RequestIDHeader),
	})
}
