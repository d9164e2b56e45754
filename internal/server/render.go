package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"heartbank/pkg/types"
)

func (s *Service) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.WithError(err).Error("failed to encode response")
	}
}

func (s *Service) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, types.ErrorResponse{Error: message})
}

func (s *Service) internalServerError(w http.ResponseWriter) {
	s.writeError(w, http.StatusInternalServerError, "internal server error")
}

// writeStoreError maps repository sentinels onto HTTP statuses.
func (s *Service) writeStoreError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	switch {
	case errors.Is(err, types.ErrDepositNotFound), errors.Is(err, types.ErrUserNotFound):
		s.writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, types.ErrInvalidLanguage),
		errors.Is(err, types.ErrInvalidCategory),
		errors.Is(err, types.ErrMissingUserID),
		errors.Is(err, types.ErrContentTooShort),
		errors.Is(err, types.ErrContentTooLong):
		s.writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.logger.WithError(err).WithField("path", r.URL.Path).Error(msg)
		s.internalServerError(w)
	}
}
