package server

import (
	"net/http"

	"heartbank/pkg/types"
)

type meResponse struct {
	User   *types.User      `json:"user"`
	Locale types.LocaleInfo `json:"locale"`
}

func (s *Service) handleGetMe(w http.ResponseWriter, r *http.Request) {
	user, err := s.userFromContext(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("authenticated route without user")
		s.internalServerError(w)
		return
	}

	s.writeJSON(w, http.StatusOK, meResponse{
		User:   user,
		Locale: localeInfo(s.requestLanguage(r, user)),
	})
}

func (s *Service) handlePutLanguage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := s.userFromContext(ctx)
	if err != nil {
		s.logger.WithError(err).Error("authenticated route without user")
		s.internalServerError(w)
		return
	}

	language, err := decodeLanguageRequest(w, r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, invalidLanguageMessage())
		return
	}

	if err := s.users.UpdateLanguage(ctx, user.ID, language); err != nil {
		s.writeStoreError(w, r, err, "failed to update language")
		return
	}

	if err := s.setLanguageCookie(w, language); err != nil {
		s.logger.WithError(err).Warn("failed to set language cookie")
	}

	s.writeJSON(w, http.StatusOK, localeInfo(language))
}
