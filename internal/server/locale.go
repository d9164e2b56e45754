package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"heartbank/internal/locale"
	"heartbank/pkg/types"
)

type languageRequest struct {
	Language string `json:"language" form:"language"`
}

func localeInfo(language types.Language) types.LocaleInfo {
	lang := language.String()
	return types.LocaleInfo{
		Language:    language,
		Direction:   string(locale.TextDirection(lang)),
		LocaleTag:   locale.LocaleTag(lang),
		RTL:         locale.IsRTLLanguage(lang),
		DisplayName: locale.DisplayName(lang),
	}
}

// requestLanguage resolves the response language: lang query parameter,
// then the language cookie, then the user's saved preference.
func (s *Service) requestLanguage(r *http.Request, user *types.User) types.Language {
	if l, err := types.ParseLanguage(r.URL.Query().Get("lang")); err == nil {
		return l
	}

	if l, ok := s.cookieLanguage(r); ok {
		return l
	}

	if user != nil && user.Language.Valid() {
		return user.Language
	}

	return types.DefaultLanguage
}

func (s *Service) cookieLanguage(r *http.Request) (types.Language, bool) {
	c, err := r.Cookie(s.config.LanguageCookieName)
	if err != nil {
		return "", false
	}

	var value string
	if err := s.cookie.Decode(s.config.LanguageCookieName, c.Value, &value); err != nil {
		s.logger.WithError(err).Debug("ignoring invalid language cookie")
		return "", false
	}

	l, err := types.ParseLanguage(value)
	return l, err == nil
}

func (s *Service) setLanguageCookie(w http.ResponseWriter, language types.Language) error {
	encoded, err := s.cookie.Encode(s.config.LanguageCookieName, language.String())
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.config.LanguageCookieName,
		Value:    encoded,
		HttpOnly: true,
		Secure:   s.config.Environment != "development",
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
		MaxAge:   s.config.LanguageCookieMaxAge,
	})
	return nil
}

// maxLanguageBodyBytes bounds a language update; the payload is a single code.
const maxLanguageBodyBytes = 1 << 10

// decodeLanguageRequest reads {"language": ...} from JSON or form bodies.
func decodeLanguageRequest(w http.ResponseWriter, r *http.Request) (types.Language, error) {
	var req languageRequest

	r.Body = http.MaxBytesReader(w, r.Body, maxLanguageBodyBytes)

	if isFormRequest(r) {
		if err := r.ParseForm(); err != nil {
			return "", err
		}
		if err := decoder.Decode(&req, r.PostForm); err != nil {
			return "", err
		}
	} else if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return "", err
	}

	return types.ParseLanguage(req.Language)
}

// invalidLanguageMessage lists the accepted codes, e.g. "language must be one of: en, he".
func invalidLanguageMessage() string {
	codes := make([]string, 0, len(types.SupportedLanguages))
	for _, l := range types.SupportedLanguages {
		codes = append(codes, l.String())
	}
	return "language must be one of: " + strings.Join(codes, ", ")
}

func isFormRequest(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	return strings.HasPrefix(ct, "application/x-www-form-urlencoded") || strings.HasPrefix(ct, "multipart/form-data")
}

func (s *Service) handleGetLocale(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, localeInfo(s.requestLanguage(r, nil)))
}

func (s *Service) handlePostLocale(w http.ResponseWriter, r *http.Request) {
	language, err := decodeLanguageRequest(w, r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, invalidLanguageMessage())
		return
	}

	if err := s.setLanguageCookie(w, language); err != nil {
		s.logger.WithError(err).Error("failed to encode language cookie")
		s.internalServerError(w)
		return
	}

	s.writeJSON(w, http.StatusOK, localeInfo(language))
}
