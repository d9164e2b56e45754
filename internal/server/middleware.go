package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"heartbank/pkg/types"

	"github.com/sirupsen/logrus"
)

// Context key types to avoid collisions
type contextKey string

const contextKeyUser contextKey = "user"

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (s *Service) LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		s.logger.WithFields(logrus.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      rw.statusCode,
			"duration_ms": time.Since(started).Milliseconds(),
		}).Info("http request")
	})
}

// RequireAuth verifies the bearer token and loads the caller's user record,
// creating it on first contact.
func (s *Service) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			s.writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		identity, err := s.auth.Authenticate(r.Context(), token)
		if err != nil {
			s.logger.WithError(err).Debug("rejected bearer token")
			s.writeError(w, http.StatusUnauthorized, "invalid bearer token")
			return
		}

		ctx := r.Context()

		user, err := s.users.User(ctx, identity.UserID)
		if errors.Is(err, types.ErrUserNotFound) {
			user, err = s.createUser(ctx, r, identity)
		}
		if err != nil {
			s.logger.WithError(err).WithField("user_id", identity.UserID).Error("failed to load user")
			s.internalServerError(w)
			return
		}

		ctx = context.WithValue(ctx, contextKeyUser, user)

		s.logger.WithFields(logrus.Fields{
			"user_id": identity.UserID,
			"email":   identity.Email,
		}).Debug("authenticated user")

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Service) createUser(ctx context.Context, r *http.Request, identity *Identity) (*types.User, error) {
	user := &types.User{
		ID:       identity.UserID,
		Language: s.requestLanguage(r, nil),
	}
	if identity.Email != "" {
		user.Email = &identity.Email
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	// a concurrent first request may have inserted the row already; Create
	// leaves it untouched, so return what is stored
	stored, err := s.users.User(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.logger.WithField("user_id", stored.ID).Info("created user")
	return stored, nil
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}

func (s *Service) StripTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		// Only strip if path is not root and has trailing slash
		if path != "/" && strings.HasSuffix(path, "/") {
			newURL := *r.URL
			newURL.Path = strings.TrimSuffix(path, "/")

			// Preserve query string
			http.Redirect(w, r, newURL.String(), http.StatusMovedPermanently)
			return
		}

		next.ServeHTTP(w, r)
	})
}
