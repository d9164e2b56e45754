package server

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"heartbank/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/go-playground/form/v4"
	"github.com/gorilla/securecookie"
	"github.com/sirupsen/logrus"
)

var decoder = form.NewDecoder()

type UserStore interface {
	User(ctx context.Context, userID string) (*types.User, error)
	Create(ctx context.Context, user *types.User) error
	UpdateLanguage(ctx context.Context, userID string, language types.Language) error
}

type DepositStore interface {
	Create(ctx context.Context, deposit *types.Deposit) error
	Deposit(ctx context.Context, userID, depositID string) (*types.Deposit, error)
	DepositsByUser(ctx context.Context, userID string, filter types.DepositFilter) ([]*types.Deposit, error)
	Delete(ctx context.Context, userID, depositID string) error
	CountByCategory(ctx context.Context, userID string) ([]*types.CategoryCount, error)
}

type CategoryStore interface {
	AllCategories(ctx context.Context) ([]*types.Category, error)
}

type Service struct {
	logger *logrus.Logger
	config *types.Config

	users      UserStore
	deposits   DepositStore
	categories CategoryStore

	auth   Authenticator
	cookie *securecookie.SecureCookie

	server *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	users UserStore,
	deposits DepositStore,
	categories CategoryStore,
	auth Authenticator,
) (*Service, error) {
	mux := flow.New()

	cookie, err := newSecureCookie(config, logger)
	if err != nil {
		return nil, err
	}

	s := &Service{
		logger:     logger,
		config:     config,
		users:      users,
		deposits:   deposits,
		categories: categories,
		auth:       auth,
		cookie:     cookie,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	s.buildRouter(mux)
	s.server.Handler = s.StripTrailingSlash(mux)

	return s, nil
}

// newSecureCookie decodes the configured keys. Without a hash key a random
// one is generated, so language cookies do not survive a restart.
func newSecureCookie(config *types.Config, logger *logrus.Logger) (*securecookie.SecureCookie, error) {
	hashKey, err := base64.StdEncoding.DecodeString(config.CookieHashKey)
	if err != nil {
		return nil, fmt.Errorf("decode COOKIE_HASH_KEY: %w", err)
	}

	blockKey, err := base64.StdEncoding.DecodeString(config.CookieBlockKey)
	if err != nil {
		return nil, fmt.Errorf("decode COOKIE_BLOCK_KEY: %w", err)
	}

	if len(hashKey) == 0 {
		logger.Warn("COOKIE_HASH_KEY not set, using an ephemeral key")
		hashKey = make([]byte, 32)
		if _, err := rand.Read(hashKey); err != nil {
			return nil, fmt.Errorf("generate cookie hash key: %w", err)
		}
	}
	if len(blockKey) == 0 {
		blockKey = nil
	}

	cookie := securecookie.New(hashKey, blockKey)
	cookie.MaxAge(config.LanguageCookieMaxAge)

	return cookie, nil
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Service) Handler() http.Handler {
	return s.server.Handler
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(s.LoggingMiddleware)

	r.HandleFunc("/healthz", s.handleHealth, http.MethodGet)

	r.HandleFunc("/v1/locale", s.handleGetLocale, http.MethodGet)
	r.HandleFunc("/v1/locale", s.handlePostLocale, http.MethodPost)

	r.HandleFunc("/v1/theme", s.handleGetTheme, http.MethodGet)

	r.Group(func(r *flow.Mux) {
		r.Use(s.RequireAuth)

		r.HandleFunc("/v1/me", s.handleGetMe, http.MethodGet)
		r.HandleFunc("/v1/me/language", s.handlePutLanguage, http.MethodPut)

		r.HandleFunc("/v1/categories", s.handleGetCategories, http.MethodGet)

		r.HandleFunc("/v1/deposits", s.handleListDeposits, http.MethodGet)
		r.HandleFunc("/v1/deposits", s.handlePostDeposit, http.MethodPost)
		r.HandleFunc("/v1/deposits/:id", s.handleGetDeposit, http.MethodGet)
		r.HandleFunc("/v1/deposits/:id", s.handleDeleteDeposit, http.MethodDelete)

		r.HandleFunc("/v1/stats", s.handleGetStats, http.MethodGet)
	})
}

func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Service) userFromContext(ctx context.Context) (*types.User, error) {
	user, ok := ctx.Value(contextKeyUser).(*types.User)
	if !ok || user == nil {
		return nil, fmt.Errorf("user not found in context")
	}
	return user, nil
}
