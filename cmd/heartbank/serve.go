package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"heartbank/internal/server"
	"heartbank/internal/store"
	"heartbank/pkg/types"

	"github.com/lestrrat-go/httprc/v3"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/urfave/cli/v2"
)

const firebaseIssuerPrefix = "https://securetoken.google.com/"

var serveCommand = &cli.Command{
	Name:   "serve",
	Usage:  "Start the HTTP API",
	Action: serve,
}

func serve(cCtx *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config, err := loadConfig(cCtx)
	if err != nil {
		return err
	}

	logger := newLogger(config)

	issuer, audience, err := authClaims(config)
	if err != nil {
		return err
	}

	pool, err := connectDatabase(ctx, config)
	if err != nil {
		return err
	}
	defer pool.Close()

	userRepo := store.NewUserRepository(pool)
	depositRepo := store.NewDepositRepository(pool)
	categoryRepo := store.NewCategoryRepository(pool)

	jwkCache, err := jwk.NewCache(ctx, httprc.NewClient())
	if err != nil {
		return fmt.Errorf("failed to initialize jwk cache: %w", err)
	}

	if err := jwkCache.Register(ctx, config.AuthJWKSURL); err != nil {
		return fmt.Errorf("failed to register jwks url with cache: %w", err)
	}

	authenticator, err := server.NewJWKSAuthenticator(jwkCache, config.AuthJWKSURL, issuer, audience)
	if err != nil {
		return err
	}

	srv, err := server.New(config, logger, userRepo, depositRepo, categoryRepo, authenticator)
	if err != nil {
		return err
	}

	go func() {
		logger.WithField("port", config.ServerPort).Infof("server starting http://localhost:%d", config.ServerPort)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Stop(shutdownCtx)
}

// authClaims returns the issuer and audience bearer tokens must carry.
// Unset values are derived from FIREBASE_PROJECT_ID.
func authClaims(config *types.Config) (issuer, audience string, err error) {
	if config.AuthJWKSURL == "" {
		return "", "", fmt.Errorf("set AUTH_JWKS_URL")
	}

	issuer, audience = config.AuthIssuer, config.AuthAudience
	if issuer == "" && config.FirebaseProjectID != "" {
		issuer = firebaseIssuerPrefix + config.FirebaseProjectID
	}
	if audience == "" {
		audience = config.FirebaseProjectID
	}

	if issuer == "" || audience == "" {
		return "", "", fmt.Errorf("set AUTH_ISSUER and AUTH_AUDIENCE, or FIREBASE_PROJECT_ID")
	}

	return issuer, audience, nil
}
