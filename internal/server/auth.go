package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/lestrrat-go/jwx/v3/jwt"
)

// Identity is who a verified bearer token belongs to.
type Identity struct {
	UserID string
	Email  string
}

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*Identity, error)
}

// KeySetLookup is satisfied by *jwk.Cache.
type KeySetLookup interface {
	Lookup(ctx context.Context, u string) (jwk.Set, error)
}

// JWKSAuthenticator verifies JWTs against a remote key set.
// Tokens must carry both the configured issuer and audience.
type JWKSAuthenticator struct {
	keys     KeySetLookup
	jwksURL  string
	issuer   string
	audience string
}

func NewJWKSAuthenticator(keys KeySetLookup, jwksURL, issuer, audience string) (*JWKSAuthenticator, error) {
	if jwksURL == "" || issuer == "" || audience == "" {
		return nil, errors.New("jwks url, issuer and audience are required")
	}

	return &JWKSAuthenticator{keys: keys, jwksURL: jwksURL, issuer: issuer, audience: audience}, nil
}

func (a *JWKSAuthenticator) Authenticate(ctx context.Context, accessToken string) (*Identity, error) {
	set, err := a.keys.Lookup(ctx, a.jwksURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch JWKS: %w", err)
	}

	token, err := jwt.Parse([]byte(accessToken),
		jwt.WithKeySet(set),
		jwt.WithValidate(true),
		jwt.WithAcceptableSkew(30*time.Second),
		jwt.WithIssuer(a.issuer),
		jwt.WithAudience(a.audience),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse JWT: %w", err)
	}

	userID, ok := token.Subject()
	if !ok || userID == "" {
		return nil, fmt.Errorf("no user ID in JWT subject claim")
	}

	// email is optional
	var email string
	_ = token.Get("email", &email)

	return &Identity{UserID: userID, Email: email}, nil
}
