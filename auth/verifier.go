package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Verifier checks a bearer token and returns the authenticated subject.
type Verifier interface {
	Verify(tokenString string) (string, error)
}

type rs256Verifier struct {
	issuer   string
	audience string
	keyfunc  jwt.Keyfunc
}

// NewRS256Verifier builds a verifier for tokens issued by the identity
// provider. Signing keys come from the provider's JWKS endpoint and are
// cached and refreshed in the background until ctx is cancelled.
func NewRS256Verifier(ctx context.Context, issuer, audience string) (Verifier, error) {
	jwksURL := strings.TrimSuffix(issuer, "/") + "/.well-known/jwks.json"
	k, err := keyfunc.NewDefaultCtx(ctx, []string{jwksURL})
	if err != nil {
		return nil, err
	}
	return NewVerifierWithKeyfunc(issuer, audience, k.Keyfunc), nil
}

// NewVerifierWithKeyfunc builds a verifier around an explicit key source.
func NewVerifierWithKeyfunc(issuer, audience string, kf jwt.Keyfunc) Verifier {
	return &rs256Verifier{issuer: issuer, audience: audience, keyfunc: kf}
}

func (v *rs256Verifier) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, v.keyfunc,
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithIssuer(v.issuer),
		jwt.WithAudience(v.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
