// Package auth provides RS256 JWT issuing and verification.
package auth

import (
	"crypto/rsa"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Common errors
var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("token has expired")
	ErrMissingSubject = errors.New("missing subject in claims")
)

// DefaultAccessTokenTTL is used when no expiration is configured
const DefaultAccessTokenTTL = 30 * time.Minute

// TokenService issues and verifies RS256 access tokens. The token carries
// only the subject (administrator email) and the expiry; it holds no
// server-side state.
type TokenService struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	ttl        time.Duration
	now        func() time.Time
}

// NewTokenService creates a token service. A non-positive ttl falls back to
// DefaultAccessTokenTTL.
func NewTokenService(keys *KeyPair, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultAccessTokenTTL
	}
	return &TokenService{
		privateKey: keys.Private,
		publicKey:  keys.Public,
		ttl:        ttl,
		now:        time.Now,
	}
}

// TTL returns the default lifetime of access tokens
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// IssueAccessToken issues a token for subject with the default lifetime
func (s *TokenService) IssueAccessToken(subject string) (string, error) {
	return s.Issue(subject, s.ttl)
}

// Issue signs a token for subject that expires at now+ttl. A token issued
// with ttl <= 0 is already expired.
func (s *TokenService) Issue(subject string, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", ErrMissingSubject
	}
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.privateKey)
}

// Subject verifies signature, algorithm and expiry of tokenString and
// returns its subject claim. Resolving the subject to an account is the
// caller's job.
func (s *TokenService) Subject(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
				return nil, ErrInvalidToken
			}
			return s.publicKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrMissingSubject
	}
	return claims.Subject, nil
}
