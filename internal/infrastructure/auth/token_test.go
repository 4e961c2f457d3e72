package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/inventorydb/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKeyPair(t *testing.T) *KeyPair {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return &KeyPair{Private: key, Public: &key.PublicKey}
}

func newTestTokenService(t *testing.T) *TokenService {
	t.Helper()
	return NewTokenService(newTestKeyPair(t), 30*time.Minute)
}

func TestNewTokenService(t *testing.T) {
	keys := newTestKeyPair(t)

	svc := NewTokenService(keys, 5*time.Minute)
	assert.Equal(t, 5*time.Minute, svc.TTL())

	svc = NewTokenService(keys, 0)
	assert.Equal(t, DefaultAccessTokenTTL, svc.TTL())
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.IssueAccessToken("a@x.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	subject, err := svc.Subject(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", subject)
}

func TestTokenService_ClaimsOnTheWire(t *testing.T) {
	svc := newTestTokenService(t)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	token, err := svc.Issue("a@x.com", 30*time.Minute)
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	parsed, _, err := jwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)

	assert.Equal(t, "RS256", parsed.Header["alg"])
	assert.Equal(t, "a@x.com", claims["sub"])
	assert.Equal(t, float64(fixed.Add(30*time.Minute).Unix()), claims["exp"])
}

func TestTokenService_Expired(t *testing.T) {
	svc := newTestTokenService(t)

	for _, ttl := range []time.Duration{0, -time.Second, -time.Hour} {
		token, err := svc.Issue("a@x.com", ttl)
		require.NoError(t, err)

		_, err = svc.Subject(token)
		assert.ErrorIs(t, err, ErrExpiredToken, "ttl=%s", ttl)
	}
}

func TestTokenService_RejectsForeignSignature(t *testing.T) {
	issuer := newTestTokenService(t)
	verifier := newTestTokenService(t)

	token, err := issuer.IssueAccessToken("a@x.com")
	require.NoError(t, err)

	_, err = verifier.Subject(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_RejectsOtherAlgorithms(t *testing.T) {
	svc := newTestTokenService(t)
	claims := jwt.RegisteredClaims{
		Subject:   "a@x.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}

	t.Run("HS256 signed with the public key", func(t *testing.T) {
		pubDER, err := x509.MarshalPKIXPublicKey(svc.publicKey)
		require.NoError(t, err)
		pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER})

		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(pubPEM)
		require.NoError(t, err)

		_, err = svc.Subject(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unsigned token", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.Subject(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("RS512 with the right key", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodRS512, claims).SignedString(svc.privateKey)
		require.NoError(t, err)

		_, err = svc.Subject(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestTokenService_RejectsMalformedClaims(t *testing.T) {
	svc := newTestTokenService(t)

	t.Run("missing subject", func(t *testing.T) {
		claims := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
		token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(svc.privateKey)
		require.NoError(t, err)

		_, err = svc.Subject(token)
		assert.ErrorIs(t, err, ErrMissingSubject)
	})

	t.Run("missing expiry", func(t *testing.T) {
		claims := jwt.RegisteredClaims{Subject: "a@x.com"}
		token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(svc.privateKey)
		require.NoError(t, err)

		_, err = svc.Subject(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.Subject("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("tampered payload", func(t *testing.T) {
		token, err := svc.IssueAccessToken("a@x.com")
		require.NoError(t, err)
		other, err := svc.IssueAccessToken("b@x.com")
		require.NoError(t, err)

		a := strings.Split(token, ".")
		b := strings.Split(other, ".")
		forged := a[0] + "." + b[1] + "." + a[2]

		_, err = svc.Subject(forged)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("empty subject cannot be issued", func(t *testing.T) {
		_, err := svc.IssueAccessToken("")
		assert.ErrorIs(t, err, ErrMissingSubject)
	})
}

func writeKeyFiles(t *testing.T, key *rsa.PrivateKey, pub *rsa.PublicKey) config.JWTConfig {
	t.Helper()
	dir := t.TempDir()

	privPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})
	pubDER, err := x509.MarshalPKIXPublicKey(pub)
	require.NoError(t, err)
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER})

	cfg := config.JWTConfig{
		PrivateKeyPath: filepath.Join(dir, "private.pem"),
		PublicKeyPath:  filepath.Join(dir, "public.pem"),
	}
	require.NoError(t, os.WriteFile(cfg.PrivateKeyPath, privPEM, 0o600))
	require.NoError(t, os.WriteFile(cfg.PublicKeyPath, pubPEM, 0o644))
	return cfg
}

func TestLoadKeyPair(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	t.Run("loads matching keys", func(t *testing.T) {
		cfg := writeKeyFiles(t, key, &key.PublicKey)

		keys, err := LoadKeyPair(cfg)
		require.NoError(t, err)
		assert.True(t, keys.Public.Equal(&key.PublicKey))

		svc := NewTokenService(keys, time.Minute)
		token, err := svc.IssueAccessToken("a@x.com")
		require.NoError(t, err)
		subject, err := svc.Subject(token)
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", subject)
	})

	t.Run("rejects mismatched keys", func(t *testing.T) {
		other, err := rsa.GenerateKey(rand.Reader, 2048)
		require.NoError(t, err)
		cfg := writeKeyFiles(t, key, &other.PublicKey)

		_, err = LoadKeyPair(cfg)
		assert.ErrorContains(t, err, "does not match")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadKeyPair(config.JWTConfig{PrivateKeyPath: "/nonexistent/private.pem"})
		assert.ErrorContains(t, err, "failed to read private key")
	})
}
