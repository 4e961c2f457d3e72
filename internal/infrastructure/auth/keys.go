package auth

import (
	"crypto/rsa"
	"fmt"
	"os"

	"github.com/golang-jwt/jwt/v5"
	"github.com/inventorydb/backend/internal/infrastructure/config"
)

// KeyPair holds the RSA keys used to sign and verify access tokens.
// It is loaded once at startup and handed to NewTokenService.
type KeyPair struct {
	Private *rsa.PrivateKey
	Public  *rsa.PublicKey
}

// LoadKeyPair reads the PEM-encoded private and public keys named in cfg.
func LoadKeyPair(cfg config.JWTConfig) (*KeyPair, error) {
	privatePEM, err := os.ReadFile(cfg.PrivateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key: %w", err)
	}
	publicPEM, err := os.ReadFile(cfg.PublicKeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read public key: %w", err)
	}
	return ParseKeyPair(privatePEM, publicPEM)
}

// ParseKeyPair parses PEM-encoded keys and checks that they belong together.
func ParseKeyPair(privatePEM, publicPEM []byte) (*KeyPair, error) {
	private, err := jwt.ParseRSAPrivateKeyFromPEM(privatePEM)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}
	public, err := jwt.ParseRSAPublicKeyFromPEM(publicPEM)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}
	if !private.PublicKey.Equal(public) {
		return nil, fmt.Errorf("public key does not match private key")
	}
	return &KeyPair{Private: private, Public: public}, nil
}
