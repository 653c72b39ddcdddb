// Package auth issues and verifies the JWT pair backing login sessions and
// validates submitted credentials.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
)

const (
	// AccessTokenTTL matches the access cookie max-age.
	AccessTokenTTL = 24 * time.Hour
	// RefreshTokenTTL matches the refresh cookie max-age.
	RefreshTokenTTL = 14 * 24 * time.Hour
)

// ErrInvalidToken is returned when a token fails signature or expiry checks.
var ErrInvalidToken = errors.New("invalid token")

// Manager signs and decodes access and refresh tokens with separate secrets.
type Manager struct {
	accessSecret  []byte
	refreshSecret []byte
	clock         clockwork.Clock
}

// NewManager creates a token manager. clock drives issued-at/expiry stamps
// and validation time, so tests can use a fake clock.
func NewManager(accessSecret, refreshSecret string, clock clockwork.Clock) *Manager {
	return &Manager{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		clock:         clock,
	}
}

// SignAccessToken issues an access token for userID, valid for AccessTokenTTL.
func (m *Manager) SignAccessToken(userID string) (string, error) {
	return m.sign(userID, m.accessSecret, AccessTokenTTL)
}

// SignRefreshToken issues a refresh token for userID, valid for RefreshTokenTTL.
func (m *Manager) SignRefreshToken(userID string) (string, error) {
	return m.sign(userID, m.refreshSecret, RefreshTokenTTL)
}

// DecodeAccessToken verifies an access token and returns its claims.
func (m *Manager) DecodeAccessToken(token string) (*jwt.RegisteredClaims, error) {
	return m.decode(token, m.accessSecret)
}

// DecodeRefreshToken verifies a refresh token and returns its claims.
func (m *Manager) DecodeRefreshToken(token string) (*jwt.RegisteredClaims, error) {
	return m.decode(token, m.refreshSecret)
}

func (m *Manager) sign(userID string, secret []byte, ttl time.Duration) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("empty user id")
	}

	now := m.clock.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func (m *Manager) decode(token string, secret []byte) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (any, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.clock.Now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return claims, nil
}
