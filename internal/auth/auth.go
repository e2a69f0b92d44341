// Package auth issues and parses the signed role cookie. There are no
// credentials anywhere (logging in is picking a role), so the token
// carries nothing but the chosen role and its validity window.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"talentlab/internal/catalog"
)

const sessionTTL = 30 * 24 * time.Hour

type Manager struct {
	secret []byte
}

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func NewManager(secret string) *Manager {
	if secret == "" {
		secret = "dev-secret-change-me"
	}
	return &Manager{secret: []byte(secret)}
}

// Issue signs a role token valid for the session window.
func (m *Manager) Issue(role catalog.Role) (string, error) {
	claims := Claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse validates a token and returns the role it carries.
func (m *Manager) Parse(token string) (catalog.Role, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return "", errors.New("invalid token")
	}
	return catalog.ParseRole(claims.Role)
}

// TTL is how long an issued session cookie stays valid.
func TTL() time.Duration { return sessionTTL }
