package service

import (
	"errors"
	"fmt"
	"github.com/golang-jwt/jwt/v5"
	"sneaker-shop/internal/entity"
	"time"
)

// JwtCustomClaims carries the caller identity inside every issued token.
type JwtCustomClaims struct {
	UserID   int    `json:"userId"`
	UserName string `json:"userName"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

type TokenConfig struct {
	Secret   string
	Issuer   string
	Audience string
	TTL      time.Duration
}

// TokenManager signs and verifies HS256 bearer tokens.
type TokenManager struct {
	cfg TokenConfig
	now func() time.Time
}

func NewTokenManager(cfg TokenConfig) *TokenManager {
	return &TokenManager{cfg: cfg, now: time.Now}
}

func (m *TokenManager) Generate(user entity.User) (string, error) {
	issuedAt := m.now()
	claims := &JwtCustomClaims{
		UserID:   user.UserID,
		UserName: user.UserName,
		Email:    user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.cfg.Issuer,
			Audience:  jwt.ClaimStrings{m.cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(m.cfg.TTL)),
		},
	}

	tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := tkn.SignedString([]byte(m.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return t, nil
}

// Parse verifies signature, issuer, audience and expiry, and requires the
// identity claims to be present.
func (m *TokenManager) Parse(tokenString string) (*JwtCustomClaims, error) {
	claims := &JwtCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(m.cfg.Secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.cfg.Issuer),
		jwt.WithAudience(m.cfg.Audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == 0 || claims.UserName == "" || claims.Email == "" {
		return nil, fmt.Errorf("%w: missing identity claims", ErrInvalidToken)
	}
	return claims, nil
}
