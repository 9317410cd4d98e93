package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/ougirez/coalportal/internal/pkg/constants"
)

type AdminClaims struct {
	Role string `json:"role"`
	jwt.StandardClaims
}

// GenerateAdminToken signs an HS256 token granting the government role.
func GenerateAdminToken(secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("empty signing secret")
	}

	now := time.Now()
	claims := AdminClaims{
		Role: constants.RoleGovernment,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(ttl).Unix(),
			Subject:   constants.RoleGovernment,
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return token, nil
}

// ParseAdminToken verifies signature, expiry and role.
func ParseAdminToken(secret, raw string) (*AdminClaims, error) {
	claims := new(AdminClaims)
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %s: %w", err.Error(), constants.ErrUnauthorized)
	}
	if !token.Valid || claims.Role != constants.RoleGovernment {
		return nil, constants.ErrUnauthorized
	}

	return claims, nil
}
