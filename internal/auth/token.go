package auth

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"salon-booking-server/internal/models"
)

// Claims is the identity bundle carried by the auth cookie. It is the only
// thing request handling trusts: decoding never consults the database, so a
// capability change on the user record takes effect when the cookie expires
// or the user logs in again.
type Claims struct {
	UserID                string      `json:"userId"`
	Email                 string      `json:"email"`
	Role                  models.Role `json:"role"`
	CanCreateAppointments bool        `json:"canCreateAppointments"`
	CanModifyAppointments bool        `json:"canModifyAppointments"`
	jwt.RegisteredClaims
}

// IssueToken signs the five identity claims for a user with the process-wide
// secret. No expiry is embedded; the cookie max-age bounds the credential's
// practical lifetime.
func IssueToken(user *models.User, secret string) (string, error) {
	claims := &Claims{
		UserID:                user.ID,
		Email:                 user.Email,
		Role:                  user.Role,
		CanCreateAppointments: user.CanCreateAppointments,
		CanModifyAppointments: user.CanModifyAppointments,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: user.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// DecodeToken verifies a token's structure and signature and returns its
// claims. Any malformed, truncated or tampered token yields an error.
func DecodeToken(tokenString string, secret string) (*Claims, error) {
	if strings.Count(tokenString, ".") != 2 {
		return nil, fmt.Errorf("invalid token format")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.UserID == "" || !models.ValidRole(claims.Role) {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}
