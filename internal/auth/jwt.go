package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Fallback development key; main overrides it from JWT_SECRET at startup.
var jwtSecretKey = []byte("A_VERY_SECURE_SECRET_KEY_REPLACE_LATER")

// SetSecret replaces the signing key. Empty input keeps the current key.
func SetSecret(secret string) {
	if secret != "" {
		jwtSecretKey = []byte(secret)
	}
}

// GenerateToken creates a new JWT for a given user, carrying the tenant
// identifier ("org") alongside the standard subject claim.
func GenerateToken(userID int64, orgMail string) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"org": orgMail,
		"exp": time.Now().Add(time.Hour * 72).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(jwtSecretKey)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

// ValidateToken parses and validates a JWT token string. It returns the
// user ID (subject) and the tenant identifier if the token is valid.
func ValidateToken(tokenString string) (int64, string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecretKey, nil
	})
	if err != nil {
		return 0, "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, "", errors.New("invalid token claims")
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, "", errors.New("token missing subject claim")
	}
	org, ok := claims["org"].(string)
	if !ok || org == "" {
		return 0, "", errors.New("token missing org claim")
	}

	return int64(sub), org, nil
}
