package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// SessionClaims carries the anonymous visitor session id.
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.StandardClaims
}

// GenerateSessionToken signs a session id with HS256.
func GenerateSessionToken(sessionID, secret string, ttl time.Duration) (string, error) {
	claims := &SessionClaims{
		SessionID: sessionID,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(ttl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateSessionToken verifies the signature and expiry and returns the claims.
func ValidateSessionToken(tokenString, secret string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}

	if claims.SessionID == "" {
		return nil, errors.New("session token has no session id")
	}

	return claims, nil
}
