package devserver

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var errInvalidToken = errors.New("invalid or expired token")

// claims are the JWT claims carried by dev server bearer tokens.
type claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

// generateToken signs a bearer token for the given user.
func generateToken(userID, secret string, expiry time.Duration) (string, error) {
	now := time.Now()
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "fintrack-dev",
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString([]byte(secret))
}

// validateToken parses a bearer token and returns the user ID it carries.
func validateToken(tokenString, secret string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidToken
		}
		return []byte(secret), nil
	}, jwt.WithIssuer("fintrack-dev"))
	if err != nil {
		return "", errInvalidToken
	}
	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return "", errInvalidToken
	}
	return c.UserID, nil
}
