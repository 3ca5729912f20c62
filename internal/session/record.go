package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// signRecord produces the durable session record: an HMAC-signed token whose
// subject is the user id. Signing means a tampered or truncated record fails
// validation instead of resolving to a wrong user.
func signRecord(secret []byte, userID string, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:  userID,
		IssuedAt: jwt.NewNumericDate(now.UTC()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign session record: %w", err)
	}
	return signed, nil
}

// parseRecord validates a durable session record and returns its user id.
func parseRecord(secret []byte, record string) (string, error) {
	parsed, err := jwt.ParseWithClaims(record, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("parse session record: %w", err)
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", fmt.Errorf("session record has no subject")
	}
	return claims.Subject, nil
}
