package utils

import (
	"fmt"
	"time"

	"github.com/SscSPs/site_claims_app/internal/core/domain"
	"github.com/golang-jwt/jwt/v5"
)

// AccessClaims are carried by every access token. The subject is the user
// ID and the token ID (jti) is the session ID. Role is informational only;
// authorization always uses the stored user.
type AccessClaims struct {
	Role domain.Role `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// IssueAccessToken signs an HS256 access token for session, valid from now for ttl.
func IssueAccessToken(session domain.Session, secret string, now time.Time, ttl time.Duration, issuer string) (string, error) {
	claims := AccessClaims{
		Role: session.Identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.ID,
			Issuer:    issuer,
			Subject:   session.Identity.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAccessToken checks the signature and time claims of an access token
// and requires both a subject and a session ID. Errors wrap the jwt package
// sentinels, e.g. jwt.ErrTokenExpired.
func ParseAccessToken(tokenString, secret string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	if claims.Subject == "" || claims.ID == "" {
		return nil, fmt.Errorf("%w: subject and session id are required", jwt.ErrTokenInvalidClaims)
	}
	return claims, nil
}
