package middleware

import (
	"fmt"
	"time"

	"dispute-resolution-engine/config"
	"dispute-resolution-engine/internal/core/domain"

	"github.com/golang-jwt/jwt/v5"
)

// ActorClaims is the JWT payload carrying the acting user's identity and
// role. Capabilities are never embedded in the token; they derive from the
// role table at check time.
type ActorClaims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// SignActorToken issues an HS256 token for the given actor.
func SignActorToken(cfg config.JWTConfig, actor domain.Actor, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := ActorClaims{
		Name: actor.Name,
		Role: string(actor.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID,
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Secret))
}

// ParseActorToken validates a token and extracts the actor.
func ParseActorToken(cfg config.JWTConfig, tokenStr string) (domain.Actor, error) {
	claims := &ActorClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	}, jwt.WithIssuer(cfg.Issuer), jwt.WithExpirationRequired())
	if err != nil {
		return domain.Actor{}, fmt.Errorf("parse actor token: %w", err)
	}
	if !token.Valid || claims.Subject == "" {
		return domain.Actor{}, fmt.Errorf("invalid actor token")
	}

	return domain.Actor{
		ID:   claims.Subject,
		Name: claims.Name,
		Role: domain.Role(claims.Role),
	}, nil
}
