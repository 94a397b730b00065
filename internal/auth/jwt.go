package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTConfig configures the HS256 token provider. The minted token is meant to
// be stored as a variable and used via a bearer descriptor.
type JWTConfig struct {
	// Secret is the HMAC secret key used for HS256 signing (required)
	Secret string `mapstructure:"secret"`
	// TTLSeconds controls expiration when Exp is not provided. Default 5 minutes.
	TTLSeconds int64 `mapstructure:"ttl_seconds"`

	// Optional standard claims
	Subject   string   `mapstructure:"sub"`
	Issuer    string   `mapstructure:"iss"`
	Audience  []string `mapstructure:"aud"`
	NotBefore int64    `mapstructure:"nbf"`
	ExpiresAt int64    `mapstructure:"exp"`
	ID        string   `mapstructure:"jti"`

	// Custom is a bag of arbitrary claims to embed into the token
	Custom map[string]interface{} `mapstructure:"custom"`
}

type jwtProvider struct {
	c JWTConfig
}

func (p jwtProvider) Acquire(_ context.Context) (string, error) {
	return p.c.issue()
}

func (c JWTConfig) issue() (string, error) {
	if len(c.Secret) == 0 {
		return "", errors.New("jwt: secret required")
	}
	now := time.Now()
	exp := c.ExpiresAt
	if exp == 0 {
		ttl := c.TTLSeconds
		if ttl <= 0 {
			ttl = 300
		}
		exp = now.Unix() + ttl
	}
	claims := jwt.MapClaims{}
	if c.Subject != "" {
		claims["sub"] = c.Subject
	}
	if c.Issuer != "" {
		claims["iss"] = c.Issuer
	}
	if len(c.Audience) > 0 {
		claims["aud"] = c.Audience
	}
	if c.NotBefore > 0 {
		claims["nbf"] = c.NotBefore
	}
	if c.ID != "" {
		claims["jti"] = c.ID
	}
	claims["iat"] = now.Unix()
	claims["exp"] = exp
	for k, v := range c.Custom {
		claims[k] = v
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(c.Secret))
}
