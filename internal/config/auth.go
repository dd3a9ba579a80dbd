package config

import (
	"log"
	"os"
	"sync"
	"time"
)

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

var (
	authConfig *AuthConfig
	authOnce   sync.Once
)

func LoadAuthConfig() *AuthConfig {
	authOnce.Do(func() {
		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			log.Println("Warning: JWT_SECRET not set")
		}
		ttl := 24 * time.Hour
		if raw := os.Getenv("JWT_TTL"); raw != "" {
			parsed, err := time.ParseDuration(raw)
			if err != nil {
				log.Printf("Warning: invalid JWT_TTL %q, defaulting to %s", raw, ttl)
			} else {
				ttl = parsed
			}
		}
		authConfig = &AuthConfig{
			JWTSecret: secret,
			TokenTTL:  ttl,
		}
	})
	return authConfig
}
