package server

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/yukikurage/hiring-platform-api/internal/config"
	"github.com/yukikurage/hiring-platform-api/internal/database"
	"github.com/yukikurage/hiring-platform-api/internal/logger"
	"github.com/yukikurage/hiring-platform-api/internal/notify"
	"github.com/yukikurage/hiring-platform-api/internal/security"
	"gorm.io/gorm"
)

// InitDB connects to the configured store and migrates the schema.
func InitDB(cfg *config.Config) (*gorm.DB, func(), error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}

	if err := database.Migrate(db); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, cleanup, nil
}

// InitRedis returns a client when sessions or token revocation use Redis, nil otherwise.
func InitRedis(cfg *config.Config) (*redis.Client, func(), error) {
	if cfg.SessionStore != "redis" && cfg.TokenDenylist != "redis" {
		return nil, func() {}, nil
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr()})
	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr(), err)
	}
	logger.Info("Redis connection established", "addr", cfg.RedisAddr())

	return client, func() { client.Close() }, nil
}

func InitTokenManager(cfg *config.Config) security.TokenManager {
	return security.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL())
}

// InitDenylist selects where revoked tokens are recorded.
func InitDenylist(cfg *config.Config, client *redis.Client) security.Denylist {
	if cfg.TokenDenylist == "redis" && client != nil {
		return security.NewRedisDenylist(client)
	}
	return security.NopDenylist{}
}

// InitGoogleVerifier enables Google sign-in when GOOGLE_CLIENT_ID is set.
func InitGoogleVerifier(cfg *config.Config) security.GoogleVerifier {
	return security.NewGoogleVerifier(cfg.GoogleClientID)
}

// InitInviter sends invitations through SendGrid when a key is configured.
func InitInviter(cfg *config.Config) notify.Inviter {
	if cfg.SendGridAPIKey == "" {
		return notify.LogInviter{}
	}
	return notify.NewSendGridInviter(cfg.SendGridAPIKey, cfg.InviteFromEmail)
}

// InitRegistry returns the registry served on /metrics.
func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}
