// Package db opens the gorm database connection and reconciles the schema.
package db

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"petmatch_backend/internal/config"
	"petmatch_backend/internal/domain/entity"
)

// connection retry window for slow-starting database containers
const (
	connectTimeout = 60 * time.Second
	retryInterval  = 3 * time.Second
)

// Open connects to Postgres using the injected configuration, retrying
// until the deadline, then synchronizes the schema non-destructively.
func Open(cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	var (
		conn *gorm.DB
		err  error
	)

	deadline := time.Now().Add(connectTimeout)
	for {
		conn, err = gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("database connect failed after %s: %w", connectTimeout, err)
		}
		log.Warn("database connect failed, retrying", "error", err)
		time.Sleep(retryInterval)
	}

	if err := Migrate(conn); err != nil {
		return nil, err
	}
	return conn, nil
}

// Migrate creates or updates the seven domain tables. AutoMigrate never
// drops columns, so existing data survives restarts.
func Migrate(conn *gorm.DB) error {
	if err := conn.AutoMigrate(
		&entity.User{},
		&entity.Contact{},
		&entity.Address{},
		&entity.Animal{},
		&entity.AdoptionRecord{},
		&entity.Profile{},
		&entity.UserProfile{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
