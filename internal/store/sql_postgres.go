package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/patas-felizes/backend/internal/config"
	"github.com/patas-felizes/backend/internal/logger"
)

// DB wraps the pooled SQL connection with the error classifier and logger
// shared by all repositories.
type DB struct {
	*sql.DB
	errorClassifier ErrorClassifier
	logger          *logger.Logger
}

// NewConnectPostgres opens a pgx-backed connection pool for the given DSN,
// verifies it with a ping and returns the wrapped handle.
//
// Transient connection failures during the initial ping are retried a few
// times before giving up, so the service survives starting slightly before
// its database.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	classifier := NewPostgresErrorClassifier()

	if err = pingWithRetry(ctx, conn, classifier); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	db := &DB{
		DB:              conn,
		logger:          log,
		errorClassifier: classifier,
	}

	return db, nil
}

// pingWithRetry pings the database, retrying with a short backoff when the
// classifier marks the failure as transient.
func pingWithRetry(ctx context.Context, conn *sql.DB, classifier ErrorClassifier) error {
	const attempts = 3
	backoff := time.Second

	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if err = conn.PingContext(ctx); err == nil {
			return nil
		}
		if classifier.Classify(err) == NonRetryable {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}

	return err
}

// postgresError extracts the PostgreSQL error code from a driver error, or
// returns an empty string for non-postgres errors.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
