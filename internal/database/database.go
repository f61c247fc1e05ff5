package database

import (
	"context"
	"fmt"
	"time"

	"elearn-api/internal/logger"

	"github.com/jmoiron/sqlx"
	_ "github.com/sijms/go-ora/v2" // Oracle driver
	"go.uber.org/zap"
)

const (
	driverName     = "oracle"
	maxOpenConns   = 25
	maxIdleConns   = 5
	connMaxLife    = 30 * time.Minute
	connectTimeout = 10 * time.Second
)

// NewSQLXOracleDB opens a pooled Oracle connection through go-ora and pings it.
func NewSQLXOracleDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open Oracle database: %w", err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLife)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping Oracle database: %w", err)
	}

	logger.Get().Info("Successfully connected to Oracle database", zap.Int("max_open_conns", maxOpenConns))
	return db, nil
}
