package server

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	entgenerated "github.com/eslsoft/curriculum/internal/adapter/db/ent/generated"
	"github.com/eslsoft/curriculum/internal/config"
)

// OpenDriver opens the configured database as an ent SQL driver.
func OpenDriver(cfg config.Config) (*entsql.Driver, error) {
	var driverName, dialectName string
	switch cfg.DatabaseDriver {
	case config.DriverSQLite:
		driverName, dialectName = "sqlite", dialect.SQLite
	default:
		driverName, dialectName = "postgres", dialect.Postgres
	}

	sqlDB, err := stdsql.Open(driverName, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if cfg.DatabaseDriver == config.DriverSQLite {
		// SQLite allows a single writer.
		sqlDB.SetMaxOpenConns(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping %s: %w", cfg.DatabaseDriver, err)
	}

	return entsql.OpenDB(dialectName, sqlDB), nil
}

// OpenClient opens the configured database as an Ent client without migrating it.
func OpenClient(cfg config.Config) (*entgenerated.Client, error) {
	drv, err := OpenDriver(cfg)
	if err != nil {
		return nil, err
	}
	return entgenerated.NewClient(entgenerated.Driver(drv)), nil
}

// NewEntClient opens the database and brings the schema up to date.
func NewEntClient(cfg config.Config, logger *zap.Logger) (*entgenerated.Client, func(), error) {
	client, err := OpenClient(cfg)
	if err != nil {
		return nil, nil, err
	}

	if err := client.Schema.Create(context.Background()); err != nil {
		_ = client.Close()
		return nil, nil, err
	}

	logger.Info("database ready", zap.String("driver", cfg.DatabaseDriver))
	return client, func() {
		if err := client.Close(); err != nil {
			logger.Warn("close database failed", zap.Error(err))
		}
	}, nil
}
