package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/pitchside/clubadmin/internal/config"
	"github.com/pitchside/clubadmin/internal/platform/logging"
)

func openDB(cfg config.Config, logger *logging.Logger) (*sqlx.DB, error) {
	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	opts := []otelsql.Option{
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	}
	if name := dbNameFromURL(dbURL); name != "" {
		opts = append(opts, otelsql.WithDBName(name))
	}

	db, err := otelsqlx.Connect("postgres", dbURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	logger.Info("postgres connected", "db_name", dbNameFromURL(dbURL))

	return db, nil
}
