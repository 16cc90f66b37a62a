// Package postgres implements the roster repository against PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"mergington-activities/config"
	"mergington-activities/internal/entities"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

// Postgres wraps a pgx pool and configuration.
type Postgres struct {
	baseCtx context.Context
	log     *zap.SugaredLogger
	db      *pgxpool.Pool
	cfg     config.PostgresConfig
	seed    []entities.Activity
}

// New creates a Postgres repository instance that resets to seed on start.
func New(ctx context.Context, log *zap.SugaredLogger, cfg *config.Config, seed []entities.Activity) *Postgres {
	return &Postgres{
		baseCtx: ctx,
		log:     log.Named("repo.postgres"),
		cfg:     cfg.Postgres,
		seed:    seed,
	}
}

// OnStart establishes connection pool, applies migrations and loads the seed set.
func (p *Postgres) OnStart(_ context.Context) error {
	poolCfg, err := pgxpool.ParseConfig(p.cfg.DSN())
	if err != nil {
		return fmt.Errorf("parse pool config: %w", err)
	}
	poolCfg.MaxConns = p.cfg.MaxConns
	poolCfg.MinConns = p.cfg.MinConns

	connectCtx, cancelConnect := context.WithTimeout(p.baseCtx, p.cfg.QueryTimeout)
	defer cancelConnect()

	pool, err := pgxpool.NewWithConfig(connectCtx, poolCfg)
	if err != nil {
		return fmt.Errorf("open pool: %w", err)
	}
	if err := pool.Ping(connectCtx); err != nil {
		pool.Close()
		return fmt.Errorf("ping pool: %w", err)
	}

	sqlDB, err := sql.Open("postgres", p.cfg.DSN())
	if err != nil {
		pool.Close()
		return fmt.Errorf("open sql: %w", err)
	}
	defer func() { _ = sqlDB.Close() }()

	migrateCtx, cancelMigrate := context.WithTimeout(p.baseCtx, p.cfg.MigrateTimeout)
	defer cancelMigrate()

	if err := goose.SetDialect("postgres"); err != nil {
		pool.Close()
		return fmt.Errorf("migrate dialect: %w", err)
	}
	if err := goose.UpContext(migrateCtx, sqlDB, p.cfg.MigrationsDir); err != nil {
		pool.Close()
		return fmt.Errorf("migrate: %w", err)
	}
	if _, err := goose.EnsureDBVersion(sqlDB); err != nil {
		pool.Close()
		return fmt.Errorf("migrate version: %w", err)
	}

	p.db = pool
	if err := p.reseed(migrateCtx); err != nil {
		pool.Close()
		p.db = nil
		return err
	}

	p.log.Infow("postgres ready", "host", p.cfg.Host, "port", p.cfg.Port, "activities", len(p.seed))
	return nil
}

// OnStop closes pool connections.
func (p *Postgres) OnStop(_ context.Context) error {
	if p.db != nil {
		p.db.Close()
	}
	return nil
}
