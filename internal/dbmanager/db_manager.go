package dbmanager

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5" // registers pgx5:// scheme
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/talx-hub/gopher-accounts/internal/model"
	"github.com/talx-hub/gopher-accounts/internal/repo/migrations"
)

// DBManager chains connection set-up steps. The first failing step is kept
// in err and every later step becomes a no-op; read it with Error.
type DBManager struct {
	log  *slog.Logger
	pool *pgxpool.Pool
	err  error
	dsn  string
}

func New(dsn string, log *slog.Logger) *DBManager {
	return &DBManager{
		log:  log,
		pool: nil,
		err:  nil,
		dsn:  dsn,
	}
}

func (m *DBManager) Connect(ctx context.Context) *DBManager {
	if m.err != nil {
		return m
	}

	cfg, err := pgxpool.ParseConfig(m.dsn)
	if err != nil {
		m.fail(ctx, "failed to parse DSN", err)
		return m
	}
	cfg.MinConns = 1
	cfg.MaxConns = 10
	cfg.ConnConfig.Tracer = &queryTracer{m.log}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		m.fail(ctx, "failed to init pgxpool", err)
		return m
	}

	m.pool = pool
	return m
}

func (m *DBManager) Ping(ctx context.Context) *DBManager {
	if m.err != nil {
		return m
	}
	if m.pool == nil {
		m.fail(ctx, "failed to ping the DB", errors.New("not connected"))
		return m
	}

	if err := m.pool.Ping(ctx); err != nil {
		m.fail(ctx, "failed to ping the DB", err)
	}
	return m
}

// ApplyMigrations brings the schema up to date. Re-applying is a no-op.
func (m *DBManager) ApplyMigrations(ctx context.Context) *DBManager {
	if m.err != nil {
		return m
	}

	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		m.fail(ctx, "failed to open migrations source", err)
		return m
	}

	mg, err := migrate.NewWithSourceInstance("iofs", src, migrationURL(m.dsn))
	if err != nil {
		m.fail(ctx, "failed to init migrations", err)
		return m
	}
	defer func() {
		srcErr, dbErr := mg.Close()
		if closeErr := errors.Join(srcErr, dbErr); closeErr != nil {
			m.log.LogAttrs(ctx,
				slog.LevelError,
				"failed to close migrations",
				slog.Any(model.KeyLoggerError, closeErr),
			)
		}
	}()

	if err = mg.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		m.fail(ctx, "failed to apply migrations", err)
		return m
	}
	return m
}

func (m *DBManager) Error() error {
	return m.err
}

func (m *DBManager) GetPool(_ context.Context) (*pgxpool.Pool, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.pool == nil {
		return nil, errors.New("DB is not connected")
	}
	return m.pool, nil
}

// Ready reports whether the DB answers a ping right now.
func (m *DBManager) Ready(ctx context.Context) error {
	if m.pool == nil {
		return errors.New("DB is not connected")
	}
	if err := m.pool.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping the DB: %w", err)
	}
	return nil
}

func (m *DBManager) Close() {
	if m.pool == nil {
		return
	}

	m.pool.Close()
	m.log.LogAttrs(context.TODO(),
		slog.LevelInfo,
		"connection to DB closed",
	)
}

func (m *DBManager) fail(ctx context.Context, msg string, err error) {
	m.log.LogAttrs(ctx,
		slog.LevelError,
		msg,
		slog.Any(model.KeyLoggerError, err),
	)
	m.err = fmt.Errorf("%s: %w", msg, err)
}

func migrationURL(dsn string) string {
	for _, scheme := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(dsn, scheme) {
			return "pgx5://" + strings.TrimPrefix(dsn, scheme)
		}
	}
	return dsn
}
