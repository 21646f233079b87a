// Package pgcontainer runs a throwaway PostgreSQL in docker for integration
// tests.
package pgcontainer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"github.com/talx-hub/gopher-accounts/internal/model"
)

const (
	pgPort         = "5432/tcp"
	defaultTag     = "17-alpine"
	testDBName     = "test"
	testUser       = "test"
	testPassword   = "test"
	defaultTimeout = 3 * time.Second
	maxWait        = 30 * time.Second
)

type Container struct {
	log      *slog.Logger
	pool     *dockertest.Pool
	resource *dockertest.Resource
	hostPort string
}

func New(log *slog.Logger) *Container {
	return &Container{log: log}
}

// RunContainer starts postgres and creates the test role and database.
// The image tag is read from POSTGRES_TAG, optionally set in a .env file.
func (c *Container) RunContainer() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("failed to initialize a docker pool: %w", err)
	}
	c.pool = pool

	resource, err := pool.RunWithOptions(
		&dockertest.RunOptions{
			Repository: "postgres",
			Tag:        imageTag(c.log),
			Env: []string{
				"POSTGRES_USER=postgres",
				"POSTGRES_PASSWORD=postgres",
			},
			ExposedPorts: []string{pgPort},
		},
		func(config *docker.HostConfig) {
			config.AutoRemove = true
			config.RestartPolicy = docker.RestartPolicy{Name: "no"}
		},
	)
	if err != nil {
		return fmt.Errorf("failed to run postgres container: %w", err)
	}
	c.resource = resource
	c.hostPort = resource.GetHostPort(pgPort)

	pool.MaxWait = maxWait
	var conn *pgx.Conn
	if err = pool.Retry(func() error {
		conn, err = c.superUserConnection()
		return err
	}); err != nil {
		return fmt.Errorf("retry failed: %w", err)
	}
	defer func() {
		if err := conn.Close(context.TODO()); err != nil {
			c.log.LogAttrs(context.TODO(),
				slog.LevelError,
				"failed to correctly close the DB connection",
				slog.Any(model.KeyLoggerError, err),
			)
		}
	}()

	return createTestDB(conn)
}

func (c *Container) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=disable",
		testUser,
		testPassword,
		c.hostPort,
		testDBName,
	)
}

func (c *Container) Close() {
	if c.pool == nil || c.resource == nil {
		return
	}
	if err := c.pool.Purge(c.resource); err != nil {
		c.log.LogAttrs(context.TODO(),
			slog.LevelError,
			"failed to purge the postgres container",
			slog.Any(model.KeyLoggerError, err),
		)
	}
}

func (c *Container) superUserConnection() (*pgx.Conn, error) {
	dsn := fmt.Sprintf(
		"postgres://postgres:postgres@%s/postgres?sslmode=disable",
		c.hostPort,
	)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to get a super user connection: %w", err)
	}
	return conn, nil
}

func createTestDB(conn *pgx.Conn) error {
	const (
		createUser = `CREATE USER %s PASSWORD '%s';`
		createDB   = `CREATE DATABASE %s
		OWNER %s
		ENCODING 'UTF8';`
	)

	ctx, cancel1 := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel1()
	_, err := conn.Exec(ctx, fmt.Sprintf(createUser, testUser, testPassword))
	if err != nil {
		return fmt.Errorf("failed to create a test user: %w", err)
	}

	ctx, cancel2 := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel2()
	_, err = conn.Exec(ctx, fmt.Sprintf(createDB, testDBName, testUser))
	if err != nil {
		return fmt.Errorf("failed to create a test DB: %w", err)
	}

	return nil
}

func imageTag(log *slog.Logger) string {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.LogAttrs(context.TODO(),
			slog.LevelWarn,
			"failed to load .env file",
			slog.Any(model.KeyLoggerError, err),
		)
	}
	if tag := os.Getenv("POSTGRES_TAG"); tag != "" {
		return tag
	}
	return defaultTag
}
