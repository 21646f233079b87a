package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/talx-hub/gopher-accounts/internal/model/user"
	"github.com/talx-hub/gopher-accounts/internal/serviceerrs"
)

const (
	queryInsertUser = `INSERT INTO users (username, email, password)
		VALUES ($1, $2, $3)
		RETURNING id`
	queryFindUserByUsername = `SELECT id, username, email, password
		FROM users
		WHERE username = $1`
	queryFindUserIDByUsername = `SELECT id FROM users WHERE username = $1`
	queryFindUserByID         = `SELECT id, username, email, password
		FROM users
		WHERE id = $1`
)

type UserRepository struct {
	DB
}

func NewUserRepository(pool connectionPool, log *slog.Logger) *UserRepository {
	return &UserRepository{
		DB{
			pool: pool,
			log:  log,
		},
	}
}

// Create inserts the user and returns the id assigned by the DB.
// A taken username is reported as serviceerrs.ErrConflict.
func (r *UserRepository) Create(ctx context.Context, u *user.User) (int64, error) {
	createLogic := func(ctx context.Context, tx connectionPool) (any, error) {
		var id int64
		err := tx.QueryRow(ctx, queryInsertUser,
			u.Username, u.Email, u.PasswordHash).Scan(&id)
		if err != nil {
			if isUsernameTaken(err) {
				return int64(0), fmt.Errorf("username %q: %w", u.Username, serviceerrs.ErrConflict)
			}
			return int64(0), fmt.Errorf("failed to insert user: %w", err)
		}
		return id, nil
	}

	createWithTX := func() (int64, error) {
		return WithTX[int64](ctx, r.pool, r.log, createLogic)
	}

	id, err := WithRetry[int64](ctx, createWithTX, 0)
	if err != nil {
		return 0, err //nolint: wrapcheck // error from wrapped function
	}

	u.ID = id
	return id, nil
}

// nolint: dupl // queries differ in the lookup key
func (r *UserRepository) FindByUsername(ctx context.Context, username string,
) (user.User, error) {
	findByUsernameLogic := func() (user.User, error) {
		return scanUser(r.pool.QueryRow(ctx, queryFindUserByUsername, username))
	}

	u, err := WithRetry[user.User](ctx, findByUsernameLogic, 0)
	if err != nil {
		return user.User{}, err //nolint: wrapcheck // error from wrapped function
	}
	return u, nil
}

func (r *UserRepository) FindIDByUsername(ctx context.Context, username string,
) (int64, error) {
	findIDLogic := func() (int64, error) {
		var id int64
		err := r.pool.QueryRow(ctx, queryFindUserIDByUsername, username).Scan(&id)
		if err != nil {
			return 0, notFoundOr(err)
		}
		return id, nil
	}

	id, err := WithRetry[int64](ctx, findIDLogic, 0)
	if err != nil {
		return 0, err //nolint: wrapcheck // error from wrapped function
	}
	return id, nil
}

// nolint: dupl // queries differ in the lookup key
func (r *UserRepository) FindByID(ctx context.Context, id int64,
) (user.User, error) {
	findByIDLogic := func() (user.User, error) {
		return scanUser(r.pool.QueryRow(ctx, queryFindUserByID, id))
	}

	u, err := WithRetry[user.User](ctx, findByIDLogic, 0)
	if err != nil {
		return user.User{}, err //nolint: wrapcheck // error from wrapped function
	}
	return u, nil
}

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash); err != nil {
		return user.User{}, notFoundOr(err)
	}
	return u, nil
}

func notFoundOr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return serviceerrs.ErrNotFound
	}
	return fmt.Errorf("failed to find user in DB: %w", err)
}
