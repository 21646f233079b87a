package repo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talx-hub/gopher-accounts/internal/model/user"
	"github.com/talx-hub/gopher-accounts/internal/serviceerrs"
)

func TestUserRepository_Create(t *testing.T) {
	repo, ctx, cancel, _ := setupRepo(t, NewUserRepository)
	defer cancel()

	tests := []struct {
		name         string
		username     string
		email        string
		passwordHash string
		wantExists   bool
		wantConflict bool
		wantErr      bool
	}{
		{"create user1", "create-user1", "u1@example.com", "user1password-hash", true, false, false},
		{"create user2", "create-user2", "u2@example.com", "user2password-hash", true, false, false},
		{"duplicate username", "create-user1", "other@example.com", "another-hash", true, true, true},
		{"empty username", "", "u3@example.com", "some-hash", false, false, true},
		{"empty password", "create-user4", "u4@example.com", "", false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &user.User{
				Username:     tt.username,
				Email:        tt.email,
				PasswordHash: tt.passwordHash,
			}
			id, err := repo.Create(ctx, u)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantConflict, errors.Is(err, serviceerrs.ErrConflict))
			} else {
				require.NoError(t, err)
				assert.Positive(t, id)
				assert.Equal(t, id, u.ID)
			}

			_, err = repo.FindIDByUsername(ctx, tt.username)
			assert.Equal(t, tt.wantExists, err == nil)
		})
	}
}

func TestUserRepository_FindByUsername(t *testing.T) {
	repo, ctx, cancel, _ := setupRepo(t, NewUserRepository)
	defer cancel()

	_, err := repo.Create(ctx, &user.User{
		Username:     "find-by-username",
		Email:        "find@example.com",
		PasswordHash: "find-password-hash",
	})
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		wantUser user.User
		wantErr  bool
	}{
		{
			name:     "existing user",
			username: "find-by-username",
			wantUser: user.User{
				Username:     "find-by-username",
				Email:        "find@example.com",
				PasswordHash: "find-password-hash",
			},
			wantErr: false,
		},
		{
			name:     "non-existing user",
			username: "no-such-user",
			wantUser: user.User{},
			wantErr:  true,
		},
		{
			name:     "empty username",
			username: "",
			wantUser: user.User{},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := repo.FindByUsername(ctx, tt.username)
			if tt.wantErr {
				require.ErrorIs(t, err, serviceerrs.ErrNotFound)
				assert.Equal(t, user.User{}, u)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantUser.Username, u.Username)
				assert.Equal(t, tt.wantUser.Email, u.Email)
				assert.Equal(t, tt.wantUser.PasswordHash, u.PasswordHash)
				assert.Positive(t, u.ID)
			}
		})
	}
}

func TestUserRepository_FindIDByUsername(t *testing.T) {
	repo, ctx, cancel, _ := setupRepo(t, NewUserRepository)
	defer cancel()

	created, err := repo.Create(ctx, &user.User{
		Username:     "find-id",
		Email:        "find-id@example.com",
		PasswordHash: "find-id-hash",
	})
	require.NoError(t, err)

	id, err := repo.FindIDByUsername(ctx, "find-id")
	require.NoError(t, err)
	assert.Equal(t, created, id)

	id, err = repo.FindIDByUsername(ctx, "no-such-user")
	require.ErrorIs(t, err, serviceerrs.ErrNotFound)
	assert.Zero(t, id)
}

func TestUserRepository_FindByID(t *testing.T) {
	repo, ctx, cancel, pool := setupRepo(t, NewUserRepository)
	defer cancel()
	err := loadFixtureFile(pool, "./fixtures/user_find_by_id.sql")
	require.NoError(t, err)

	tests := []struct {
		name    string
		id      int64
		want    user.User
		wantErr bool
	}{
		{"existing user", 100, user.User{
			ID:           100,
			Username:     "fixture-user",
			Email:        "fixture@example.com",
			PasswordHash: "fixture-password-hash",
		}, false},
		{"not found", 100500, user.User{}, true},
		{"zero ID", 0, user.User{}, true},
		{"negative ID", -1, user.User{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.FindByID(ctx, tt.id)
			if tt.wantErr {
				assert.ErrorIs(t, err, serviceerrs.ErrNotFound)
				assert.Equal(t, user.User{}, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestUserRepository_Create_primary_key_collision(t *testing.T) {
	repo, ctx, cancel, pool := setupRepo(t, NewUserRepository)
	defer cancel()
	err := loadFixtureFile(pool, "./fixtures/user_id_collision.sql")
	require.NoError(t, err)

	_, err = repo.Create(ctx, &user.User{
		Username:     "fresh-name",
		Email:        "fresh@example.com",
		PasswordHash: "fresh-password-hash",
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, serviceerrs.ErrConflict)

	id, err := repo.Create(ctx, &user.User{
		Username:     "fresh-name",
		Email:        "fresh@example.com",
		PasswordHash: "fresh-password-hash",
	})
	require.NoError(t, err)
	assert.Greater(t, id, int64(200))
}
