package accounts

import (
	"context"
	"fmt"
	"sync"

	"github.com/talx-hub/gopher-accounts/internal/model/user"
	"github.com/talx-hub/gopher-accounts/internal/serviceerrs"
)

// memRepo keeps users in memory. When err is set every call fails with it.
type memRepo struct {
	err    error
	byName map[string]user.User
	mu     sync.Mutex
	nextID int64
}

func newMemRepo() *memRepo {
	return &memRepo{byName: make(map[string]user.User), nextID: 1}
}

func (r *memRepo) Create(_ context.Context, u *user.User) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return 0, fmt.Errorf("failed to insert user: %w", r.err)
	}
	if _, ok := r.byName[u.Username]; ok {
		return 0, fmt.Errorf("username %q: %w", u.Username, serviceerrs.ErrConflict)
	}
	u.ID = r.nextID
	r.nextID++
	r.byName[u.Username] = *u
	return u.ID, nil
}

func (r *memRepo) FindByUsername(_ context.Context, username string) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return user.User{}, fmt.Errorf("failed to find user in DB: %w", r.err)
	}
	u, ok := r.byName[username]
	if !ok {
		return user.User{}, serviceerrs.ErrNotFound
	}
	return u, nil
}

func (r *memRepo) FindIDByUsername(ctx context.Context, username string) (int64, error) {
	u, err := r.FindByUsername(ctx, username)
	return u.ID, err
}

func (r *memRepo) FindByID(_ context.Context, id int64) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return user.User{}, fmt.Errorf("failed to find user in DB: %w", r.err)
	}
	for _, u := range r.byName {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, serviceerrs.ErrNotFound
}

// racyRepo hides existing users from lookups, so Register only learns
// about the duplicate from Create.
type racyRepo struct {
	*memRepo
}

func (r racyRepo) FindIDByUsername(context.Context, string) (int64, error) {
	return 0, serviceerrs.ErrNotFound
}
