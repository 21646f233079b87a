package user

import "context"

type User struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	ID           int64  `json:"id"`
}

type Repository interface {
	Create(ctx context.Context, u *User) (int64, error)
	FindByUsername(ctx context.Context, username string) (User, error)
	FindIDByUsername(ctx context.Context, username string) (int64, error)
	FindByID(ctx context.Context, id int64) (User, error)
}
