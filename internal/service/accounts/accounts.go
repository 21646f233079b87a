// Package accounts validates, registers and authenticates users.
//
// Every operation returns a *serviceerrs.Error on failure. Its Message is
// meant for the end user, its Kind for the caller to branch on.
package accounts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/talx-hub/gopher-accounts/internal/model"
	"github.com/talx-hub/gopher-accounts/internal/model/user"
	"github.com/talx-hub/gopher-accounts/internal/serviceerrs"
	"github.com/talx-hub/gopher-accounts/internal/utils/logger"
)

const (
	MsgUserExists      = "User already exists"
	MsgUserNotFound    = "User not found"
	MsgInvalidPassword = "Invalid password"
)

type Hasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}

type Options struct {
	// MinPasswordEntropy enables the entropy check on registration when > 0.
	MinPasswordEntropy float64
	// EnforceLoginPasswordPolicy runs the registration password rules
	// (including the length minimum) on login too.
	EnforceLoginPasswordPolicy bool
}

type Service struct {
	repo     user.Repository
	hasher   Hasher
	validate *validator.Validate
	opts     Options
}

// New builds the service. It logs through the logger carried by the
// request context, see logger.FromContext.
func New(repo user.Repository, hasher Hasher, opts Options) *Service {
	return &Service{
		repo:     repo,
		hasher:   hasher,
		validate: validator.New(),
		opts:     opts,
	}
}

// CheckAvailable returns nil when no user has the username. A failed lookup
// is reported as taken.
func (s *Service) CheckAvailable(ctx context.Context, username string) error {
	_, err := s.repo.FindIDByUsername(ctx, username)
	switch {
	case errors.Is(err, serviceerrs.ErrNotFound):
		return nil
	case err != nil:
		s.logStoreError(ctx, "failed to check if user exists", err)
		return serviceerrs.Wrap(serviceerrs.KindStoreUnavailable, MsgUserExists, err)
	default:
		return serviceerrs.New(serviceerrs.KindConflict, MsgUserExists)
	}
}

// Register validates the input, stores the user with a bcrypt digest of the
// password and returns the new id. confirm may be empty.
func (s *Service) Register(ctx context.Context,
	username, email, password, confirm string,
) (int64, error) {
	if err := s.ValidateUsername(username); err != nil {
		return 0, err
	}
	if err := s.ValidateEmail(email); err != nil {
		return 0, err
	}
	if err := s.ValidatePassword(password, confirm); err != nil {
		return 0, err
	}
	if err := s.ValidatePasswordStrength(password); err != nil {
		return 0, err
	}
	if err := s.CheckAvailable(ctx, username); err != nil {
		return 0, err
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return 0, serviceerrs.Wrap(serviceerrs.KindUnknown,
			storeMessage("Failed to register user (%s)", err), err)
	}

	id, err := s.repo.Create(ctx, &user.User{
		Username:     username,
		Email:        email,
		PasswordHash: digest,
	})
	if err != nil {
		if errors.Is(err, serviceerrs.ErrConflict) {
			return 0, serviceerrs.Wrap(serviceerrs.KindConflict, MsgUserExists, err)
		}
		s.logStoreError(ctx, "failed to register user", err)
		return 0, serviceerrs.Wrap(serviceerrs.KindStoreUnavailable,
			storeMessage("Failed to register user (%s)", err), err)
	}

	logger.FromContext(ctx).LogAttrs(ctx,
		slog.LevelInfo,
		"user registered",
		slog.Int64("id", id),
	)
	return id, nil
}

// Authenticate returns the stored user when the password matches its digest.
func (s *Service) Authenticate(ctx context.Context, username, password string,
) (user.User, error) {
	if err := s.ValidateUsername(username); err != nil {
		return user.User{}, err
	}
	if err := s.validateLoginPassword(password); err != nil {
		return user.User{}, err
	}

	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, serviceerrs.ErrNotFound) {
			return user.User{}, serviceerrs.Wrap(serviceerrs.KindNotFound, MsgUserNotFound, err)
		}
		s.logStoreError(ctx, "failed to authenticate user", err)
		return user.User{}, serviceerrs.Wrap(serviceerrs.KindStoreUnavailable,
			storeMessage("Failed to authenticate user: (%s)", err), err)
	}

	if !s.hasher.Verify(password, u.PasswordHash) {
		return user.User{}, serviceerrs.New(serviceerrs.KindInvalidCredentials, MsgInvalidPassword)
	}
	return u, nil
}

func (s *Service) GetUserID(ctx context.Context, username string) (int64, error) {
	id, err := s.repo.FindIDByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, serviceerrs.ErrNotFound) {
			return 0, serviceerrs.Wrap(serviceerrs.KindNotFound, MsgUserNotFound, err)
		}
		s.logStoreError(ctx, "failed to get user id", err)
		return 0, serviceerrs.Wrap(serviceerrs.KindStoreUnavailable,
			storeMessage("Failed to get user id: (%s)", err), err)
	}
	return id, nil
}

func (s *Service) GetUsername(ctx context.Context, id int64) (string, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceerrs.ErrNotFound) {
			return "", serviceerrs.Wrap(serviceerrs.KindNotFound, MsgUserNotFound, err)
		}
		s.logStoreError(ctx, "failed to get user info", err)
		return "", serviceerrs.Wrap(serviceerrs.KindStoreUnavailable,
			storeMessage("Failed to get user info: (%s)", err), err)
	}
	return u.Username, nil
}

func (s *Service) validateLoginPassword(password string) error {
	if s.opts.EnforceLoginPasswordPolicy {
		return s.ValidatePassword(password, password)
	}
	if password == "" {
		return serviceerrs.New(serviceerrs.KindValidation, MsgEmptyPassword)
	}
	return nil
}

func (s *Service) logStoreError(ctx context.Context, msg string, err error) {
	logger.FromContext(ctx).LogAttrs(ctx,
		slog.LevelError,
		msg,
		slog.Any(model.KeyLoggerError, err),
	)
}

// storeMessage embeds the innermost error text, which is what the driver
// reported.
func storeMessage(format string, err error) string {
	for next := errors.Unwrap(err); next != nil; next = errors.Unwrap(err) {
		err = next
	}
	return fmt.Sprintf(format, err.Error())
}
