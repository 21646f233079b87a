package accounts

import (
	"unicode/utf8"

	passwordvalidator "github.com/wagslane/go-password-validator"

	"github.com/talx-hub/gopher-accounts/internal/serviceerrs"
)

const MinPasswordLength = 9

const (
	MsgEmptyUsername    = "Username cannot be empty"
	MsgInvalidEmail     = "Invalid email address"
	MsgEmptyPassword    = "Password cannot be empty"
	MsgPasswordMismatch = "Passwords do not match"
	MsgPasswordTooShort = "Password must be at least 9 characters"
	MsgPasswordTooWeak  = "Password is too weak"
)

func (s *Service) ValidateUsername(username string) error {
	if username == "" {
		return serviceerrs.New(serviceerrs.KindValidation, MsgEmptyUsername)
	}
	return nil
}

func (s *Service) ValidateEmail(email string) error {
	if err := s.validate.Var(email, "required,email"); err != nil {
		return serviceerrs.Wrap(serviceerrs.KindValidation, MsgInvalidEmail, err)
	}
	return nil
}

// ValidatePassword applies the rules in order and reports the first one
// broken. An empty confirm skips the mismatch rule.
func (s *Service) ValidatePassword(password, confirm string) error {
	if password == "" {
		return serviceerrs.New(serviceerrs.KindValidation, MsgEmptyPassword)
	}
	if confirm != "" && password != confirm {
		return serviceerrs.New(serviceerrs.KindValidation, MsgPasswordMismatch)
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return serviceerrs.New(serviceerrs.KindValidation, MsgPasswordTooShort)
	}
	return nil
}

// ValidatePasswordStrength is a no-op unless a minimum entropy is configured.
func (s *Service) ValidatePasswordStrength(password string) error {
	if s.opts.MinPasswordEntropy <= 0 {
		return nil
	}
	if err := passwordvalidator.Validate(password, s.opts.MinPasswordEntropy); err != nil {
		return serviceerrs.Wrap(serviceerrs.KindValidation, MsgPasswordTooWeak, err)
	}
	return nil
}
