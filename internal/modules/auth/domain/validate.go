package domain

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	apperrors "fintrack/internal/platform/errors"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const passwordSymbols = "@$!%*?&"

type Registration struct {
	Email    string
	Username string
	Password string
}

// ProfileUpdate carries only the fields the user actually changed; nil
// pointers are omitted from the PUT /profile payload.
type ProfileUpdate struct {
	Email    *string
	Username *string
	Password *string
}

// Validate checks a registration payload before it reaches the network.
// Messages are user-facing product copy.
func (r Registration) Validate() error {
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	if err := validateUsername(r.Username); err != nil {
		return err
	}
	return ValidatePassword(r.Password)
}

func (u ProfileUpdate) Validate() error {
	if u.Email != nil {
		if err := validateEmail(*u.Email); err != nil {
			return err
		}
	}
	if u.Username != nil {
		if err := validateUsername(*u.Username); err != nil {
			return err
		}
	}
	if u.Password != nil {
		if err := ValidatePassword(*u.Password); err != nil {
			return err
		}
	}
	return nil
}

// ValidatePassword enforces the account password policy: at least 10
// characters mixing letters, digits, and at least one symbol.
func ValidatePassword(password string) error {
	if len(password) < 10 {
		return fmt.Errorf("%w: la contraseña debe tener al menos 10 caracteres", apperrors.ErrInvalidInput)
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit || !strings.ContainsAny(password, passwordSymbols) {
		return fmt.Errorf("%w: la contraseña debe incluir letras, números y al menos 1 símbolo", apperrors.ErrInvalidInput)
	}
	return nil
}

func validateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: el correo electrónico no es válido", apperrors.ErrInvalidInput)
	}
	return nil
}

func validateUsername(username string) error {
	if len(username) > 50 {
		return fmt.Errorf("%w: el nombre de usuario no puede exceder 50 caracteres", apperrors.ErrInvalidInput)
	}
	return nil
}
