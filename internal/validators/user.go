package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/memehoueibib/securecode-platform-sub001/models"
)

// Field names accepted by [UserValidator].
const (
	FieldLogin    = "login"
	FieldPassword = "password"
	FieldName     = "name"
	FieldUserID   = "user_id"
)

const (
	maxLoginLength = 254
	// bcrypt ignores everything after 72 bytes.
	maxPasswordBytes = 72
	maxNameLength    = 100
)

// UserValidator checks credentials and identities. Without explicit fields a
// models.User is checked for login, password and name, a models.Identity for
// its user id.
type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(_ context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)
	case models.Identity:
		return v.validateIdentity(value, fields...)
	case *models.Identity:
		return v.validateIdentity(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if err := validateLogin(user.Login); err != nil {
				return err
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
			if len(user.Password) > maxPasswordBytes {
				return ErrPasswordTooLong
			}
		case FieldName:
			if utf8.RuneCountInString(user.Name) > maxNameLength {
				return ErrNameTooLong
			}
		case FieldUserID:
			if strings.TrimSpace(user.UserID) == "" {
				return ErrInvalidUserID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateIdentity(id models.Identity, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if strings.TrimSpace(id.UserID) == "" {
				return ErrInvalidUserID
			}
		case FieldLogin:
			if err := validateLogin(id.Email); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateLogin(login string) error {
	login = strings.TrimSpace(login)
	if login == "" {
		return ErrEmptyLogin
	}
	if len(login) > maxLoginLength {
		return ErrInvalidLogin
	}

	addr, err := mail.ParseAddress(login)
	if err != nil || addr.Address != login {
		return ErrInvalidLogin
	}

	return nil
}
