package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyLogin      = errors.New("login is required")
	ErrInvalidLogin    = errors.New("login must be an email address")
	ErrEmptyPassword   = errors.New("password is required")
	ErrPasswordTooLong = errors.New("password is too long")
	ErrNameTooLong     = errors.New("name is too long")
	ErrInvalidUserID   = errors.New("invalid user ID")
)
