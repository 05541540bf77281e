package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrAccessDenied is returned when a regular user asks for another
	// user's record.
	ErrAccessDenied = errors.New("access to a different user's data denied")
	ErrAdminOnly    = errors.New("admin role required")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Client-side errors.
var (
	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrLoginOnServer    = errors.New("login on server failed")

	// ErrNoSession is returned by RestoreSession when nothing is stored or
	// the stored token has expired.
	ErrNoSession = errors.New("no valid session")

	ErrUserNotFound = errors.New("user not found")
)
