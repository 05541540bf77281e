package models

import "time"

// Role is the access level of an account. Only [RoleAdmin] is privileged.
type Role string

const (
	// RoleUser is a regular dashboard user whose data is synchronised in the
	// background.
	RoleUser Role = "user"

	// RoleAdmin is a privileged account with access to the admin screens.
	// Admin sessions never synchronise automatically.
	RoleAdmin Role = "admin"
)

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the opaque server-assigned identifier (UUID v7).
	UserID string `json:"user_id,omitempty"`

	// Login is the unique login of the account, usually an e-mail address.
	Login string `json:"login"`

	// Name is the display name of the user.
	Name string `json:"name,omitempty"`

	// Password is the plaintext password sent by the client on register and
	// login. It is never persisted and never returned by the server.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored in the database.
	PasswordHash string `json:"-"`

	// Role is the access level of the account.
	Role Role `json:"role,omitempty"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Identity builds the client-side identity of the account.
func (u User) Identity() Identity {
	return Identity{
		UserID: u.UserID,
		Email:  u.Login,
		Name:   u.Name,
		Role:   u.Role,
	}
}
