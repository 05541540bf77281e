package models

// Identity is the authenticated principal as seen by the client. It is
// read-only for consumers; the identity provider replaces it wholesale on
// login, logout and privilege changes.
type Identity struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	Role   Role   `json:"role"`
}

// IsPrivileged reports whether the identity belongs to an administrator.
func (i Identity) IsPrivileged() bool {
	return i.Role == RoleAdmin
}

// CanSync reports whether background synchronisation may run for the
// identity: a user id is present and the account is not privileged.
func (i Identity) CanSync() bool {
	return i.UserID != "" && !i.IsPrivileged()
}
