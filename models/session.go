package models

import "time"

// Session is the client-side login state persisted between runs.
type Session struct {
	UserID  string
	Login   string
	Name    string
	Role    Role
	Token   string
	SavedAt time.Time
}

// Identity builds the identity published while the session is active.
func (s Session) Identity() Identity {
	return Identity{
		UserID: s.UserID,
		Email:  s.Login,
		Name:   s.Name,
		Role:   s.Role,
	}
}
