package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentity_CanSync(t *testing.T) {
	assert.True(t, Identity{UserID: "u-1", Role: RoleUser}.CanSync())
	assert.True(t, Identity{UserID: "u-1"}.CanSync(), "a missing role is not privileged")
	assert.False(t, Identity{UserID: "u-1", Role: RoleAdmin}.CanSync())
	assert.False(t, Identity{Role: RoleUser}.CanSync())

	assert.True(t, Identity{Role: RoleAdmin}.IsPrivileged())
}

func TestSession_Identity(t *testing.T) {
	session := Session{UserID: "u-1", Login: "dev@securecode.dev", Name: "Dev", Role: RoleUser, Token: "jwt"}

	assert.Equal(t, Identity{UserID: "u-1", Email: "dev@securecode.dev", Name: "Dev", Role: RoleUser}, session.Identity())
}
