package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name string
		want Role
	}{
		{name: "admin", want: RoleAdmin},
		{name: "Admin", want: RoleAdmin},
		{name: "ADMIN", want: RoleAdmin},
		{name: "user", want: RoleMember},
		{name: "administrator", want: RoleMember},
		{name: " admin", want: RoleMember},
		{name: "", want: RoleMember},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRole(tt.name))
		})
	}
}

func TestUser_Access(t *testing.T) {
	t.Run("Should evaluate role name case-insensitively", func(t *testing.T) {
		u := &User{Role: "aDmIn"}
		assert.Equal(t, RoleAdmin, u.Access())
	})
	t.Run("Should treat any other role name as member", func(t *testing.T) {
		u := &User{Role: "editor"}
		assert.Equal(t, RoleMember, u.Access())
		assert.Equal(t, "member", u.Access().String())
	})
}
