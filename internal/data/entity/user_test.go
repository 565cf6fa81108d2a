package entity

import "testing"

func TestUserCanEdit(t *testing.T) {
	tests := []struct {
		role UserRole
		want bool
	}{
		{RoleSuperAdmin, true},
		{RoleAdmin, true},
		{RoleViewer, false},
		{UserRole("unknown"), false},
	}

	for _, tt := range tests {
		user := &User{Role: tt.role}
		if got := user.CanEdit(); got != tt.want {
			t.Errorf("CanEdit() with role %q = %v, want %v", tt.role, got, tt.want)
		}
	}
}
