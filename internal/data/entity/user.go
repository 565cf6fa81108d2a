package entity

type UserRole string

const (
	RoleSuperAdmin UserRole = "superadmin"
	RoleAdmin      UserRole = "admin"
	RoleViewer     UserRole = "viewer"
)

type User struct {
	Base
	Username     string   `db:"username"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Role         UserRole `db:"role"`
	IsActive     bool     `db:"is_active"`
}

// CanEdit reports whether the user may create, update or delete records.
// Viewers are read-only.
func (u *User) CanEdit() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperAdmin
}
