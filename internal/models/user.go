package models

import "time"

// UserProfile is the single source of truth for a caller's role and tenant.
// ID matches the authentication identity. Brand stays nil until the user picks
// a tenant and is cleared again on sign-out.
type UserProfile struct {
	ID        string  `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	Role      string  `gorm:"column:role;size:16;not null;default:user" json:"role"`
	Brand     *string `gorm:"column:brand;size:32" json:"brand"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the table name for UserProfile
func (UserProfile) TableName() string {
	return "users"
}

// Roles recognized by the access gate.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Identity is the resolved caller stored in the request context by the auth
// middleware. Never client-supplied.
type Identity struct {
	UserID string
	Email  string
	Role   string
	Brand  *string
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
