package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserRole represents user roles
type UserRole string

const (
	UserRoleUser      UserRole = "user"
	UserRoleAdmin     UserRole = "admin"
	UserRoleModerator UserRole = "moderator"
	UserRoleGuest     UserRole = "guest"
)

// ValidRole reports whether r is one of the known roles
func ValidRole(r UserRole) bool {
	switch r {
	case UserRoleUser, UserRoleAdmin, UserRoleModerator, UserRoleGuest:
		return true
	}
	return false
}

// User represents a user account
type User struct {
	ID              uuid.UUID   `json:"id"`
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	Role            UserRole    `json:"role"`
	AvatarURL       null.String `json:"avatarUrl,omitempty"`
	PasswordHash    string      `json:"-"`
	IsEmailVerified bool        `json:"isEmailVerified"`
	LastLoginAt     null.Time   `json:"lastLoginAt,omitempty"`
	IsBanned        bool        `json:"isBanned"`
	BanReason       null.String `json:"banReason,omitempty"`
	BannedAt        null.Time   `json:"bannedAt,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// CreateUserInput represents input for creating a user
type CreateUserInput struct {
	Name      string `json:"name" binding:"required,min=2,max=255"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	AvatarURL string `json:"avatarUrl" binding:"omitempty,url"`
}

// SignInInput represents input for sign-in
type SignInInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserPatch carries optional field updates for a user. Only non-nil fields
// are applied.
type UserPatch struct {
	Name            *string
	AvatarURL       *string
	Role            *UserRole
	PasswordHash    *string
	IsEmailVerified *bool
}

// Empty reports whether the patch carries no updates
func (p *UserPatch) Empty() bool {
	return p.Name == nil && p.AvatarURL == nil && p.Role == nil &&
		p.PasswordHash == nil && p.IsEmailVerified == nil
}
