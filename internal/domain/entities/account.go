package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// AccountRole represents account roles
type AccountRole string

const (
	AccountRoleAdmin AccountRole = "ADMIN"
	AccountRoleStaff AccountRole = "STAFF"
)

// Theme is the dashboard color scheme
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Toggle flips dark and light. Anything else becomes dark.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Account is a registered dashboard operator
type Account struct {
	ID           uuid.UUID   `json:"id"`
	FirstName    string      `json:"firstName"`
	LastName     string      `json:"lastName"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Role         AccountRole `json:"role"`
	Theme        Theme       `json:"theme"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
	DeletedAt    *time.Time  `json:"-"`
}

// FullName joins first and last name
func (a *Account) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// NormalizeEmail is the form emails are stored and compared in
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// RegisterInput represents input for signing up
type RegisterInput struct {
	FirstName       string `json:"firstName" validate:"required,max=50" label:"First name"`
	LastName        string `json:"lastName" validate:"required,max=50" label:"Last name"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8,max=72"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password" label:"Confirm password"`
}

// LoginInput represents input for signing in
type LoginInput struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	UseSession bool   `json:"useSession"` // If true, store tokens in Redis and return SessionID
}

// RefreshInput represents input for refreshing tokens
type RefreshInput struct {
	RefreshToken string `json:"refreshToken" validate:"required" label:"Refresh token"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken  string    `json:"accessToken,omitempty"`
	RefreshToken string    `json:"refreshToken,omitempty"`
	ExpiresAt    time.Time `json:"expiresAt,omitempty"`
	SessionID    string    `json:"sessionId,omitempty"`
	Account      *Account  `json:"account"`
}

// PreferenceInput represents the preferences a user can change
type PreferenceInput struct {
	Theme string `json:"theme" validate:"required,theme"`
}
