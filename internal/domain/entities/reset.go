package entities

import (
	"time"

	"github.com/google/uuid"
)

// ResetStep is the step a password reset is waiting for
type ResetStep int

const (
	ResetStepVerify   ResetStep = 2
	ResetStepComplete ResetStep = 3
)

// PasswordReset is the server-side state of the forgot-password wizard
type PasswordReset struct {
	ID        string    `json:"id"`
	AccountID uuid.UUID `json:"accountId"`
	Email     string    `json:"email"`
	Step      ResetStep `json:"step"`
	CreatedAt time.Time `json:"createdAt"`
}

// ResetStartInput is step 1: the account email
type ResetStartInput struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetVerifyInput is step 2: the security answer, which is the account's first name
type ResetVerifyInput struct {
	FirstName string `json:"firstName" validate:"required" label:"First name"`
}

// ResetCompleteInput is step 3: the new password
type ResetCompleteInput struct {
	NewPassword     string `json:"newPassword" validate:"required,min=8,max=72" label:"New password"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=NewPassword" label:"Confirm password"`
}
