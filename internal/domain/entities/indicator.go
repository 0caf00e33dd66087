package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Indicator is a TradingView script sold with a plan
type Indicator struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	ImagePreview   null.String `json:"imagePreview"`
	Description    string      `json:"description"`
	AssociatedPlan Plan        `json:"associatedPlan"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

// IndicatorInput represents the add/edit indicator form
type IndicatorInput struct {
	Name           string `json:"name" validate:"required,max=100"`
	ImagePreview   string `json:"imagePreview" validate:"omitempty,imageurl" label:"Image preview"`
	Description    string `json:"description" validate:"required,max=500"`
	AssociatedPlan string `json:"associatedPlan" validate:"required,plan" label:"Associated plan"`
}
