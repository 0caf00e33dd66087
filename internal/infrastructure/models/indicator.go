package models

import (
	"time"

	"github.com/volatiletech/null/v8"
)

type Indicator struct {
	ID             string      `gorm:"type:varchar(32);primaryKey"`
	Name           string      `gorm:"type:varchar(100);not null"`
	ImagePreview   null.String `gorm:"type:varchar(2048)"`
	Description    string      `gorm:"type:text;not null"`
	AssociatedPlan string      `gorm:"type:varchar(20);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Indicator) TableName() string { return "indicators" }
