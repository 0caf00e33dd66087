package models

import (
	"time"

	"github.com/volatiletech/null/v8"
)

type Subscriber struct {
	ID            string      `gorm:"type:varchar(32);primaryKey"`
	TradingViewID string      `gorm:"type:varchar(60);not null"`
	Name          string      `gorm:"type:varchar(100);not null"`
	PhoneEmail    string      `gorm:"type:varchar(255);not null"`
	ReferralID    null.String `gorm:"type:varchar(40)"`
	Plan          string      `gorm:"type:varchar(20);not null;index"`
	ExpiryDate    time.Time   `gorm:"not null;index"`
	Status        string      `gorm:"type:varchar(20);not null;index"`
	JoinedDate    time.Time   `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Subscriber) TableName() string { return "subscribers" }
