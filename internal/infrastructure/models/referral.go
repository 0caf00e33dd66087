package models

import "time"

type Referral struct {
	ID               string  `gorm:"type:varchar(32);primaryKey"`
	Referrer         string  `gorm:"type:varchar(100);not null"`
	CountOfReferrals int     `gorm:"not null;default:0"`
	CommissionEarned float64 `gorm:"type:numeric(12,2);not null;default:0"`
	Status           string  `gorm:"type:varchar(20);not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (Referral) TableName() string { return "referrals" }
