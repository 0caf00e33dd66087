package models

import "time"

type Payment struct {
	ID        string    `gorm:"type:varchar(32);primaryKey"`
	UPIUsed   string    `gorm:"column:upi_used;type:varchar(255);not null"`
	User      string    `gorm:"column:user_name;type:varchar(100);not null"`
	Amount    float64   `gorm:"type:numeric(12,2);not null"`
	Date      time.Time `gorm:"not null;index"`
	Status    string    `gorm:"type:varchar(20);not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Payment) TableName() string { return "payments" }
