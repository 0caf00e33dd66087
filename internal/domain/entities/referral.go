package entities

import "time"

// ReferralStatus represents referral program status
type ReferralStatus string

const (
	ReferralStatusActive   ReferralStatus = "Active"
	ReferralStatusInactive ReferralStatus = "Inactive"
	ReferralStatusPending  ReferralStatus = "Pending"
)

// Referral tracks one referrer's results
type Referral struct {
	ID               string         `json:"id"`
	Referrer         string         `json:"referrer"`
	CountOfReferrals int            `json:"countOfReferrals"`
	CommissionEarned float64        `json:"commissionEarned"`
	Status           ReferralStatus `json:"referralStatus"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

// ReferralInput represents the add/edit referral form
type ReferralInput struct {
	Referrer         string  `json:"referrer" validate:"required,max=100"`
	CountOfReferrals int     `json:"countOfReferrals" validate:"gte=0,lte=100000" label:"Count of referrals"`
	CommissionEarned float64 `json:"commissionEarned" validate:"gte=0" label:"Commission earned"`
	ReferralStatus   string  `json:"referralStatus" validate:"required,refstatus" label:"Referral status"`
}
