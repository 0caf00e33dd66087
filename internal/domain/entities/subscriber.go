package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Plan is a subscription plan
type Plan string

const (
	PlanDemo       Plan = "Demo"
	PlanMonthly    Plan = "Monthly"
	PlanQuarterly  Plan = "Quarterly"
	PlanHalfYearly Plan = "Half-Yearly"
	PlanYearly     Plan = "Yearly"
)

// Plans lists every plan in display order
var Plans = []Plan{PlanDemo, PlanMonthly, PlanQuarterly, PlanHalfYearly, PlanYearly}

// Days is the length of one subscription period.
func (p Plan) Days() int {
	switch p {
	case PlanDemo:
		return 7
	case PlanMonthly:
		return 30
	case PlanQuarterly:
		return 90
	case PlanHalfYearly:
		return 180
	case PlanYearly:
		return 365
	}
	return 0
}

// Price is the list price of one period in rupees.
func (p Plan) Price() float64 {
	switch p {
	case PlanMonthly:
		return 999
	case PlanQuarterly:
		return 2699
	case PlanHalfYearly:
		return 4999
	case PlanYearly:
		return 8999
	}
	return 0
}

// SubscriberStatus represents subscription status
type SubscriberStatus string

const (
	SubscriberStatusActive    SubscriberStatus = "Active"
	SubscriberStatusExpired   SubscriberStatus = "Expired"
	SubscriberStatusSuspended SubscriberStatus = "Suspended"
)

// SubscriberKind splits subscribers into paying and trial users
type SubscriberKind string

const (
	SubscriberKindPaid SubscriberKind = "paid"
	SubscriberKindDemo SubscriberKind = "demo"
)

// Subscriber is a TradingView user with a plan
type Subscriber struct {
	ID            string           `json:"userId"`
	TradingViewID string           `json:"tradingViewId"`
	Name          string           `json:"name"`
	PhoneEmail    string           `json:"phoneEmail"`
	ReferralID    null.String      `json:"referralId"`
	Plan          Plan             `json:"plan"`
	ExpiryDate    time.Time        `json:"expiryDate"`
	RemainingDays int              `json:"remainingDays"`
	Status        SubscriberStatus `json:"status"`
	JoinedDate    time.Time        `json:"joinedDate"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// Kind is demo for the Demo plan and paid for every other plan
func (s *Subscriber) Kind() SubscriberKind {
	if s.Plan == PlanDemo {
		return SubscriberKindDemo
	}
	return SubscriberKindPaid
}

// DaysUntilExpiry counts whole calendar days from now to the expiry date, never below 0.
func (s *Subscriber) DaysUntilExpiry(now time.Time) int {
	days := int(civilDay(s.ExpiryDate.In(now.Location())).Sub(civilDay(now)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// Refresh recomputes the derived fields against now
func (s *Subscriber) Refresh(now time.Time) {
	s.RemainingDays = s.DaysUntilExpiry(now)
}

// civilDay is t's calendar date at UTC midnight, so day arithmetic ignores DST shifts.
func civilDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SubscriberInput represents the add/edit subscriber form
type SubscriberInput struct {
	TradingViewID string `json:"tradingViewId" validate:"required,max=60" label:"TradingView ID"`
	Name          string `json:"name" validate:"required,max=100"`
	PhoneEmail    string `json:"phoneEmail" validate:"required,phoneemail" label:"Phone or email"`
	ReferralID    string `json:"referralId" validate:"omitempty,max=40" label:"Referral ID"`
	Plan          string `json:"plan" validate:"required,plan"`
	ExpiryDate    string `json:"expiryDate" validate:"required,notpast" label:"Expiry date"`
	Status        string `json:"status" validate:"omitempty,substatus"`
}

// SubscriberFilter narrows subscriber listings
type SubscriberFilter struct {
	Kind   SubscriberKind
	Status SubscriberStatus
}
