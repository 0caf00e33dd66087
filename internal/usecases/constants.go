package usecases

import "time"

// Record id prefixes
const (
	SubscriberIDPrefix = "USR"
	PaymentIDPrefix    = "PAY"
	ReferralIDPrefix   = "REF"
	IndicatorIDPrefix  = "IND"
)

// Resource names used in routes and confirmation keys
const (
	ResourceSubscribers = "subscribers"
	ResourcePayments    = "payments"
	ResourceReferrals   = "referrals"
	ResourceIndicators  = "indicators"
)

// Lifetimes of server-side wizard and confirmation state
const (
	ConfirmationTTL  = 5 * time.Minute
	PasswordResetTTL = 15 * time.Minute
)

// DateLayout is the date format used by forms and chart labels
const DateLayout = "2006-01-02"

// Dashboard windows
const (
	RevenueTrendMonths = 6
	DailySignupsDays   = 7
	PaymentVolumeDays  = 14
	ExpiringSoonDays   = 7
	RecentActivitySize = 10
)
