package entities

import "time"

// ActivityKind says what produced an activity row
type ActivityKind string

const (
	ActivityPayment ActivityKind = "payment"
	ActivitySignup  ActivityKind = "signup"
)

// Activity is one row of the dashboard's recent activity table. It is derived, not stored.
type Activity struct {
	ID     string       `json:"id"`
	Kind   ActivityKind `json:"kind"`
	Actor  string       `json:"actor"`
	Detail string       `json:"detail"`
	Status string       `json:"status"`
	At     time.Time    `json:"at"`
}

// DailyPaidDemo counts sign-ups of one day by kind
type DailyPaidDemo struct {
	Date      time.Time `json:"date"`
	PaidUsers int       `json:"paidUsers"`
	DemoUsers int       `json:"demoUsers"`
	Total     int       `json:"total"`
}
