package entities

import "time"

// PaymentStatus represents payment status
type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "Completed"
	PaymentStatusPending   PaymentStatus = "Pending"
	PaymentStatusFailed    PaymentStatus = "Failed"
)

// Payment is one UPI payment received from a subscriber
type Payment struct {
	ID        string        `json:"id"`
	UPIUsed   string        `json:"upiUsed"`
	User      string        `json:"user"`
	Amount    float64       `json:"amount"`
	Date      time.Time     `json:"date"`
	Status    PaymentStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// PaymentInput represents the add/edit payment form. Date defaults to today.
type PaymentInput struct {
	UPIUsed string  `json:"upiUsed" validate:"required,upi" label:"UPI ID"`
	User    string  `json:"user" validate:"required,max=100"`
	Amount  float64 `json:"amount" validate:"gt=0"`
	Date    string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Status  string  `json:"status" validate:"required,paystatus"`
}
