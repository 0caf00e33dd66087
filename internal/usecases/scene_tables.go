package usecases

import (
	"tradedesk.backend/internal/domain/entities"
	"tradedesk.backend/pkg/table"
)

func actionsColumn[T any]() table.Column[T] {
	return table.Column[T]{Key: table.ActionsKey, Title: "Actions", Pinned: true, Action: true}
}

func subscriberID(s *entities.Subscriber) string { return s.ID }

// Subscriber columns compare as text, remainingDays included, so "10" sorts before "9".
var subscriberTable = table.MustNew(
	table.Column[*entities.Subscriber]{Key: "userId", Title: "User ID", Value: subscriberID},
	table.Column[*entities.Subscriber]{Key: "tradingViewId", Title: "TradingView ID", Value: func(s *entities.Subscriber) string { return s.TradingViewID }},
	table.Column[*entities.Subscriber]{Key: "name", Title: "Name", Value: func(s *entities.Subscriber) string { return s.Name }},
	table.Column[*entities.Subscriber]{Key: "phoneEmail", Title: "Phone/Email", Value: func(s *entities.Subscriber) string { return s.PhoneEmail }},
	table.Column[*entities.Subscriber]{Key: "referralId", Title: "Referral ID", Value: func(s *entities.Subscriber) string { return s.ReferralID.String }},
	table.Column[*entities.Subscriber]{Key: "plan", Title: "Plan", Value: func(s *entities.Subscriber) string { return string(s.Plan) }},
	table.Column[*entities.Subscriber]{Key: "expiryDate", Title: "Expiry Date", Value: func(s *entities.Subscriber) string { return formatDate(s.ExpiryDate) }},
	table.Column[*entities.Subscriber]{Key: "remainingDays", Title: "Remaining Days", Value: func(s *entities.Subscriber) string { return formatInt(s.RemainingDays) }},
	table.Column[*entities.Subscriber]{Key: "status", Title: "Status", Value: func(s *entities.Subscriber) string { return string(s.Status) }},
	table.Column[*entities.Subscriber]{Key: "joinedDate", Title: "Joined Date", Value: func(s *entities.Subscriber) string { return formatDate(s.JoinedDate) }},
	actionsColumn[*entities.Subscriber](),
)

var paymentTable = table.MustNew(
	table.Column[*entities.Payment]{Key: "id", Title: "Payment ID", Value: func(p *entities.Payment) string { return p.ID }},
	table.Column[*entities.Payment]{Key: "upiUsed", Title: "UPI Used", Value: func(p *entities.Payment) string { return p.UPIUsed }},
	table.Column[*entities.Payment]{Key: "user", Title: "User", Value: func(p *entities.Payment) string { return p.User }},
	table.Column[*entities.Payment]{
		Key:     "amount",
		Title:   "Amount",
		Value:   func(p *entities.Payment) string { return formatRupees(p.Amount) },
		Compare: table.Numeric(func(p *entities.Payment) float64 { return p.Amount }),
	},
	table.Column[*entities.Payment]{Key: "date", Title: "Date", Value: func(p *entities.Payment) string { return formatDate(p.Date) }},
	table.Column[*entities.Payment]{Key: "status", Title: "Status", Value: func(p *entities.Payment) string { return string(p.Status) }},
	actionsColumn[*entities.Payment](),
)

func referralCommission(r *entities.Referral) string { return formatRupees(r.CommissionEarned) }

var referralTable = table.MustNew(
	table.Column[*entities.Referral]{Key: "id", Title: "Referral ID", Value: func(r *entities.Referral) string { return r.ID }},
	table.Column[*entities.Referral]{Key: "referrer", Title: "Referrer", Value: func(r *entities.Referral) string { return r.Referrer }},
	table.Column[*entities.Referral]{
		Key:     "countOfReferrals",
		Title:   "Count of Referrals",
		Value:   func(r *entities.Referral) string { return formatInt(r.CountOfReferrals) },
		Compare: table.Numeric(func(r *entities.Referral) float64 { return float64(r.CountOfReferrals) }),
	},
	table.Column[*entities.Referral]{
		Key:     "commissionEarned",
		Title:   "Commission Earned",
		Value:   referralCommission,
		Compare: table.Currency(referralCommission),
	},
	table.Column[*entities.Referral]{Key: "referralStatus", Title: "Referral Status", Value: func(r *entities.Referral) string { return string(r.Status) }},
	actionsColumn[*entities.Referral](),
)

var indicatorTable = table.MustNew(
	table.Column[*entities.Indicator]{Key: "id", Title: "Indicator ID", Value: func(i *entities.Indicator) string { return i.ID }},
	table.Column[*entities.Indicator]{Key: "name", Title: "Name", Value: func(i *entities.Indicator) string { return i.Name }},
	table.Column[*entities.Indicator]{Key: "imagePreview", Title: "Image Preview", Value: func(i *entities.Indicator) string { return i.ImagePreview.String }},
	table.Column[*entities.Indicator]{Key: "description", Title: "Description", Value: func(i *entities.Indicator) string { return i.Description }},
	table.Column[*entities.Indicator]{Key: "associatedPlan", Title: "Associated Plan", Value: func(i *entities.Indicator) string { return string(i.AssociatedPlan) }},
	actionsColumn[*entities.Indicator](),
)

// Derived tables are read-only and carry no actions column.
var dailyPaidDemoTable = table.MustNew(
	table.Column[*entities.DailyPaidDemo]{Key: "date", Title: "Date", Value: func(d *entities.DailyPaidDemo) string { return formatDate(d.Date) }},
	table.Column[*entities.DailyPaidDemo]{
		Key:     "paidUsers",
		Title:   "Paid Users",
		Value:   func(d *entities.DailyPaidDemo) string { return formatInt(d.PaidUsers) },
		Compare: table.Numeric(func(d *entities.DailyPaidDemo) float64 { return float64(d.PaidUsers) }),
	},
	table.Column[*entities.DailyPaidDemo]{
		Key:     "demoUsers",
		Title:   "Demo Users",
		Value:   func(d *entities.DailyPaidDemo) string { return formatInt(d.DemoUsers) },
		Compare: table.Numeric(func(d *entities.DailyPaidDemo) float64 { return float64(d.DemoUsers) }),
	},
	table.Column[*entities.DailyPaidDemo]{
		Key:     "total",
		Title:   "Total",
		Value:   func(d *entities.DailyPaidDemo) string { return formatInt(d.Total) },
		Compare: table.Numeric(func(d *entities.DailyPaidDemo) float64 { return float64(d.Total) }),
	},
)

var activityTable = table.MustNew(
	table.Column[*entities.Activity]{Key: "at", Title: "Date", Value: func(a *entities.Activity) string { return a.At.Format("2006-01-02 15:04") }},
	table.Column[*entities.Activity]{Key: "kind", Title: "Type", Value: func(a *entities.Activity) string { return string(a.Kind) }},
	table.Column[*entities.Activity]{Key: "actor", Title: "User", Value: func(a *entities.Activity) string { return a.Actor }},
	table.Column[*entities.Activity]{Key: "detail", Title: "Detail", Value: func(a *entities.Activity) string { return a.Detail }},
	table.Column[*entities.Activity]{Key: "status", Title: "Status", Value: func(a *entities.Activity) string { return string(a.Status) }},
)
