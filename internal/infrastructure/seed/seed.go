// Package seed loads the demo dataset the dashboard ships with.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"tradedesk.backend/internal/domain/entities"
	"tradedesk.backend/internal/domain/repositories"
	"tradedesk.backend/pkg/logger"
	"tradedesk.backend/pkg/utils"
)

// Repositories are the stores the seed writes to
type Repositories struct {
	Subscribers repositories.SubscriberRepository
	Payments    repositories.PaymentRepository
	Referrals   repositories.ReferralRepository
	Indicators  repositories.IndicatorRepository
}

// Summary counts what Load inserted
type Summary struct {
	Subscribers int
	Payments    int
	Referrals   int
	Indicators  int
	Skipped     bool
}

var newID = utils.NewRecordID

type subscriberRow struct {
	tv, name, contact, referral string
	plan                        entities.Plan
	joinedDaysAgo               int
	status                      entities.SubscriberStatus
}

var subscriberRows = []subscriberRow{
	{"tv_arjun", "Arjun Mehta", "arjun.mehta@gmail.com", "REF-RAVI", entities.PlanYearly, 200, entities.SubscriberStatusActive},
	{"tv_priya", "Priya Sharma", "+919812345670", "", entities.PlanMonthly, 12, entities.SubscriberStatusActive},
	{"tv_kiran", "Kiran Rao", "kiran.rao@outlook.com", "REF-NEHA", entities.PlanQuarterly, 45, entities.SubscriberStatusActive},
	{"tv_sameer", "Sameer Khan", "+919900112233", "", entities.PlanHalfYearly, 170, entities.SubscriberStatusActive},
	{"tv_ananya", "Ananya Iyer", "ananya.iyer@yahoo.in", "", entities.PlanMonthly, 40, entities.SubscriberStatusExpired},
	{"tv_vikram", "Vikram Singh", "vikram.singh@gmail.com", "REF-RAVI", entities.PlanYearly, 30, entities.SubscriberStatusSuspended},
	{"tv_neel", "Neel Patel", "+918800776655", "", entities.PlanDemo, 2, entities.SubscriberStatusActive},
	{"tv_meera", "Meera Nair", "meera.nair@gmail.com", "", entities.PlanDemo, 5, entities.SubscriberStatusActive},
	{"tv_rohit", "Rohit Verma", "rohit.verma@proton.me", "REF-NEHA", entities.PlanDemo, 10, entities.SubscriberStatusExpired},
	{"tv_sara", "Sara Thomas", "+917766554433", "", entities.PlanDemo, 1, entities.SubscriberStatusActive},
	{"tv_dev", "Dev Malhotra", "dev.malhotra@gmail.com", "", entities.PlanQuarterly, 3, entities.SubscriberStatusActive},
	{"tv_isha", "Isha Gupta", "isha.gupta@icloud.com", "", entities.PlanMonthly, 0, entities.SubscriberStatusActive},
}

type paymentRow struct {
	upi, user string
	amount    float64
	daysAgo   int
	status    entities.PaymentStatus
}

var paymentRows = []paymentRow{
	{"arjun.mehta@okhdfcbank", "Arjun Mehta", 8999, 200, entities.PaymentStatusCompleted},
	{"priya.s@ybl", "Priya Sharma", 999, 12, entities.PaymentStatusCompleted},
	{"kiranrao@okaxis", "Kiran Rao", 2699, 45, entities.PaymentStatusCompleted},
	{"sameer.k@paytm", "Sameer Khan", 4999, 170, entities.PaymentStatusCompleted},
	{"ananya.iyer@okicici", "Ananya Iyer", 999, 40, entities.PaymentStatusCompleted},
	{"vikram.s@ybl", "Vikram Singh", 8999, 30, entities.PaymentStatusFailed},
	{"vikram.s@ybl", "Vikram Singh", 8999, 29, entities.PaymentStatusCompleted},
	{"dev.m@okaxis", "Dev Malhotra", 2699, 3, entities.PaymentStatusCompleted},
	{"isha.g@paytm", "Isha Gupta", 999, 0, entities.PaymentStatusPending},
	{"priya.s@ybl", "Priya Sharma", 999, 75, entities.PaymentStatusCompleted},
}

type referralRow struct {
	referrer   string
	count      int
	commission float64
	status     entities.ReferralStatus
}

var referralRows = []referralRow{
	{"Ravi Kumar", 12, 1250, entities.ReferralStatusActive},
	{"Neha Joshi", 8, 980, entities.ReferralStatusActive},
	{"Aditya Bose", 3, 299.7, entities.ReferralStatusPending},
	{"Farah Ali", 0, 0, entities.ReferralStatusInactive},
	{"Gaurav Shah", 21, 4310.5, entities.ReferralStatusActive},
}

type indicatorRow struct {
	name, image, description string
	plan                     entities.Plan
}

var indicatorRows = []indicatorRow{
	{"Trend Rider", "https://cdn.tradedesk.in/indicators/trend-rider.png", "EMA ribbon with trend-strength shading.", entities.PlanMonthly},
	{"Volume Pulse", "https://cdn.tradedesk.in/indicators/volume-pulse.png", "Relative volume spikes with session VWAP.", entities.PlanQuarterly},
	{"Breakout Hunter", "", "Range breakout alerts with ATR based stops.", entities.PlanHalfYearly},
	{"Smart Money Zones", "https://cdn.tradedesk.in/indicators/smz.png", "Order blocks and fair value gaps.", entities.PlanYearly},
	{"RSI Divergence Pro", "", "Regular and hidden divergence detection.", entities.PlanDemo},
}

// Load inserts the demo dataset in one unit of work. It does nothing when subscribers
// already exist.
func Load(ctx context.Context, uow repositories.UnitOfWork, repos Repositories, now time.Time) (Summary, error) {
	existing, err := repos.Subscribers.List(ctx, entities.SubscriberFilter{})
	if err != nil {
		return Summary{}, fmt.Errorf("check existing data: %w", err)
	}
	if len(existing) > 0 {
		logger.Info(ctx, "Demo data already present, skipping seed", zap.Int("subscribers", len(existing)))
		return Summary{Skipped: true}, nil
	}

	var sum Summary
	err = uow.Do(ctx, func(ctx context.Context) error {
		for _, r := range subscriberRows {
			joined := now.AddDate(0, 0, -r.joinedDaysAgo)
			s := &entities.Subscriber{
				ID:            newID("USR"),
				TradingViewID: r.tv,
				Name:          r.name,
				PhoneEmail:    r.contact,
				Plan:          r.plan,
				ExpiryDate:    joined.AddDate(0, 0, r.plan.Days()),
				Status:        r.status,
				JoinedDate:    joined,
				CreatedAt:     joined,
				UpdatedAt:     joined,
			}
			if r.referral != "" {
				s.ReferralID = null.StringFrom(r.referral)
			}
			if err := repos.Subscribers.Create(ctx, s); err != nil {
				return fmt.Errorf("seed subscriber %s: %w", r.tv, err)
			}
			sum.Subscribers++
		}

		for _, r := range paymentRows {
			at := now.AddDate(0, 0, -r.daysAgo)
			p := &entities.Payment{
				ID:        newID("PAY"),
				UPIUsed:   r.upi,
				User:      r.user,
				Amount:    r.amount,
				Date:      at,
				Status:    r.status,
				CreatedAt: at,
				UpdatedAt: at,
			}
			if err := repos.Payments.Create(ctx, p); err != nil {
				return fmt.Errorf("seed payment %s: %w", r.upi, err)
			}
			sum.Payments++
		}

		for _, r := range referralRows {
			ref := &entities.Referral{
				ID:               newID("REF"),
				Referrer:         r.referrer,
				CountOfReferrals: r.count,
				CommissionEarned: r.commission,
				Status:           r.status,
				CreatedAt:        now,
				UpdatedAt:        now,
			}
			if err := repos.Referrals.Create(ctx, ref); err != nil {
				return fmt.Errorf("seed referral %s: %w", r.referrer, err)
			}
			sum.Referrals++
		}

		for _, r := range indicatorRows {
			ind := &entities.Indicator{
				ID:             newID("IND"),
				Name:           r.name,
				Description:    r.description,
				AssociatedPlan: r.plan,
				CreatedAt:      now,
				UpdatedAt:      now,
			}
			if r.image != "" {
				ind.ImagePreview = null.StringFrom(r.image)
			}
			if err := repos.Indicators.Create(ctx, ind); err != nil {
				return fmt.Errorf("seed indicator %s: %w", r.name, err)
			}
			sum.Indicators++
		}
		return nil
	})
	if err != nil {
		return Summary{}, err
	}

	logger.Info(ctx, "Seeded demo data",
		zap.Int("subscribers", sum.Subscribers),
		zap.Int("payments", sum.Payments),
		zap.Int("referrals", sum.Referrals),
		zap.Int("indicators", sum.Indicators),
	)
	return sum, nil
}
