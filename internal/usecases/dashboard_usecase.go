package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"tradedesk.backend/internal/domain/entities"
	domainerrors "tradedesk.backend/internal/domain/errors"
	"tradedesk.backend/internal/domain/repositories"
	"tradedesk.backend/pkg/chart"
	"tradedesk.backend/pkg/logger"
)

// Chart ids
const (
	ChartRevenueTrend     = "revenue-trend"
	ChartDailySignups     = "daily-signups"
	ChartPaymentVolume    = "payment-volume"
	ChartPlanDistribution = "plan-distribution"
)

// DashboardScene is the view-state key holding the pie selection
const DashboardScene = "dashboard"

var subscriberStatuses = []entities.SubscriberStatus{
	entities.SubscriberStatusActive,
	entities.SubscriberStatusExpired,
	entities.SubscriberStatusSuspended,
}

// DashboardUsecase builds KPI cards and chart data from the stored records
type DashboardUsecase struct {
	subscribers repositories.SubscriberRepository
	payments    repositories.PaymentRepository
	referrals   repositories.ReferralRepository
	indicators  repositories.IndicatorRepository
	views       repositories.ViewStateStore
}

func NewDashboardUsecase(
	subscribers repositories.SubscriberRepository,
	payments repositories.PaymentRepository,
	referrals repositories.ReferralRepository,
	indicators repositories.IndicatorRepository,
	views repositories.ViewStateStore,
) *DashboardUsecase {
	return &DashboardUsecase{
		subscribers: subscribers,
		payments:    payments,
		referrals:   referrals,
		indicators:  indicators,
		views:       views,
	}
}

type snapshot struct {
	now         time.Time
	subscribers []*entities.Subscriber
	payments    []*entities.Payment
	referrals   []*entities.Referral
	indicators  []*entities.Indicator
}

func (u *DashboardUsecase) snapshot(ctx context.Context) (*snapshot, error) {
	snap := &snapshot{now: timeNow()}
	var err error
	if snap.subscribers, err = u.subscribers.List(ctx, entities.SubscriberFilter{}); err != nil {
		return nil, err
	}
	for _, s := range snap.subscribers {
		s.Refresh(snap.now)
	}
	if snap.payments, err = u.payments.List(ctx); err != nil {
		return nil, err
	}
	if snap.referrals, err = u.referrals.List(ctx); err != nil {
		return nil, err
	}
	if snap.indicators, err = u.indicators.List(ctx); err != nil {
		return nil, err
	}
	return snap, nil
}

// Get returns the whole landing scene for an account
func (u *DashboardUsecase) Get(ctx context.Context, accountID uuid.UUID) (*entities.Dashboard, error) {
	snap, err := u.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	charts := make([]chart.Chart, 0, 3)
	for _, build := range []func(*snapshot) (chart.Chart, error){revenueTrend, dailySignups, paymentVolume} {
		c, err := build(snap)
		if err != nil {
			return nil, err
		}
		charts = append(charts, c)
	}

	pie, err := u.pieView(ctx, accountID, planDistribution(snap))
	if err != nil {
		return nil, err
	}

	return &entities.Dashboard{
		KPIs:             kpis(snap),
		Charts:           charts,
		PlanDistribution: pie,
		RecentActivity:   recentActivity(snap.subscribers, snap.payments, RecentActivitySize),
	}, nil
}

// Chart returns one chart by id. The plan distribution comes back as a PieView.
func (u *DashboardUsecase) Chart(ctx context.Context, accountID uuid.UUID, id string) (any, error) {
	snap, err := u.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	switch id {
	case ChartRevenueTrend:
		return revenueTrend(snap)
	case ChartDailySignups:
		return dailySignups(snap)
	case ChartPaymentVolume:
		return paymentVolume(snap)
	case ChartPlanDistribution:
		return u.pieView(ctx, accountID, planDistribution(snap))
	}
	return nil, domainerrors.NotFound("Unknown chart: " + id)
}

// SelectSegment toggles the drill-down of the plan distribution pie. Selecting the
// selected segment clears it.
func (u *DashboardUsecase) SelectSegment(ctx context.Context, accountID uuid.UUID, input *entities.PieSelectInput) (chart.PieView, error) {
	if err := validateInput(input); err != nil {
		return chart.PieView{}, err
	}
	snap, err := u.snapshot(ctx)
	if err != nil {
		return chart.PieView{}, err
	}
	pie := planDistribution(snap)
	if !pie.Has(input.Segment) {
		return chart.PieView{}, domainerrors.BadRequest("Unknown segment: " + input.Segment)
	}

	state := u.loadState(ctx, accountID)
	sel := chart.PieSelection{Segment: state.Selection}.Toggle(input.Segment)
	state.Selection = sel.Segment
	if err := u.views.Save(ctx, accountID, DashboardScene, state); err != nil {
		return chart.PieView{}, err
	}
	return pie.View(sel)
}

func (u *DashboardUsecase) loadState(ctx context.Context, accountID uuid.UUID) *entities.ViewState {
	state, err := u.views.Get(ctx, accountID, DashboardScene)
	if err != nil || state == nil {
		if err != nil {
			logger.Warn(ctx, "dashboard view state unavailable", zap.Error(err))
		}
		return &entities.ViewState{}
	}
	return state
}

func (u *DashboardUsecase) pieView(ctx context.Context, accountID uuid.UUID, pie chart.Pie) (chart.PieView, error) {
	sel := chart.PieSelection{Segment: u.loadState(ctx, accountID).Selection}
	if sel.Segment != "" && !pie.Has(sel.Segment) {
		sel = chart.PieSelection{}
	}
	return pie.View(sel)
}

func kpis(snap *snapshot) []entities.KPI {
	var paid, demo, active, expiring int
	for _, s := range snap.subscribers {
		if s.Kind() == entities.SubscriberKindDemo {
			demo++
		} else {
			paid++
		}
		if s.Status == entities.SubscriberStatusActive {
			active++
			if !s.ExpiryDate.Before(startOfDay(snap.now)) && s.RemainingDays <= ExpiringSoonDays {
				expiring++
			}
		}
	}

	var revenue float64
	var pending int
	for _, p := range snap.payments {
		switch p.Status {
		case entities.PaymentStatusCompleted:
			revenue += p.Amount
		case entities.PaymentStatusPending:
			pending++
		}
	}

	var referred int
	var commission float64
	for _, r := range snap.referrals {
		referred += r.CountOfReferrals
		commission += r.CommissionEarned
	}

	count := func(key, title string, n int) entities.KPI {
		return entities.KPI{Key: key, Title: title, Value: float64(n), Display: formatCount(int64(n))}
	}
	money := func(key, title string, v float64) entities.KPI {
		return entities.KPI{Key: key, Title: title, Value: v, Display: formatRupees(v)}
	}
	return []entities.KPI{
		count("total-users", "Total Users", len(snap.subscribers)),
		count("paid-subscribers", "Paid Subscribers", paid),
		count("demo-subscribers", "Demo Subscribers", demo),
		count("active-subscriptions", "Active Subscriptions", active),
		money("revenue", "Revenue", revenue),
		count("pending-payments", "Pending Payments", pending),
		count("total-referrals", "Total Referrals", referred),
		money("commission-earned", "Commission Earned", commission),
		count("indicators", "Indicators", len(snap.indicators)),
		count("expiring-soon", "Expiring in 7 Days", expiring),
	}
}

// revenueTrend sums completed payments per calendar month, oldest first.
func revenueTrend(snap *snapshot) (chart.Chart, error) {
	loc := snap.now.Location()
	first := startOfMonth(snap.now).AddDate(0, -(RevenueTrendMonths - 1), 0)

	labels := make([]string, RevenueTrendMonths)
	values := make([]float64, RevenueTrendMonths)
	for i := range labels {
		labels[i] = first.AddDate(0, i, 0).Format("Jan 2006")
	}
	for _, p := range snap.payments {
		if p.Status != entities.PaymentStatusCompleted {
			continue
		}
		m := startOfMonth(p.Date.In(loc))
		i := (m.Year()-first.Year())*12 + int(m.Month()-first.Month())
		if i >= 0 && i < RevenueTrendMonths {
			values[i] += p.Amount
		}
	}

	series, err := chart.NewSeries("Revenue", labels, values)
	if err != nil {
		return chart.Chart{}, err
	}
	return chart.Chart{ID: ChartRevenueTrend, Title: "Revenue Trend", Kind: chart.KindArea, Series: []chart.Series{series}}, nil
}

// dayBuckets returns the labels of the last n days ending today and a lookup from a
// time to its bucket.
func dayBuckets(now time.Time, n int) ([]string, func(time.Time) int) {
	first := startOfDay(now).AddDate(0, 0, -(n - 1))
	labels := make([]string, n)
	for i := range labels {
		labels[i] = first.AddDate(0, 0, i).Format(DateLayout)
	}
	index := func(t time.Time) int {
		day := startOfDay(t.In(now.Location()))
		for i := range labels {
			if first.AddDate(0, 0, i).Equal(day) {
				return i
			}
		}
		return -1
	}
	return labels, index
}

func dailySignups(snap *snapshot) (chart.Chart, error) {
	labels, index := dayBuckets(snap.now, DailySignupsDays)
	paid := make([]float64, len(labels))
	demo := make([]float64, len(labels))
	for _, s := range snap.subscribers {
		i := index(s.JoinedDate)
		if i < 0 {
			continue
		}
		if s.Kind() == entities.SubscriberKindDemo {
			demo[i]++
		} else {
			paid[i]++
		}
	}

	paidSeries, err := chart.NewSeries("Paid", labels, paid)
	if err != nil {
		return chart.Chart{}, err
	}
	demoSeries, err := chart.NewSeries("Demo", labels, demo)
	if err != nil {
		return chart.Chart{}, err
	}
	return chart.Chart{ID: ChartDailySignups, Title: "Daily Sign-ups", Kind: chart.KindBar, Series: []chart.Series{paidSeries, demoSeries}}, nil
}

func paymentVolume(snap *snapshot) (chart.Chart, error) {
	labels, index := dayBuckets(snap.now, PaymentVolumeDays)
	counts := make([]float64, len(labels))
	for _, p := range snap.payments {
		if i := index(p.Date); i >= 0 {
			counts[i]++
		}
	}

	series, err := chart.NewSeries("Payments", labels, counts)
	if err != nil {
		return chart.Chart{}, err
	}
	return chart.Chart{ID: ChartPaymentVolume, Title: "Payment Volume", Kind: chart.KindLine, Series: []chart.Series{series}}, nil
}

// planDistribution counts subscribers per plan, with a status breakdown per plan.
// Statuses with no subscribers are left out of the breakdown.
func planDistribution(snap *snapshot) chart.Pie {
	byPlan := make(map[entities.Plan]map[entities.SubscriberStatus]int, len(entities.Plans))
	for _, s := range snap.subscribers {
		if byPlan[s.Plan] == nil {
			byPlan[s.Plan] = make(map[entities.SubscriberStatus]int)
		}
		byPlan[s.Plan][s.Status]++
	}

	segments := make([]chart.Segment, 0, len(entities.Plans))
	for _, plan := range entities.Plans {
		seg := chart.Segment{Label: string(plan)}
		for _, status := range subscriberStatuses {
			n := byPlan[plan][status]
			if n == 0 {
				continue
			}
			seg.Value += float64(n)
			seg.Breakdown = append(seg.Breakdown, chart.Slice{Label: string(status), Value: float64(n)})
		}
		segments = append(segments, seg)
	}
	return chart.Pie{ID: ChartPlanDistribution, Title: "Plan Distribution", Segments: segments}
}
