package usecases

import (
	"fmt"
	"sort"
	"time"

	"tradedesk.backend/internal/domain/entities"
)

// dailyPaidDemo groups subscribers by the local day they joined, newest day first.
func dailyPaidDemo(subs []*entities.Subscriber, loc *time.Location) []*entities.DailyPaidDemo {
	byDay := make(map[time.Time]*entities.DailyPaidDemo)
	for _, s := range subs {
		day := startOfDay(s.JoinedDate.In(loc))
		row, ok := byDay[day]
		if !ok {
			row = &entities.DailyPaidDemo{Date: day}
			byDay[day] = row
		}
		if s.Kind() == entities.SubscriberKindDemo {
			row.DemoUsers++
		} else {
			row.PaidUsers++
		}
		row.Total++
	}

	out := make([]*entities.DailyPaidDemo, 0, len(byDay))
	for _, row := range byDay {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

// recentActivity merges payments and sign-ups newest first. limit <= 0 keeps everything.
func recentActivity(subs []*entities.Subscriber, payments []*entities.Payment, limit int) []*entities.Activity {
	out := make([]*entities.Activity, 0, len(subs)+len(payments))
	for _, p := range payments {
		out = append(out, &entities.Activity{
			ID:     p.ID,
			Kind:   entities.ActivityPayment,
			Actor:  p.User,
			Detail: fmt.Sprintf("Paid %s via %s", formatRupees(p.Amount), p.UPIUsed),
			Status: string(p.Status),
			At:     p.Date,
		})
	}
	for _, s := range subs {
		out = append(out, &entities.Activity{
			ID:     s.ID,
			Kind:   entities.ActivitySignup,
			Actor:  s.Name,
			Detail: fmt.Sprintf("Joined on the %s plan", s.Plan),
			Status: string(s.Status),
			At:     s.JoinedDate,
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].At.After(out[j].At) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
