package entities

import "tradedesk.backend/pkg/chart"

// KPI is one summary card
type KPI struct {
	Key     string  `json:"key"`
	Title   string  `json:"title"`
	Value   float64 `json:"value"`
	Display string  `json:"display"`
}

// Dashboard is the landing scene payload
type Dashboard struct {
	KPIs             []KPI         `json:"kpis"`
	Charts           []chart.Chart `json:"charts"`
	PlanDistribution chart.PieView `json:"planDistribution"`
	RecentActivity   []*Activity   `json:"recentActivity"`
}

// PieSelectInput selects or clears a pie segment
type PieSelectInput struct {
	Segment string `json:"segment" validate:"required"`
}
