package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tradedesk.backend/internal/domain/entities"
	"tradedesk.backend/internal/interfaces/http/response"
	"tradedesk.backend/internal/usecases"
)

// DashboardHandler serves KPI cards and charts
type DashboardHandler struct {
	dashboardUsecase *usecases.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase *usecases.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase}
}

// GetDashboard
// GET /api/v1/dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	accountID, ok := requireAccount(c)
	if !ok {
		return
	}

	dashboard, err := h.dashboardUsecase.Get(c.Request.Context(), accountID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, dashboard)
}

// GetChart
// GET /api/v1/dashboard/charts/:chart
func (h *DashboardHandler) GetChart(c *gin.Context) {
	accountID, ok := requireAccount(c)
	if !ok {
		return
	}

	chart, err := h.dashboardUsecase.Chart(c.Request.Context(), accountID, c.Param("chart"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, chart)
}

// SelectSegment toggles the drill-down of the plan distribution pie
// POST /api/v1/dashboard/charts/plan-distribution/select
func (h *DashboardHandler) SelectSegment(c *gin.Context) {
	accountID, ok := requireAccount(c)
	if !ok {
		return
	}
	var input entities.PieSelectInput
	if !bindJSON(c, &input) {
		return
	}

	view, err := h.dashboardUsecase.SelectSegment(c.Request.Context(), accountID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}
