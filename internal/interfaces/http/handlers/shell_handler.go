package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tradedesk.backend/internal/domain/entities"
	"tradedesk.backend/internal/interfaces/http/response"
	"tradedesk.backend/internal/usecases"
)

// ShellHandler serves the layout around the scenes: theme and sidebar
type ShellHandler struct {
	preferenceUsecase *usecases.PreferenceUsecase
	sceneUsecase      *usecases.SceneUsecase
}

func NewShellHandler(preferenceUsecase *usecases.PreferenceUsecase, sceneUsecase *usecases.SceneUsecase) *ShellHandler {
	return &ShellHandler{preferenceUsecase: preferenceUsecase, sceneUsecase: sceneUsecase}
}

// GetPreferences
// GET /api/v1/preferences
func (h *ShellHandler) GetPreferences(c *gin.Context) {
	accountID, ok := requireAccount(c)
	if !ok {
		return
	}

	prefs, err := h.preferenceUsecase.Get(c.Request.Context(), accountID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, prefs)
}

// UpdatePreferences
// PUT /api/v1/preferences
func (h *ShellHandler) UpdatePreferences(c *gin.Context) {
	accountID, ok := requireAccount(c)
	if !ok {
		return
	}
	var input entities.PreferenceInput
	if !bindJSON(c, &input) {
		return
	}

	prefs, err := h.preferenceUsecase.Update(c.Request.Context(), accountID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, prefs)
}

// ToggleTheme flips dark and light
// POST /api/v1/preferences/theme/toggle
func (h *ShellHandler) ToggleTheme(c *gin.Context) {
	accountID, ok := requireAccount(c)
	if !ok {
		return
	}

	prefs, err := h.preferenceUsecase.ToggleTheme(c.Request.Context(), accountID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, prefs)
}

// GetNavigation lists the sidebar entries
// GET /api/v1/navigation
func (h *ShellHandler) GetNavigation(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"items": usecases.Navigation(h.sceneUsecase.Scenes())})
}
