package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tradedesk.backend/internal/domain/entities"
	"tradedesk.backend/internal/interfaces/http/response"
	"tradedesk.backend/internal/usecases"
)

// SceneHandler serves the table scenes: listing, sorting, column visibility and export
type SceneHandler struct {
	sceneUsecase *usecases.SceneUsecase
}

func NewSceneHandler(sceneUsecase *usecases.SceneUsecase) *SceneHandler {
	return &SceneHandler{sceneUsecase: sceneUsecase}
}

// ListScenes
// GET /api/v1/scenes
func (h *SceneHandler) ListScenes(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"items": h.sceneUsecase.Scenes()})
}

// QueryScene renders one table
// GET /api/v1/scenes/:scene?q=&sort=&dir=&page=&limit=
func (h *SceneHandler) QueryScene(c *gin.Context) {
	accountID, ok := requireAccount(c)
	if !ok {
		return
	}

	result, err := h.sceneUsecase.Query(c.Request.Context(), accountID, c.Param("scene"), usecases.SceneQuery{
		Filter: c.Query("q"),
		Sort:   c.Query("sort"),
		Dir:    c.Query("dir"),
		Page:   queryInt(c, "page"),
		Limit:  queryInt(c, "limit"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// SortScene applies a header click
// POST /api/v1/scenes/:scene/sort
func (h *SceneHandler) SortScene(c *gin.Context) {
	accountID, ok := requireAccount(c)
	if !ok {
		return
	}
	var input entities.SortInput
	if !bindJSON(c, &input) {
		return
	}

	sort, err := h.sceneUsecase.Sort(c.Request.Context(), accountID, c.Param("scene"), input.Key)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"sort": sort})
}

// ToggleColumn shows or hides a column
// POST /api/v1/scenes/:scene/columns/:key/toggle
func (h *SceneHandler) ToggleColumn(c *gin.Context) {
	accountID, ok := requireAccount(c)
	if !ok {
		return
	}

	columns, err := h.sceneUsecase.ToggleColumn(c.Request.Context(), accountID, c.Param("scene"), c.Param("key"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"columns": columns})
}

// ExportScene downloads the table as xls (CSV) or pdf (plain-text report)
// GET /api/v1/scenes/:scene/export?format=xls|pdf&q=
func (h *SceneHandler) ExportScene(c *gin.Context) {
	accountID, ok := requireAccount(c)
	if !ok {
		return
	}

	export, err := h.sceneUsecase.Export(c.Request.Context(), accountID, c.Param("scene"), c.Query("format"), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+export.FileName+`"`)
	c.Data(http.StatusOK, export.ContentType, export.Body)
}
