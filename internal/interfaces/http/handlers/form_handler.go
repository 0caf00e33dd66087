package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"tradedesk.backend/internal/interfaces/http/response"
	"tradedesk.backend/internal/usecases"
)

type validateFormRequest struct {
	Field  string          `json:"field"`
	Values json.RawMessage `json:"values"`
}

// ListForms
// GET /api/v1/forms
func ListForms(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"items": usecases.FormNames()})
}

// ValidateForm checks a whole form, or one field of it on change
// POST /api/v1/forms/:form/validate
func ValidateForm(c *gin.Context) {
	var req validateFormRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := usecases.ValidateForm(c.Param("form"), req.Field, req.Values)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}
