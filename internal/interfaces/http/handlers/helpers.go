package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerrors "tradedesk.backend/internal/domain/errors"
	"tradedesk.backend/internal/interfaces/http/middleware"
	"tradedesk.backend/internal/interfaces/http/response"
)

// ConfirmTokenHeader carries the token issued by a delete-request
const ConfirmTokenHeader = "X-Confirm-Token"

// requireAccount returns the signed-in account id, writing 401 when it is missing
func requireAccount(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetAccountID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON decodes the body into v, writing 400 on failure. Field rules are checked by
// the usecases so every failing field is reported at once.
func bindJSON(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return false
	}
	return true
}

func queryInt(c *gin.Context, key string) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return n
}
