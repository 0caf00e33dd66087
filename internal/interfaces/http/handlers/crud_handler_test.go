package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriberHandler_CRUDWithConfirmedDelete(t *testing.T) {
	env := newTestEnv(t)
	token := env.signUp(t, "crud@tradedesk.io")

	w := env.do(t, http.MethodPost, "/api/v1/subscribers", token, gin.H{
		"tradingViewId": "tv_asha", "name": "Asha", "phoneEmail": "+919812345670",
		"plan": "Monthly", "expiryDate": "2099-01-01",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		ID     string `json:"userId"`
		Status string `json:"status"`
	}
	decode(t, w, &created)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Active", created.Status)

	w = env.do(t, http.MethodGet, "/api/v1/subscribers?kind=paid", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), created.ID)

	w = env.do(t, http.MethodGet, "/api/v1/subscribers?kind=gold", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPut, "/api/v1/subscribers/"+created.ID, token, gin.H{
		"tradingViewId": "tv_asha", "name": "Asha K", "phoneEmail": "asha@example.com",
		"plan": "Yearly", "expiryDate": "2099-06-01", "status": "Suspended",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"status":"Suspended"`)

	w = env.do(t, http.MethodDelete, "/api/v1/subscribers/"+created.ID, token, nil)
	require.Equal(t, http.StatusPreconditionRequired, w.Code)

	w = env.do(t, http.MethodPost, "/api/v1/subscribers/"+created.ID+"/delete-request", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var confirmation struct {
		Token  string `json:"token"`
		Prompt string `json:"prompt"`
	}
	decode(t, w, &confirmation)
	require.NotEmpty(t, confirmation.Token)
	assert.Contains(t, confirmation.Prompt, "Are you sure")

	w = env.do(t, http.MethodDelete, "/api/v1/subscribers/"+created.ID, token, nil, ConfirmTokenHeader, "wrong")
	require.Equal(t, http.StatusPreconditionRequired, w.Code)

	// any attempt consumes the token
	w = env.do(t, http.MethodDelete, "/api/v1/subscribers/"+created.ID, token, nil, ConfirmTokenHeader, confirmation.Token)
	require.Equal(t, http.StatusPreconditionRequired, w.Code)

	w = env.do(t, http.MethodPost, "/api/v1/subscribers/"+created.ID+"/delete-request", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &confirmation)
	w = env.do(t, http.MethodDelete, "/api/v1/subscribers/"+created.ID, token, nil, ConfirmTokenHeader, confirmation.Token)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/v1/subscribers/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubscriberHandler_ValidationReportsEveryField(t *testing.T) {
	env := newTestEnv(t)
	token := env.signUp(t, "v@tradedesk.io")

	w := env.do(t, http.MethodPost, "/api/v1/subscribers", token, gin.H{
		"phoneEmail": "not-a-contact", "plan": "Gold", "expiryDate": "2000-01-01",
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	_, fields := errorBody(t, w)
	assert.Equal(t, "Enter a valid email or phone number.", fields["phoneEmail"])
	assert.Equal(t, "Expiry date cannot be in the past.", fields["expiryDate"])
	assert.Contains(t, fields, "tradingViewId")
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "plan")
}

func TestPaymentHandler_IdempotentCreate(t *testing.T) {
	env := newTestEnv(t)
	token := env.signUp(t, "pay@tradedesk.io")
	body := gin.H{"upiUsed": "asha@okhdfc", "user": "Asha", "amount": 999, "status": "Completed"}

	first := env.do(t, http.MethodPost, "/api/v1/payments", token, body, "Idempotency-Key", "pay-1")
	require.Equal(t, http.StatusCreated, first.Code, first.Body.String())
	second := env.do(t, http.MethodPost, "/api/v1/payments", token, body, "Idempotency-Key", "pay-1")
	require.Equal(t, http.StatusCreated, second.Code)
	assert.JSONEq(t, first.Body.String(), second.Body.String())

	w := env.do(t, http.MethodGet, "/api/v1/payments", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Items []map[string]any `json:"items"`
	}
	decode(t, w, &list)
	assert.Len(t, list.Items, 1)

	w = env.do(t, http.MethodPost, "/api/v1/payments", token, gin.H{"upiUsed": "bad", "user": "Asha", "amount": 0, "status": "Completed"})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	_, fields := errorBody(t, w)
	assert.Equal(t, "Enter a valid UPI ID (name@bank).", fields["upiUsed"])
	assert.Contains(t, fields, "amount")
}
