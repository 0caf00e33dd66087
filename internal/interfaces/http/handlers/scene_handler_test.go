package handlers

import (
	"encoding/csv"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sceneBody struct {
	Columns []struct {
		Key     string `json:"key"`
		Visible bool   `json:"visible"`
	} `json:"columns"`
	Sort struct {
		Key       string `json:"key"`
		Direction string `json:"direction"`
	} `json:"sort"`
	Rows []struct {
		ID    string            `json:"id"`
		Cells map[string]string `json:"cells"`
	} `json:"rows"`
}

func seedPayments(t *testing.T, env *testEnv, token string) {
	t.Helper()
	for _, p := range []gin.H{
		{"upiUsed": "asha@okhdfc", "user": "Asha", "amount": 999, "status": "Completed", "date": "2026-01-10"},
		{"upiUsed": "ravi@ybl", "user": "Ravi", "amount": 8999, "status": "Pending", "date": "2026-01-11"},
		{"upiUsed": "neha@paytm", "user": "Neha, \"N\"", "amount": 2699, "status": "Completed", "date": "2026-01-12"},
	} {
		w := env.do(t, http.MethodPost, "/api/v1/payments", token, p)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}
}

func TestSceneHandler_ListAndQuery(t *testing.T) {
	env := newTestEnv(t)
	token := env.signUp(t, "scenes@tradedesk.io")
	seedPayments(t, env, token)

	w := env.do(t, http.MethodGet, "/api/v1/scenes", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	for _, key := range []string{"indicators", "payments", "referrals", "users", "paid-subscribers", "demo-subscribers", "daily-paid-demo", "recent-activity"} {
		assert.Contains(t, w.Body.String(), `"`+key+`"`)
	}

	w = env.do(t, http.MethodGet, "/api/v1/scenes/payments?q=ASHA", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var body sceneBody
	decode(t, w, &body)
	require.Len(t, body.Rows, 1)
	assert.Equal(t, "₹999.00", body.Rows[0].Cells["amount"])

	w = env.do(t, http.MethodGet, "/api/v1/scenes/payments?sort=amount&dir=desc", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &body)
	require.Len(t, body.Rows, 3)
	assert.Equal(t, "₹8,999.00", body.Rows[0].Cells["amount"])

	w = env.do(t, http.MethodGet, "/api/v1/scenes/payments?sort=actions", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodGet, "/api/v1/scenes/ledger", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSceneHandler_SortClicksPersist(t *testing.T) {
	env := newTestEnv(t)
	token := env.signUp(t, "sort@tradedesk.io")
	seedPayments(t, env, token)

	click := func() (string, string) {
		w := env.do(t, http.MethodPost, "/api/v1/scenes/payments/sort", token, gin.H{"key": "user"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var out struct {
			Sort struct {
				Key       string `json:"key"`
				Direction string `json:"direction"`
			} `json:"sort"`
		}
		decode(t, w, &out)
		return out.Sort.Key, out.Sort.Direction
	}

	key, dir := click()
	assert.Equal(t, "user", key)
	assert.Equal(t, "asc", dir)
	_, dir = click()
	assert.Equal(t, "desc", dir)

	w := env.do(t, http.MethodGet, "/api/v1/scenes/payments", token, nil)
	var body sceneBody
	decode(t, w, &body)
	assert.Equal(t, "desc", body.Sort.Direction)
	assert.Equal(t, "Ravi", body.Rows[0].Cells["user"])
}

func TestSceneHandler_ToggleAndExport(t *testing.T) {
	env := newTestEnv(t)
	token := env.signUp(t, "export@tradedesk.io")
	seedPayments(t, env, token)

	w := env.do(t, http.MethodPost, "/api/v1/scenes/payments/columns/actions/toggle", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, "pinned column")

	w = env.do(t, http.MethodPost, "/api/v1/scenes/payments/columns/upiUsed/toggle", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"key":"upiUsed","title":"UPI Used","visible":false`)

	w = env.do(t, http.MethodGet, "/api/v1/scenes/payments/export?format=xls&q=neha", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), `attachment; filename="payments-`)
	assert.Contains(t, w.Header().Get("Content-Disposition"), `.csv"`)

	records, err := csv.NewReader(strings.NewReader(w.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.NotContains(t, records[0], "UPI Used")
	assert.NotContains(t, records[0], "Actions")
	assert.Contains(t, records[1], `Neha, "N"`)

	w = env.do(t, http.MethodGet, "/api/v1/scenes/payments/export?format=pdf", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), `.txt"`)

	w = env.do(t, http.MethodGet, "/api/v1/scenes/payments/export?format=docx", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSceneHandler_QueryHugePage(t *testing.T) {
	env := newTestEnv(t)
	token := env.signUp(t, "paging@tradedesk.io")
	seedPayments(t, env, token)

	w := env.do(t, http.MethodGet, "/api/v1/scenes/payments?page=4294967296&limit=4294967296", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var body sceneBody
	decode(t, w, &body)
	assert.Empty(t, body.Rows)
}
