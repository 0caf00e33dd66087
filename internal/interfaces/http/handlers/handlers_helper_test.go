package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"tradedesk.backend/internal/infrastructure/assistant"
	"tradedesk.backend/internal/infrastructure/models"
	"tradedesk.backend/internal/infrastructure/redisstore"
	"tradedesk.backend/internal/infrastructure/repositories"
	"tradedesk.backend/internal/interfaces/http/middleware"
	"tradedesk.backend/internal/usecases"
	"tradedesk.backend/pkg/crypto"
	"tradedesk.backend/pkg/jwt"
	"tradedesk.backend/pkg/redis"
)

const testSessionKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

type stubAssistant struct {
	reply string
	err   error
}

func (s *stubAssistant) Generate(_ context.Context, _ []assistant.Turn, prompt string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.reply + prompt, nil
}

type testEnv struct {
	router    *gin.Engine
	db        *gorm.DB
	redis     *miniredis.Miniredis
	assistant *stubAssistant
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	redis.SetClient(client)
	t.Cleanup(func() {
		_ = client.Close()
		redis.SetClient(nil)
	})

	sessions, err := redis.NewSessionStore(testSessionKey)
	require.NoError(t, err)
	jwtService := jwt.NewJWTService("test-secret", time.Hour, 24*time.Hour)
	hasher := crypto.NewHasher(4)

	accountRepo := repositories.NewAccountRepository(db)
	subscriberRepo := repositories.NewSubscriberRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	referralRepo := repositories.NewReferralRepository(db)
	indicatorRepo := repositories.NewIndicatorRepository(db)
	views := redisstore.NewViewStateStore()
	confirmer := usecases.NewConfirmer(redisstore.NewConfirmationStore())
	bot := &stubAssistant{reply: "echo: "}

	authUsecase := usecases.NewAuthUsecase(accountRepo, hasher, jwtService, sessions)
	sceneUsecase := usecases.NewSceneUsecase(subscriberRepo, paymentRepo, referralRepo, indicatorRepo, views)

	authHandler := NewAuthHandler(authUsecase)
	resetHandler := NewPasswordResetHandler(usecases.NewPasswordResetUsecase(accountRepo, redisstore.NewPasswordResetStore(), hasher))
	sceneHandler := NewSceneHandler(sceneUsecase)
	subscriberHandler := NewSubscriberHandler(usecases.NewSubscriberUsecase(subscriberRepo, confirmer))
	paymentHandler := NewPaymentHandler(usecases.NewPaymentUsecase(paymentRepo, confirmer))
	dashboardHandler := NewDashboardHandler(usecases.NewDashboardUsecase(subscriberRepo, paymentRepo, referralRepo, indicatorRepo, views))
	shellHandler := NewShellHandler(usecases.NewPreferenceUsecase(accountRepo), sceneUsecase)
	assistantHandler := NewAssistantHandler(usecases.NewAssistantUsecase(bot, redisstore.NewTranscriptStore(), time.Second))

	r := gin.New()
	api := r.Group("/api/v1")
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.RefreshToken)
	api.POST("/auth/password-reset", resetHandler.Start)
	api.POST("/auth/password-reset/:id/verify", resetHandler.Verify)
	api.POST("/auth/password-reset/:id/complete", resetHandler.Complete)
	api.GET("/forms", ListForms)
	api.POST("/forms/:form/validate", ValidateForm)

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(jwtService, authUsecase))
	authed.GET("/auth/me", authHandler.Me)
	authed.POST("/auth/logout", authHandler.Logout)
	authed.GET("/scenes", sceneHandler.ListScenes)
	authed.GET("/scenes/:scene", sceneHandler.QueryScene)
	authed.POST("/scenes/:scene/sort", sceneHandler.SortScene)
	authed.POST("/scenes/:scene/columns/:key/toggle", sceneHandler.ToggleColumn)
	authed.GET("/scenes/:scene/export", sceneHandler.ExportScene)
	authed.GET("/subscribers", subscriberHandler.ListSubscribers)
	authed.POST("/subscribers", subscriberHandler.CreateSubscriber)
	authed.GET("/subscribers/:id", subscriberHandler.GetSubscriber)
	authed.PUT("/subscribers/:id", subscriberHandler.UpdateSubscriber)
	authed.POST("/subscribers/:id/delete-request", subscriberHandler.RequestDeleteSubscriber)
	authed.DELETE("/subscribers/:id", subscriberHandler.DeleteSubscriber)
	authed.POST("/payments", middleware.IdempotencyMiddleware(), paymentHandler.CreatePayment)
	authed.GET("/payments", paymentHandler.ListPayments)
	authed.GET("/dashboard", dashboardHandler.GetDashboard)
	authed.GET("/dashboard/charts/:chart", dashboardHandler.GetChart)
	authed.POST("/dashboard/charts/plan-distribution/select", dashboardHandler.SelectSegment)
	authed.GET("/preferences", shellHandler.GetPreferences)
	authed.PUT("/preferences", shellHandler.UpdatePreferences)
	authed.POST("/preferences/theme/toggle", shellHandler.ToggleTheme)
	authed.GET("/navigation", shellHandler.GetNavigation)
	authed.POST("/assistant/messages", assistantHandler.SendMessage)
	authed.GET("/assistant/messages", assistantHandler.GetTranscript)
	authed.DELETE("/assistant/messages", assistantHandler.ClearTranscript)

	return &testEnv{router: r, db: db, redis: mr, assistant: bot}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// signUp registers an account and returns its access token
func (e *testEnv) signUp(t *testing.T, email string) string {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"firstName": "Asha", "lastName": "Kapoor", "email": email,
		"password": "s3cretpass", "confirmPassword": "s3cretpass",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = e.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{"email": email, "password": "s3cretpass"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var out struct {
		AccessToken string `json:"accessToken"`
	}
	decode(t, w, &out)
	require.NotEmpty(t, out.AccessToken)
	return out.AccessToken
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) (code string, fields map[string]string) {
	t.Helper()
	var out struct {
		Code   string            `json:"code"`
		Fields map[string]string `json:"fields"`
	}
	decode(t, w, &out)
	return out.Code, out.Fields
}

var errAssistantDown = errors.New("upstream unavailable")
