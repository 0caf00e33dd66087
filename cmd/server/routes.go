package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"tradedesk.backend/internal/interfaces/http/handlers"
	"tradedesk.backend/internal/interfaces/http/middleware"
)

const (
	serviceName    = "tradedesk-backend"
	serviceVersion = "0.1.0"
)

type routeDeps struct {
	authHandler          *handlers.AuthHandler
	passwordResetHandler *handlers.PasswordResetHandler
	sceneHandler         *handlers.SceneHandler
	subscriberHandler    *handlers.SubscriberHandler
	paymentHandler       *handlers.PaymentHandler
	referralHandler      *handlers.ReferralHandler
	indicatorHandler     *handlers.IndicatorHandler
	dashboardHandler     *handlers.DashboardHandler
	shellHandler         *handlers.ShellHandler
	assistantHandler     *handlers.AssistantHandler
	authMiddleware       gin.HandlerFunc
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
			c.Header("Access-Control-Allow-Credentials", "true")
		}
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Session-ID, X-Request-ID, X-Confirm-Token, Idempotency-Key")
		c.Header("Access-Control-Expose-Headers", "Content-Disposition, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": serviceName,
			"version": serviceVersion,
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.RefreshToken)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
			auth.POST("/logout", d.authMiddleware, d.authHandler.Logout)

			auth.POST("/password-reset", d.passwordResetHandler.Start)
			auth.POST("/password-reset/:id/verify", d.passwordResetHandler.Verify)
			auth.POST("/password-reset/:id/complete", d.passwordResetHandler.Complete)
		}

		// Form checks back validate-on-change, including on the sign-up form
		v1.GET("/forms", handlers.ListForms)
		v1.POST("/forms/:form/validate", handlers.ValidateForm)

		protected := v1.Group("")
		protected.Use(d.authMiddleware)

		protected.GET("/navigation", d.shellHandler.GetNavigation)
		protected.GET("/preferences", d.shellHandler.GetPreferences)
		protected.PUT("/preferences", d.shellHandler.UpdatePreferences)
		protected.POST("/preferences/theme/toggle", d.shellHandler.ToggleTheme)

		dashboard := protected.Group("/dashboard")
		{
			dashboard.GET("", d.dashboardHandler.GetDashboard)
			dashboard.GET("/charts/:chart", d.dashboardHandler.GetChart)
			dashboard.POST("/charts/plan-distribution/select", d.dashboardHandler.SelectSegment)
		}

		scenes := protected.Group("/scenes")
		{
			scenes.GET("", d.sceneHandler.ListScenes)
			scenes.GET("/:scene", d.sceneHandler.QueryScene)
			scenes.POST("/:scene/sort", d.sceneHandler.SortScene)
			scenes.POST("/:scene/columns/:key/toggle", d.sceneHandler.ToggleColumn)
			scenes.GET("/:scene/export", d.sceneHandler.ExportScene)
		}

		subscribers := protected.Group("/subscribers")
		{
			subscribers.GET("", d.subscriberHandler.ListSubscribers)
			subscribers.POST("", middleware.IdempotencyMiddleware(), d.subscriberHandler.CreateSubscriber)
			subscribers.GET("/:id", d.subscriberHandler.GetSubscriber)
			subscribers.PUT("/:id", d.subscriberHandler.UpdateSubscriber)
			subscribers.POST("/:id/delete-request", d.subscriberHandler.RequestDeleteSubscriber)
			subscribers.DELETE("/:id", d.subscriberHandler.DeleteSubscriber)
		}

		payments := protected.Group("/payments")
		{
			payments.GET("", d.paymentHandler.ListPayments)
			payments.POST("", middleware.IdempotencyMiddleware(), d.paymentHandler.CreatePayment)
			payments.GET("/:id", d.paymentHandler.GetPayment)
			payments.PUT("/:id", d.paymentHandler.UpdatePayment)
			payments.POST("/:id/delete-request", d.paymentHandler.RequestDeletePayment)
			payments.DELETE("/:id", d.paymentHandler.DeletePayment)
		}

		referrals := protected.Group("/referrals")
		{
			referrals.GET("", d.referralHandler.ListReferrals)
			referrals.POST("", d.referralHandler.CreateReferral)
			referrals.GET("/:id", d.referralHandler.GetReferral)
			referrals.PUT("/:id", d.referralHandler.UpdateReferral)
			referrals.POST("/:id/delete-request", d.referralHandler.RequestDeleteReferral)
			referrals.DELETE("/:id", d.referralHandler.DeleteReferral)
		}

		indicators := protected.Group("/indicators")
		{
			indicators.GET("", d.indicatorHandler.ListIndicators)
			indicators.POST("", d.indicatorHandler.CreateIndicator)
			indicators.GET("/:id", d.indicatorHandler.GetIndicator)
			indicators.PUT("/:id", d.indicatorHandler.UpdateIndicator)
			indicators.POST("/:id/delete-request", d.indicatorHandler.RequestDeleteIndicator)
			indicators.DELETE("/:id", d.indicatorHandler.DeleteIndicator)
		}

		assistant := protected.Group("/assistant")
		{
			assistant.GET("/messages", d.assistantHandler.GetTranscript)
			assistant.POST("/messages", d.assistantHandler.SendMessage)
			assistant.DELETE("/messages", d.assistantHandler.ClearTranscript)
		}
	}
}
