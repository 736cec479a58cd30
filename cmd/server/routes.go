package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"luckycat.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	authHandler    *handlers.AuthHandler
	userHandler    *handlers.UserHandler
	menuHandler    *handlers.MenuHandler
	healthHandler  *handlers.HealthHandler
	authMiddleware gin.HandlerFunc
	metricsReg     *prometheus.Registry
}

func registerRoutes(r *gin.Engine, d routeDeps) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", d.authHandler.SignUp)
		auth.POST("/sign-in", d.authHandler.SignIn)
		auth.POST("/confirm-email", d.authHandler.VerifyEmail)
		auth.POST("/resend-verification-email", d.authHandler.ResendVerificationEmail)
		auth.POST("/request-password-reset", d.authHandler.RequestPasswordReset)
		auth.POST("/set-new-password", d.authHandler.SetNewPassword)
		auth.GET("/me", d.authMiddleware, d.authHandler.Me)
	}

	user := r.Group("/user")
	user.Use(d.authMiddleware)
	{
		user.GET("", d.userHandler.Get)
		user.PATCH("/name", d.userHandler.UpdateName)
		user.PATCH("/avatar", d.userHandler.UpdateAvatar)
		user.POST("/confirm-password", d.userHandler.ConfirmPassword)
		user.PATCH("/password", d.userHandler.UpdatePassword)
		user.DELETE("", d.userHandler.Delete)
	}

	r.GET("/menu", d.menuHandler.GetMenu)
	r.GET("/health", d.healthHandler.Check)

	if d.metricsReg != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.metricsReg, promhttp.HandlerOpts{})))
	}
}
