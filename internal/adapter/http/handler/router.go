package handler

import (
	"secure-payment-gateway/internal/adapter/http/middleware"
	redisStore "secure-payment-gateway/internal/adapter/storage/redis"
	"secure-payment-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	PaymentSvc     ports.PaymentService
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	requireAuth := middleware.RequireAuth(deps.AuthSvc, deps.TokenSvc, deps.Logger)

	v1 := r.Group("/v1")

	// --- Merchant API (pk_/sk_ API key or dashboard JWT) ---
	paymentHandler := NewPaymentHandler(deps.PaymentSvc)
	payments := v1.Group("/payments", requireAuth)
	{
		payments.POST("", rl("payments"), paymentHandler.CreatePayment)
		payments.GET("", rl("payments_list"), paymentHandler.ListPayments)
		payments.GET("/:ref", rl("payments"), paymentHandler.GetPayment)
		payments.POST("/:ref/refund", rl("payments_refund"), paymentHandler.RefundPayment)
	}

	// --- Provider callbacks (unauthenticated, rate-limit-exempt) ---
	webhookHandler := NewWebhookHandler(deps.PaymentSvc)
	webhooks := v1.Group("/webhooks")
	{
		webhooks.POST("/moncash", webhookHandler.MonCash)
		webhooks.POST("/natcash", webhookHandler.NatCash)
		webhooks.POST("/stripe", webhookHandler.Stripe)
	}

	// --- Public hosted checkout read ---
	v1.GET("/checkout/:ref", webhookHandler.Checkout)

	return r
}
