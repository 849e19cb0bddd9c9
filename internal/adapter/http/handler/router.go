package handler

import (
	"family-wallet-service/internal/adapter/http/middleware"
	redisStore "family-wallet-service/internal/adapter/storage/redis"
	"family-wallet-service/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Ledger         ports.WalletLedger
	PurchaseSvc    ports.PurchaseService
	SessionSvc     ports.PaymentSessionService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	JWTSecret      string
	JWTIssuer      string
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

	jwtAuth := middleware.JWTAuth(deps.JWTSecret, deps.JWTIssuer, deps.Logger)
	parentOnly := middleware.RequireRole(middleware.RoleParent)
	childOnly := middleware.RequireRole(middleware.RoleChild)

	walletHandler := NewWalletHandler(deps.Ledger)
	purchaseHandler := NewPurchaseHandler(deps.PurchaseSvc)
	topupHandler := NewTopupHandler(deps.SessionSvc)

	v1 := r.Group("/api/v1", jwtAuth)

	wallet := v1.Group("/wallet")
	{
		wallet.GET("/:childId/balance", rl("reads"), walletHandler.GetBalance)
		wallet.GET("/:childId/transactions", rl("reads"), walletHandler.ListTransactions)
		wallet.POST("/:childId/topup", rl("topup"), parentOnly, walletHandler.Topup)
		wallet.GET("/:childId/approval-settings", rl("reads"), parentOnly, purchaseHandler.GetSettings)
		wallet.PUT("/:childId/approval-settings", rl("decisions"), parentOnly, purchaseHandler.UpdateSettings)

		wallet.POST("/purchase-requests", rl("purchases"), childOnly, purchaseHandler.CreatePurchaseRequest)
		wallet.GET("/purchase-requests", rl("reads"), purchaseHandler.ListPurchaseRequests)
		wallet.POST("/purchase-requests/:id/approve", rl("decisions"), parentOnly, purchaseHandler.ApprovePurchaseRequest)
		wallet.POST("/purchase-requests/:id/reject", rl("decisions"), parentOnly, purchaseHandler.RejectPurchaseRequest)
	}

	mpesa := v1.Group("/mpesa")
	{
		mpesa.POST("/stk-push", rl("topup"), topupHandler.InitiateTopup)
		mpesa.GET("/status/:checkoutRequestId", rl("reads"), topupHandler.GetTopupStatus)
	}

	return r
}
