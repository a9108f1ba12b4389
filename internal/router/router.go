package router

import (
	"github.com/gin-gonic/gin"

	"anexos/internal/config"
	"anexos/internal/handler"
	"anexos/internal/middleware"
	"anexos/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	authSvc service.AuthService,
	authH *handler.AuthHandler,
	wizardH *handler.WizardHandler,
	documentH *handler.DocumentHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Public access gate
	auth := v1.Group("/auth")
	auth.POST("/access", authH.Access)

	// Protected routes - require the access-gate JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	sessions := protected.Group("/sessions")
	sessions.POST("", wizardH.Create)
	sessions.GET("/:id", wizardH.Get)
	sessions.PUT("/:id/data", wizardH.UpdateData)
	sessions.POST("/:id/next", wizardH.Next)
	sessions.POST("/:id/back", wizardH.Back)
	sessions.POST("/:id/jump", wizardH.Jump)
	sessions.POST("/:id/submit", wizardH.Submit)

	sessions.GET("/:id/document", documentH.Preview)
	sessions.GET("/:id/document/pdf", documentH.PDF)
	sessions.GET("/:id/document/print", documentH.Print)
	sessions.GET("/:id/document/xlsx", documentH.XLSX)

	return r
}
