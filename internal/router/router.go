// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/truvalue/truvalue-backend/internal/config"
	"github.com/truvalue/truvalue-backend/internal/handlers"
	"github.com/truvalue/truvalue-backend/internal/middleware"
	"github.com/truvalue/truvalue-backend/internal/services"
	"github.com/truvalue/truvalue-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	storageService, _ := services.NewStorageService(cfg)
	mailService := services.NewMailService(cfg)
	anchorService := services.NewAnchorService(cfg)

	authService := services.NewAuthService(db, cfg, mailService)
	assetService := services.NewAssetService(db, anchorService)
	documentService := services.NewDocumentService(db, storageService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	assetHandler := handlers.NewAssetHandler(assetService)
	documentHandler := handlers.NewDocumentHandler(documentService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Build the rate-limit tiers before any route captures them
	middleware.ConfigureRateLimits(cfg.RateLimit)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())
	r.Use(middleware.AuditLogMiddleware(db))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"version":   "1.0.0",
			"anchoring": anchorService.Enabled(),
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", middleware.AuthRequired(), authHandler.Logout)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.POST("/confirm-email", authHandler.ConfirmEmail)
			auth.POST("/resend-confirmation", authHandler.ResendConfirmation)
			auth.POST("/forgot-password", authHandler.ForgotPassword)
			auth.POST("/reset-password", authHandler.ResetPassword)
		}

		// Profile routes
		profile := v1.Group("/profile")
		profile.Use(middleware.AuthRequired())
		{
			profile.GET("", authHandler.GetProfile)
			profile.PUT("", authHandler.UpdateProfile)
			profile.POST("/change-password", authHandler.ChangePassword)
		}

		// Asset routes
		assets := v1.Group("/assets")
		assets.Use(middleware.AuthRequired())
		{
			assets.GET("", assetHandler.GetAssets)
			assets.POST("", assetHandler.CreateAsset)
			assets.POST("/batch-mint", middleware.AnchorRateLimit(), assetHandler.BatchMintAssets)
			assets.GET("/:id", assetHandler.GetAsset)
			assets.PUT("/:id", assetHandler.UpdateAsset)
			assets.DELETE("/:id", assetHandler.DeleteAsset)
			assets.PATCH("/:id/verify", middleware.AnchorRateLimit(), assetHandler.VerifyAsset)
			assets.POST("/:id/mint", middleware.AnchorRateLimit(), assetHandler.MintAsset)
			assets.PUT("/:id/favorite", assetHandler.SetFavorite)

			// Document sub-resource
			assets.GET("/:id/documents", documentHandler.GetDocuments)
			assets.POST("/:id/documents", middleware.UploadRateLimit(), documentHandler.UploadDocument)
			assets.GET("/:id/documents/:docID/download", documentHandler.DownloadDocument)
			assets.DELETE("/:id/documents/:docID", documentHandler.DeleteDocument)
		}

		// Dashboard
		v1.GET("/dashboard", middleware.AuthRequired(), assetHandler.GetDashboard)
	}

	// Static file serving (for development)
	if cfg.Environment == "development" {
		r.Static("/uploads", cfg.Server.UploadsDir)
	}

	return r
}
