package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spacos/spac-os-api/internal/auth"
	"github.com/spacos/spac-os-api/internal/database"
	"github.com/spacos/spac-os-api/internal/services"
	"github.com/spacos/spac-os-api/pkg/config"
)

// SetupRoutes configures all API routes
func SetupRoutes(r *gin.Engine, db *sql.DB, cfg *config.Config) error {
	dbWrapper := &database.DB{DB: db}

	svc := services.NewServices(db, cfg)

	authHandler := NewAuthHandler(svc.Auth)
	orgHandler := NewOrganizationHandler(svc.Organization)
	spacHandler := NewSPACHandler(svc.SPAC)
	targetHandler := NewTargetHandler(svc.Target)
	filingHandler := NewFilingHandler(svc.Filing)
	complianceHandler := NewComplianceHandler(svc.Compliance)
	trustHandler := NewTrustHandler(svc.Trust)
	dashboardHandler := NewDashboardHandler(svc.Dashboard)

	// Public routes
	public := r.Group("/api/v1")
	{
		public.POST("/auth/login", authHandler.Login)
		public.POST("/auth/register", authHandler.Register)
		public.POST("/auth/refresh", authHandler.RefreshToken)
		public.POST("/auth/logout", authHandler.Logout)

		public.GET("/health", func(c *gin.Context) {
			if err := dbWrapper.HealthCheck(); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status":    "unhealthy",
					"error":     err.Error(),
					"timestamp": time.Now(),
				})
				return
			}
			c.JSON(http.StatusOK, gin.H{
				"status":    "healthy",
				"timestamp": time.Now(),
			})
		})
	}

	// Protected routes
	protected := r.Group("/api/v1")
	protected.Use(auth.JWTMiddleware(cfg.JWTSecret))
	protected.Use(auth.CSRFMiddleware())
	{
		// Organization endpoints
		protected.GET("/organizations", orgHandler.GetOrganizations)
		protected.GET("/organizations/:id", orgHandler.GetOrganization)
		protected.POST("/organizations", orgHandler.CreateOrganization)
		protected.PUT("/organizations/:id", orgHandler.UpdateOrganization)
		protected.DELETE("/organizations/:id", orgHandler.DeleteOrganization)

		// SPAC lifecycle endpoints
		protected.GET("/spacs", spacHandler.GetSPACs)
		protected.GET("/spacs/:id", spacHandler.GetSPAC)
		protected.GET("/tickers/:ticker", spacHandler.GetSPACByTicker)
		protected.POST("/spacs", spacHandler.CreateSPAC)
		protected.PUT("/spacs/:id", spacHandler.UpdateSPAC)
		protected.DELETE("/spacs/:id", spacHandler.DeleteSPAC)
		protected.PUT("/spacs/:id/status", spacHandler.UpdateSPACStatus)

		// Cap table endpoints
		protected.GET("/spacs/:id/captable", spacHandler.GetCapTable)
		protected.PUT("/spacs/:id/captable", spacHandler.UpsertCapTableEntry)
		protected.DELETE("/spacs/:id/captable/:entry_id", spacHandler.DeleteCapTableEntry)

		// Compliance endpoints
		protected.GET("/spacs/:id/compliance", complianceHandler.GetComplianceItems)
		protected.POST("/spacs/:id/compliance", complianceHandler.CreateComplianceItem)
		protected.PUT("/compliance/items/:item_id", complianceHandler.UpdateComplianceItem)
		protected.DELETE("/compliance/items/:item_id", complianceHandler.DeleteComplianceItem)
		protected.POST("/compliance/items/:item_id/complete", complianceHandler.CompleteComplianceItem)
		protected.GET("/compliance/upcoming", complianceHandler.GetUpcomingCompliance)

		// Trust account endpoints
		protected.GET("/spacs/:id/trust", trustHandler.GetTrustAccount)
		protected.POST("/spacs/:id/trust", trustHandler.CreateTrustAccount)
		protected.GET("/spacs/:id/trust/transactions", trustHandler.GetTrustTransactions)
		protected.POST("/spacs/:id/trust/transactions", trustHandler.RecordTrustTransaction)

		// Target endpoints
		protected.GET("/targets", targetHandler.GetTargets)
		protected.GET("/targets/:id", targetHandler.GetTarget)
		protected.POST("/targets", targetHandler.CreateTarget)
		protected.PUT("/targets/:id", targetHandler.UpdateTarget)
		protected.DELETE("/targets/:id", targetHandler.DeleteTarget)

		// Fit scoring endpoints
		protected.POST("/targets/:id/fitscore", targetHandler.CalculateFit)
		protected.GET("/targets/:id/fitscores", targetHandler.GetFitScores)

		// Filing workflow endpoints
		protected.GET("/filings", filingHandler.GetFilings)
		protected.GET("/filings/:id", filingHandler.GetFiling)
		protected.POST("/filings", filingHandler.CreateFiling)
		protected.PUT("/filings/:id", filingHandler.UpdateFiling)
		protected.DELETE("/filings/:id", filingHandler.DeleteFiling)
		protected.PUT("/filings/:id/status", filingHandler.UpdateFilingStatus)
		protected.POST("/spacs/:id/filings/sync", filingHandler.SyncFilings)

		// Dashboard
		protected.GET("/dashboard", dashboardHandler.GetSummary)
	}

	return nil
}
