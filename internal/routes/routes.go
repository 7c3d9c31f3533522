package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"invoice-dashboard-backend/internal/actions"
	"invoice-dashboard-backend/internal/auth"
	"invoice-dashboard-backend/internal/cache"
	handler "invoice-dashboard-backend/internal/handlers"
	"invoice-dashboard-backend/internal/repository"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	invoiceRepo := repository.NewInvoiceRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	pathCache := cache.NewPathCache()
	provider := auth.NewCredentialsProvider(userRepo, sessionRepo)

	invoiceActions := actions.NewInvoiceActions(invoiceRepo, auditRepo, pathCache)
	authActions := actions.NewAuthActions(provider)

	invoiceHandler := handler.NewInvoiceHandler(invoiceActions, invoiceRepo, customerRepo, pathCache)
	authHandler := handler.NewAuthHandler(authActions)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	api.GET("/customers", invoiceHandler.Customers)

	// Invoice form actions
	dashboard := r.Group("/dashboard")
	{
		dashboard.GET("/invoices", invoiceHandler.List)
		dashboard.POST("/invoices", invoiceHandler.Create)
		dashboard.PUT("/invoices/:id", invoiceHandler.Update)
		dashboard.DELETE("/invoices/:id", invoiceHandler.Delete)
	}

	r.POST("/login", authHandler.Login)
}
