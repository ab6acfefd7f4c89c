// routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/splitlens/analytics-backend/handlers"
)

// SetupRoutes configures all API routes for the application
func SetupRoutes(router *gin.Engine) {
	// Initialize handlers against the live database
	handlers.InitHandlers()

	router.GET("/health", handlers.Health)

	// Reporting endpoints
	analytics := router.Group("/analytics")
	{
		analytics.GET("/summary/", handlers.Summary)
		analytics.GET("/top-spenders/", handlers.TopSpenders)
		analytics.GET("/group-activity/", handlers.GroupActivity)
		analytics.GET("/unsettled-debts/", handlers.UnsettledDebts)
		analytics.GET("/groups/:groupId/balances", handlers.GroupBalances)
		analytics.GET("/export/", handlers.ExportReport)
	}

	// Read-only admin catalog
	admin := router.Group("/admin")
	{
		admin.GET("/users/", handlers.ListUsers)
		admin.GET("/groups/", handlers.ListGroups)
		admin.GET("/group-members/", handlers.ListGroupMembers)
		admin.GET("/expenses/", handlers.ListExpenses)
		admin.GET("/expense-splits/", handlers.ListExpenseSplits)
		admin.GET("/settlements/", handlers.ListSettlements)
	}
}
