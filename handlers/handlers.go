// handlers/handlers.go
package handlers

import (
	"github.com/splitlens/analytics-backend/repository"
	"github.com/splitlens/analytics-backend/services"
)

// HandlerServices contains all service dependencies
type HandlerServices struct {
	AnalyticsService *services.AnalyticsService
	BalanceService   *services.BalanceService
	CatalogService   *services.CatalogService
	ExportService    *services.ExportService
}

// NewHandlerServices wires the services to the live database repositories
func NewHandlerServices() *HandlerServices {
	db := repository.GetDB()
	analyticsService := services.NewAnalyticsService(repository.NewAnalyticsRepository(db))
	return &HandlerServices{
		AnalyticsService: analyticsService,
		BalanceService:   services.NewBalanceService(repository.NewBalanceRepository(db)),
		CatalogService:   services.NewCatalogService(repository.NewCatalogRepository(db)),
		ExportService:    services.NewExportService(analyticsService),
	}
}

var handlerServices *HandlerServices

// InitHandlers initializes the handler services
func InitHandlers() {
	handlerServices = NewHandlerServices()
}
