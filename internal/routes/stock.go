package routes

import (
	"helpdesk-system/internal/controllers"
	"helpdesk-system/internal/services"
	"helpdesk-system/pkg/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Чтение склада доступно любому аутентифицированному пользователю,
// мутации и выгрузка отчёта - только админу.
func runStockRouter(api *echo.Group, stockService services.StockServiceInterface, reportService services.ReportServiceInterface, logger *zap.Logger, authMW *middleware.AuthMiddleware) {
	stockCtrl := controllers.NewStockController(stockService, logger)
	reportCtrl := controllers.NewReportController(reportService, logger)

	stockGroup := api.Group("/stock", authMW.Auth)
	{
		stockGroup.GET("/dashboard", stockCtrl.GetDashboardStats)
		stockGroup.GET("/equipment", stockCtrl.GetEquipments)
		stockGroup.POST("/equipment", stockCtrl.CreateEquipment, authMW.RequireAdmin)
		stockGroup.PUT("/equipment/:id", stockCtrl.UpdateEquipment, authMW.RequireAdmin)
		stockGroup.DELETE("/equipment/:id", stockCtrl.DeleteEquipment, authMW.RequireAdmin)
		stockGroup.GET("/categories", stockCtrl.GetCategories)
		stockGroup.POST("/categories", stockCtrl.CreateCategory, authMW.RequireAdmin)
		stockGroup.GET("/assignments/history", stockCtrl.GetAssignmentHistory)
		stockGroup.GET("/assignments/history/export", reportCtrl.ExportAssignmentHistory, authMW.RequireAdmin)
	}
}
