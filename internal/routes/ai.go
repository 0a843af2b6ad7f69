package routes

import (
	"helpdesk-system/internal/controllers"
	"helpdesk-system/internal/services"
	"helpdesk-system/pkg/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runAIRouter(api *echo.Group, aiService services.AIServiceInterface, logger *zap.Logger, authMW *middleware.AuthMiddleware) {
	aiCtrl := controllers.NewAIController(aiService, logger)

	aiGroup := api.Group("/ai", authMW.Auth)
	{
		aiGroup.POST("/generate-solutions/:id", aiCtrl.GenerateSolutions)
		aiGroup.POST("/preview-solutions", aiCtrl.PreviewSolutions)
		aiGroup.GET("/solutions/stats", aiCtrl.GetSolutionStats)
	}
}
