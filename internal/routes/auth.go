package routes

import (
	"helpdesk-system/internal/controllers"
	"helpdesk-system/internal/services"
	"helpdesk-system/pkg/middleware"
	"helpdesk-system/pkg/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runAuthRouter(api *echo.Group, authService services.AuthServiceInterface, jwtSvc service.JWTService, logger *zap.Logger, authMW *middleware.AuthMiddleware) {
	authCtrl := controllers.NewAuthController(authService, jwtSvc, logger)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", authCtrl.Login)
		authGroup.POST("/register", authCtrl.Register)
		authGroup.POST("/logout", authCtrl.Logout, authMW.Auth)
	}
}
