package routes

import (
	"helpdesk-system/internal/controllers"
	"helpdesk-system/internal/services"
	"helpdesk-system/pkg/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runEmployeeRouter(api *echo.Group, employeeService services.EmployeeServiceInterface, logger *zap.Logger, authMW *middleware.AuthMiddleware) {
	employeeCtrl := controllers.NewEmployeeController(employeeService, logger)

	employeeGroup := api.Group("/employees", authMW.Auth, authMW.RequireAdmin)
	{
		employeeGroup.GET("", employeeCtrl.GetEmployees)
		employeeGroup.POST("", employeeCtrl.CreateEmployee)
		employeeGroup.PUT("/:id", employeeCtrl.UpdateEmployee)
		employeeGroup.DELETE("/:id", employeeCtrl.DeleteEmployee)
		employeeGroup.POST("/assign", employeeCtrl.AssignEquipment)
	}
}
