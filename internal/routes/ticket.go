package routes

import (
	"helpdesk-system/internal/controllers"
	"helpdesk-system/internal/services"
	"helpdesk-system/pkg/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runTicketRouter(api *echo.Group, ticketService services.TicketServiceInterface, logger *zap.Logger, authMW *middleware.AuthMiddleware) {
	ticketCtrl := controllers.NewTicketController(ticketService, logger)

	ticketGroup := api.Group("/tickets", authMW.Auth)
	{
		ticketGroup.GET("", ticketCtrl.GetTickets)
		ticketGroup.GET("/:id", ticketCtrl.FindTicket)
		ticketGroup.POST("", ticketCtrl.CreateTicket)
		ticketGroup.PUT("/:id", ticketCtrl.UpdateTicket)
		ticketGroup.DELETE("/:id", ticketCtrl.DeleteTicket)
		ticketGroup.PUT("/:id/solutions", ticketCtrl.AddSolutions)
	}
}
