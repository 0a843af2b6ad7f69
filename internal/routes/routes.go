package routes

import (
	"net/http"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"helpdesk-system/internal/repositories"
	"helpdesk-system/internal/services"
	"helpdesk-system/pkg/aiclient"
	"helpdesk-system/pkg/config"
	"helpdesk-system/pkg/middleware"
	"helpdesk-system/pkg/service"
)

// InitRouter собирает весь граф зависимостей: репозитории -> сервисы ->
// контроллеры -> маршруты.
func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, logger *zap.Logger, cfg *config.Config) {
	logger.Info("InitRouter: начало создания маршрутов")

	api := e.Group("/api")

	txManager := repositories.NewTxManager(dbConn)

	// --- РЕПОЗИТОРИИ ---
	userRepo := repositories.NewUserRepository(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)
	ticketRepo := repositories.NewTicketRepository(dbConn, txManager)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn)
	categoryRepo := repositories.NewCategoryRepository(dbConn)
	employeeRepo := repositories.NewEmployeeRepository(dbConn, txManager)
	assignmentRepo := repositories.NewAssignmentRepository(dbConn)
	dashboardRepo := repositories.NewDashboardRepository(dbConn)

	// --- СЕРВИСЫ ---
	authService := services.NewAuthService(userRepo, cacheRepo, jwtSvc, logger)
	ticketService := services.NewTicketService(ticketRepo, logger)
	aiService := services.NewAIService(aiclient.NewClient(cfg.AI), ticketRepo, cacheRepo, logger)
	stockService := services.NewStockService(equipmentRepo, categoryRepo, assignmentRepo, dashboardRepo, logger)
	employeeService := services.NewEmployeeService(employeeRepo, logger)
	reportService := services.NewReportService(assignmentRepo)

	authMW := middleware.NewAuthMiddleware(jwtSvc, userRepo, authService, logger)

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	runAuthRouter(api, authService, jwtSvc, logger, authMW)
	runTicketRouter(api, ticketService, logger, authMW)
	runAIRouter(api, aiService, logger, authMW)
	runStockRouter(api, stockService, reportService, logger, authMW)
	runEmployeeRouter(api, employeeService, logger, authMW)

	logger.Info("InitRouter: создание маршрутов завершено")
}
