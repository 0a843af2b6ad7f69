package controllers

import (
	"net/http"

	"helpdesk-system/internal/dto"
	"helpdesk-system/internal/services"
	apperrors "helpdesk-system/pkg/errors"
	"helpdesk-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AIController struct {
	aiService services.AIServiceInterface
	logger    *zap.Logger
}

func NewAIController(aiService services.AIServiceInterface, logger *zap.Logger) *AIController {
	return &AIController{aiService: aiService, logger: logger}
}

// GenerateSolutions генерирует решения для тикета-поломки и сохраняет их.
func (c *AIController) GenerateSolutions(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.aiService.GenerateForTicket(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Solutions générées avec succès", http.StatusOK)
}

// PreviewSolutions генерирует решения по произвольному описанию,
// ничего не сохраняя.
func (c *AIController) PreviewSolutions(ctx echo.Context) error {
	var payload dto.PreviewSolutionsDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Format de la requête invalide", err, nil),
			c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	solutions := c.aiService.GenerateSolutions(ctx.Request().Context(), payload.Description, payload.Title)

	return utils.ListResponse(ctx, solutions, "Solutions générées", len(solutions))
}

func (c *AIController) GetSolutionStats(ctx echo.Context) error {
	stats, err := c.aiService.GetSolutionStats(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, stats, "Statistiques des solutions récupérées", http.StatusOK)
}
