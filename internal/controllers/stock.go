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

type StockController struct {
	stockService services.StockServiceInterface
	logger       *zap.Logger
}

func NewStockController(stockService services.StockServiceInterface, logger *zap.Logger) *StockController {
	return &StockController{stockService: stockService, logger: logger}
}

func (c *StockController) GetDashboardStats(ctx echo.Context) error {
	stats, err := c.stockService.GetDashboardStats(ctx.Request().Context())
	if err != nil {
		c.logger.Error("GetDashboardStats: ошибка при сборе сводки", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, stats, "Statistiques du stock récupérées", http.StatusOK)
}

func (c *StockController) GetEquipments(ctx echo.Context) error {
	filter := dto.EquipmentFilterDTO{
		Category: ctx.QueryParam("category"),
		Search:   ctx.QueryParam("search"),
	}

	equipments, err := c.stockService.GetEquipments(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.ListResponse(ctx, equipments, "Liste des équipements récupérée", len(equipments))
}

func (c *StockController) CreateEquipment(ctx echo.Context) error {
	var payload dto.CreateEquipmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Format de la requête invalide", err, nil),
			c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	equipment, err := c.stockService.CreateEquipment(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, equipment, "Équipement créé avec succès", http.StatusCreated)
}

func (c *StockController) UpdateEquipment(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateEquipmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Format de la requête invalide", err, nil),
			c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	equipment, err := c.stockService.UpdateEquipment(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, equipment, "Équipement mis à jour avec succès", http.StatusOK)
}

func (c *StockController) DeleteEquipment(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.stockService.DeleteEquipment(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, struct{}{}, "Équipement supprimé avec succès", http.StatusOK)
}

func (c *StockController) GetCategories(ctx echo.Context) error {
	categories, err := c.stockService.GetCategories(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.ListResponse(ctx, categories, "Liste des catégories récupérée", len(categories))
}

func (c *StockController) CreateCategory(ctx echo.Context) error {
	var payload dto.CreateCategoryDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Format de la requête invalide", err, nil),
			c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	category, err := c.stockService.CreateCategory(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, category, "Catégorie créée avec succès", http.StatusCreated)
}

func (c *StockController) GetAssignmentHistory(ctx echo.Context) error {
	assignments, err := c.stockService.GetAssignmentHistory(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.ListResponse(ctx, assignments, "Historique des attributions récupéré", len(assignments))
}
