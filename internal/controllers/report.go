package controllers

import (
	"fmt"
	"net/http"
	"time"

	"helpdesk-system/internal/services"
	"helpdesk-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

// ExportAssignmentHistory отдаёт журнал выдач файлом xlsx.
func (c *ReportController) ExportAssignmentHistory(ctx echo.Context) error {
	file, err := c.reportService.BuildAssignmentHistoryWorkbook(ctx.Request().Context())
	if err != nil {
		c.logger.Error("ExportAssignmentHistory: не удалось собрать отчёт", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	fileName := services.ExportFileName(time.Now().Format("2006-01-02"))

	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, fileName))
	ctx.Response().Header().Set(echo.HeaderContentType,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().WriteHeader(http.StatusOK)

	if err := file.Write(ctx.Response().Writer); err != nil {
		c.logger.Error("ExportAssignmentHistory: не удалось записать файл в ответ", zap.Error(err))
		return err
	}

	return nil
}
