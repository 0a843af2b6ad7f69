package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	apperrors "helpdesk-system/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// HTTPResponse - единый конверт всех ответов API.
type HTTPResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
	Count   *int        `json:"count,omitempty"`
}

// Коды для доменных sentinel-ошибок. Всё остальное падает в 500.
var errorStatusCodes = map[error]int{
	apperrors.ErrNotFound:             http.StatusNotFound,
	apperrors.ErrInsufficientStock:    http.StatusBadRequest,
	apperrors.ErrConflict:             http.StatusBadRequest,
	apperrors.ErrInvalidCredentials:   http.StatusUnauthorized,
	apperrors.ErrEmptyAuthHeader:      http.StatusUnauthorized,
	apperrors.ErrInvalidAuthHeader:    http.StatusUnauthorized,
	apperrors.ErrInvalidToken:         http.StatusUnauthorized,
	apperrors.ErrTokenExpired:         http.StatusUnauthorized,
	apperrors.ErrTokenRevoked:         http.StatusUnauthorized,
	apperrors.ErrInvalidSigningMethod: http.StatusUnauthorized,
	apperrors.ErrForbidden:            http.StatusForbidden,
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int) error {
	return ctx.JSON(code, &HTTPResponse{
		Status:  true,
		Body:    body,
		Message: message,
	})
}

// ListResponse - как SuccessResponse, но с count, как того ждёт фронт для списков.
func ListResponse(ctx echo.Context, body interface{}, message string, count int) error {
	return ctx.JSON(http.StatusOK, &HTTPResponse{
		Status:  true,
		Body:    body,
		Message: message,
		Count:   &count,
	})
}

func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("HTTP Error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
				zap.Any("context", httpErr.Context),
			)
		}
		return c.JSON(httpErr.Code, &HTTPResponse{Status: false, Message: httpErr.Message})
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var msgs []string
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("le champ '%s' ne respecte pas la règle '%s'", e.Field(), e.Tag()))
		}
		return c.JSON(http.StatusBadRequest, &HTTPResponse{
			Status:  false,
			Message: "Erreur de validation: " + strings.Join(msgs, "; "),
		})
	}

	for sentinel, statusCode := range errorStatusCodes {
		if errors.Is(err, sentinel) {
			return c.JSON(statusCode, &HTTPResponse{Status: false, Message: sentinel.Error()})
		}
	}

	logger.Error("Unexpected Error", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, &HTTPResponse{
		Status:  false,
		Message: "Erreur interne du serveur",
	})
}
