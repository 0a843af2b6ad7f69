package middleware

import (
	"context"
	"strings"

	"helpdesk-system/pkg/contextkeys"
	apperrors "helpdesk-system/pkg/errors"
	"helpdesk-system/pkg/service"
	"helpdesk-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// UserVerifier - повторная проверка пользователя при каждом запросе:
// токен может пережить удаление или деактивацию аккаунта.
type UserVerifier interface {
	IsUserActive(ctx context.Context, id uint64) (bool, error)
}

// RevocationStore - серверный отзыв токенов (logout до истечения срока).
type RevocationStore interface {
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)
}

type AuthMiddleware struct {
	jwtService  service.JWTService
	users       UserVerifier
	revocations RevocationStore
	logger      *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, users UserVerifier, revocations RevocationStore, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtSvc,
		users:       users,
		revocations: revocations,
		logger:      logger,
	}
}

func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			m.logger.Warn("AuthMiddleware: пустой заголовок Authorization")
			return utils.ErrorResponse(c, apperrors.ErrEmptyAuthHeader, m.logger)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			m.logger.Warn("AuthMiddleware: неверный формат заголовка Authorization")
			return utils.ErrorResponse(c, apperrors.ErrInvalidAuthHeader, m.logger)
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			m.logger.Warn("AuthMiddleware: ошибка валидации токена", zap.Error(err))
			return utils.ErrorResponse(c, err, m.logger)
		}

		ctx := c.Request().Context()

		revoked, err := m.revocations.IsTokenRevoked(ctx, claims.ID)
		if err != nil {
			m.logger.Error("AuthMiddleware: не удалось проверить отзыв токена", zap.Error(err))
			return utils.ErrorResponse(c, err, m.logger)
		}
		if revoked {
			m.logger.Warn("AuthMiddleware: попытка доступа с отозванным токеном", zap.Uint64("userID", claims.UserID))
			return utils.ErrorResponse(c, apperrors.ErrTokenRevoked, m.logger)
		}

		active, err := m.users.IsUserActive(ctx, claims.UserID)
		if err != nil {
			return utils.ErrorResponse(c, err, m.logger)
		}
		if !active {
			m.logger.Warn("AuthMiddleware: пользователь не существует или деактивирован", zap.Uint64("userID", claims.UserID))
			return utils.ErrorResponse(c, apperrors.ErrInvalidToken, m.logger)
		}

		newCtx := context.WithValue(ctx, contextkeys.UserIDKey, claims.UserID)
		newCtx = context.WithValue(newCtx, contextkeys.UserRoleKey, claims.Role)
		c.SetRequest(c.Request().WithContext(newCtx))

		return next(c)
	}
}

// RequireAdmin навешивается после Auth на админские маршруты.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, err := utils.GetUserRoleFromCtx(c.Request().Context())
		if err != nil {
			return utils.ErrorResponse(c, err, m.logger)
		}
		if role != "admin" {
			m.logger.Warn("RequireAdmin: доступ запрещён", zap.String("role", role))
			return utils.ErrorResponse(c, apperrors.ErrForbidden, m.logger)
		}
		return next(c)
	}
}
