package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"helpdesk-system/internal/dto"
	"helpdesk-system/internal/repositories"
	apperrors "helpdesk-system/pkg/errors"
	"helpdesk-system/pkg/service"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

const revokedTokenKeyPrefix = "auth:revoked:"

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error)
	Register(ctx context.Context, payload dto.RegisterDTO) (*dto.ShortUserDTO, error)
	Logout(ctx context.Context, claims *service.JwtCustomClaim) error
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)
}

type AuthService struct {
	userRepo  repositories.UserRepositoryInterface
	cacheRepo repositories.CacheRepositoryInterface
	jwtSvc    service.JWTService
	logger    *zap.Logger
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	jwtSvc service.JWTService,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:  userRepo,
		cacheRepo: cacheRepo,
		jwtSvc:    jwtSvc,
		logger:    logger,
	}
}

// Login не различает "нет такого email" и "неверный пароль" - клиент
// в обоих случаях получает одно и то же сообщение.
func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, payload.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Warn("Login: пользователь не найден", zap.String("email", payload.Email))
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(payload.Password)); err != nil {
		s.logger.Warn("Login: неверный пароль", zap.Uint64("user_id", user.ID))
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtSvc.GenerateToken(user.ID, user.Role)
	if err != nil {
		s.logger.Error("Login: не удалось подписать токен", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Login: успешная аутентификация", zap.Uint64("user_id", user.ID), zap.String("role", user.Role))

	return &dto.LoginResponseDTO{
		Token: token,
		User:  dto.NewShortUserDTO(user),
	}, nil
}

func (s *AuthService) Register(ctx context.Context, payload dto.RegisterDTO) (*dto.ShortUserDTO, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.CreateUser(ctx, payload, string(hash))
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			s.logger.Warn("Register: пользователь уже существует", zap.String("email", payload.Email))
		}
		return nil, err
	}

	s.logger.Info("Register: пользователь создан", zap.Uint64("user_id", user.ID))

	shortUser := dto.NewShortUserDTO(user)
	return &shortUser, nil
}

// Logout кладёт jti токена в Redis до естественного истечения срока:
// дальше middleware такой токен не пропустит.
func (s *AuthService) Logout(ctx context.Context, claims *service.JwtCustomClaim) error {
	ttl := s.jwtSvc.GetAccessTokenTTL()
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if ttl <= 0 {
		return nil
	}

	key := fmt.Sprintf("%s%s", revokedTokenKeyPrefix, claims.ID)
	if err := s.cacheRepo.Set(ctx, key, "1", ttl); err != nil {
		s.logger.Error("Logout: не удалось отозвать токен", zap.Error(err))
		return err
	}

	s.logger.Info("Logout: токен отозван", zap.Uint64("user_id", claims.UserID))
	return nil
}

func (s *AuthService) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	return s.cacheRepo.Exists(ctx, revokedTokenKeyPrefix+jti)
}
