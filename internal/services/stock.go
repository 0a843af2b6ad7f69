package services

import (
	"context"

	"helpdesk-system/internal/dto"
	"helpdesk-system/internal/entities"
	"helpdesk-system/internal/repositories"

	"go.uber.org/zap"
)

type StockServiceInterface interface {
	GetDashboardStats(ctx context.Context) (*dto.DashboardStatsDTO, error)
	GetEquipments(ctx context.Context, filter dto.EquipmentFilterDTO) ([]entities.Equipment, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error)
	DeleteEquipment(ctx context.Context, id uint64) error
	GetCategories(ctx context.Context) ([]entities.Category, error)
	CreateCategory(ctx context.Context, payload dto.CreateCategoryDTO) (*entities.Category, error)
	GetAssignmentHistory(ctx context.Context) ([]entities.Assignment, error)
}

type StockService struct {
	equipmentRepo  repositories.EquipmentRepositoryInterface
	categoryRepo   repositories.CategoryRepositoryInterface
	assignmentRepo repositories.AssignmentRepositoryInterface
	dashboardRepo  repositories.DashboardRepositoryInterface
	logger         *zap.Logger
}

func NewStockService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	assignmentRepo repositories.AssignmentRepositoryInterface,
	dashboardRepo repositories.DashboardRepositoryInterface,
	logger *zap.Logger,
) StockServiceInterface {
	return &StockService{
		equipmentRepo:  equipmentRepo,
		categoryRepo:   categoryRepo,
		assignmentRepo: assignmentRepo,
		dashboardRepo:  dashboardRepo,
		logger:         logger,
	}
}

func (s *StockService) GetDashboardStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	return s.dashboardRepo.GetStats(ctx)
}

func (s *StockService) GetEquipments(ctx context.Context, filter dto.EquipmentFilterDTO) ([]entities.Equipment, error) {
	return s.equipmentRepo.GetEquipments(ctx, filter)
}

func (s *StockService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	equipment, err := s.equipmentRepo.CreateEquipment(ctx, payload)
	if err != nil {
		s.logger.Error("Ошибка при создании оборудования", zap.Error(err))
		return nil, err
	}
	s.logger.Info("Оборудование создано", zap.Uint64("id", equipment.ID), zap.String("name", equipment.Name))
	return equipment, nil
}

func (s *StockService) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	return s.equipmentRepo.UpdateEquipment(ctx, id, payload)
}

func (s *StockService) DeleteEquipment(ctx context.Context, id uint64) error {
	return s.equipmentRepo.DeactivateEquipment(ctx, id)
}

func (s *StockService) GetCategories(ctx context.Context) ([]entities.Category, error) {
	return s.categoryRepo.GetCategories(ctx)
}

func (s *StockService) CreateCategory(ctx context.Context, payload dto.CreateCategoryDTO) (*entities.Category, error) {
	category, err := s.categoryRepo.CreateCategory(ctx, payload)
	if err != nil {
		s.logger.Error("Ошибка при создании категории", zap.Error(err))
		return nil, err
	}
	return category, nil
}

func (s *StockService) GetAssignmentHistory(ctx context.Context) ([]entities.Assignment, error) {
	return s.assignmentRepo.GetAssignmentHistory(ctx)
}
