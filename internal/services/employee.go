package services

import (
	"context"

	"helpdesk-system/internal/dto"
	"helpdesk-system/internal/entities"
	"helpdesk-system/internal/repositories"

	"go.uber.org/zap"
)

type EmployeeServiceInterface interface {
	GetEmployees(ctx context.Context) ([]entities.Employee, error)
	CreateEmployee(ctx context.Context, payload dto.CreateEmployeeDTO) (*entities.Employee, error)
	UpdateEmployee(ctx context.Context, id uint64, payload dto.UpdateEmployeeDTO) (*entities.Employee, error)
	DeleteEmployee(ctx context.Context, id uint64) error
	AssignEquipment(ctx context.Context, payload dto.AssignEquipmentDTO, assignedBy uint64) error
}

type EmployeeService struct {
	employeeRepo repositories.EmployeeRepositoryInterface
	logger       *zap.Logger
}

func NewEmployeeService(employeeRepo repositories.EmployeeRepositoryInterface, logger *zap.Logger) EmployeeServiceInterface {
	return &EmployeeService{employeeRepo: employeeRepo, logger: logger}
}

func (s *EmployeeService) GetEmployees(ctx context.Context) ([]entities.Employee, error) {
	return s.employeeRepo.GetEmployees(ctx)
}

func (s *EmployeeService) CreateEmployee(ctx context.Context, payload dto.CreateEmployeeDTO) (*entities.Employee, error) {
	employee, err := s.employeeRepo.CreateEmployee(ctx, payload)
	if err != nil {
		s.logger.Error("Ошибка при создании сотрудника", zap.Error(err))
		return nil, err
	}
	s.logger.Info("Сотрудник создан", zap.Uint64("id", employee.ID))
	return employee, nil
}

func (s *EmployeeService) UpdateEmployee(ctx context.Context, id uint64, payload dto.UpdateEmployeeDTO) (*entities.Employee, error) {
	return s.employeeRepo.UpdateEmployee(ctx, id, payload)
}

func (s *EmployeeService) DeleteEmployee(ctx context.Context, id uint64) error {
	return s.employeeRepo.DeactivateEmployee(ctx, id)
}

func (s *EmployeeService) AssignEquipment(ctx context.Context, payload dto.AssignEquipmentDTO, assignedBy uint64) error {
	if err := s.employeeRepo.AssignEquipment(ctx, payload, assignedBy); err != nil {
		s.logger.Warn("Выдача оборудования отклонена",
			zap.Uint64("employee_id", payload.EmployeeID),
			zap.Uint64("equipment_id", payload.EquipmentID),
			zap.Int("quantity", payload.Quantity),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("Оборудование выдано",
		zap.Uint64("employee_id", payload.EmployeeID),
		zap.Uint64("equipment_id", payload.EquipmentID),
		zap.Int("quantity", payload.Quantity),
		zap.Uint64("assigned_by", assignedBy),
	)
	return nil
}
