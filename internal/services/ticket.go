package services

import (
	"context"
	"net/http"

	"helpdesk-system/internal/dto"
	"helpdesk-system/internal/entities"
	"helpdesk-system/internal/repositories"
	apperrors "helpdesk-system/pkg/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TicketServiceInterface interface {
	GetTickets(ctx context.Context, filter dto.TicketFilterDTO) ([]entities.Ticket, error)
	FindTicket(ctx context.Context, id uint64) (*entities.Ticket, error)
	CreateTicket(ctx context.Context, payload dto.CreateTicketDTO) (*entities.Ticket, error)
	UpdateTicket(ctx context.Context, id uint64, payload dto.UpdateTicketDTO) (*entities.Ticket, error)
	DeleteTicket(ctx context.Context, id uint64) error
	AddSolutions(ctx context.Context, ticketID uint64, payload dto.AddSolutionsDTO) (*entities.Ticket, error)
}

type TicketService struct {
	ticketRepo repositories.TicketRepositoryInterface
	logger     *zap.Logger
}

func NewTicketService(ticketRepo repositories.TicketRepositoryInterface, logger *zap.Logger) TicketServiceInterface {
	return &TicketService{ticketRepo: ticketRepo, logger: logger}
}

func (s *TicketService) GetTickets(ctx context.Context, filter dto.TicketFilterDTO) ([]entities.Ticket, error) {
	return s.ticketRepo.GetTickets(ctx, filter)
}

func (s *TicketService) FindTicket(ctx context.Context, id uint64) (*entities.Ticket, error) {
	return s.ticketRepo.FindTicket(ctx, id)
}

func (s *TicketService) CreateTicket(ctx context.Context, payload dto.CreateTicketDTO) (*entities.Ticket, error) {
	// Деталь запроса оборудования имеет смысл только для типа equipement.
	if payload.Type == entities.TicketTypeEquipement && payload.Equipment == nil {
		return nil, apperrors.NewHttpError(
			http.StatusBadRequest,
			"Les détails de la demande d'équipement sont requis",
			nil,
			nil,
		)
	}
	if payload.Type == entities.TicketTypePanne {
		payload.Equipment = nil
	}

	ticket, err := s.ticketRepo.CreateTicket(ctx, payload)
	if err != nil {
		s.logger.Error("Ошибка при создании тикета", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Тикет создан",
		zap.Uint64("id", ticket.ID),
		zap.String("type", ticket.Type),
		zap.String("priority", ticket.Priority),
	)
	return ticket, nil
}

func (s *TicketService) UpdateTicket(ctx context.Context, id uint64, payload dto.UpdateTicketDTO) (*entities.Ticket, error) {
	return s.ticketRepo.UpdateTicket(ctx, id, payload)
}

func (s *TicketService) DeleteTicket(ctx context.Context, id uint64) error {
	return s.ticketRepo.DeleteTicket(ctx, id)
}

// AddSolutions дописывает пачку решений к тикету: каждому выдаётся свежий id,
// confidence зажимается в [0,100].
func (s *TicketService) AddSolutions(ctx context.Context, ticketID uint64, payload dto.AddSolutionsDTO) (*entities.Ticket, error) {
	solutions := make([]entities.Solution, 0, len(payload.Solutions))
	for _, input := range payload.Solutions {
		solutions = append(solutions, entities.Solution{
			ID:            uuid.NewString(),
			Title:         input.Solution,
			Confidence:    clampConfidence(float64(input.Confidence)),
			EstimatedTime: input.EstimatedTime,
			Steps:         input.Steps,
		})
	}

	if err := s.ticketRepo.AppendSolutions(ctx, ticketID, solutions); err != nil {
		return nil, err
	}

	return s.ticketRepo.FindTicket(ctx, ticketID)
}
