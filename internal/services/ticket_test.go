package services

import (
	"context"
	"testing"

	"helpdesk-system/internal/dto"
	"helpdesk-system/internal/entities"
	apperrors "helpdesk-system/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingTicketRepo struct {
	stubTicketRepo
	createdPayload *dto.CreateTicketDTO
}

func (r *recordingTicketRepo) CreateTicket(ctx context.Context, payload dto.CreateTicketDTO) (*entities.Ticket, error) {
	r.createdPayload = &payload
	return &entities.Ticket{ID: 1, Type: payload.Type, Priority: payload.Priority}, nil
}

func TestCreateTicket_EquipementRequiresDetail(t *testing.T) {
	repo := &recordingTicketRepo{}
	svc := NewTicketService(repo, zap.NewNop())

	_, err := svc.CreateTicket(context.Background(), dto.CreateTicketDTO{
		Title:       "Besoin d'un écran",
		Description: "Pour le nouveau poste",
		Type:        entities.TicketTypeEquipement,
		Priority:    entities.TicketPriorityNormale,
	})

	require.Error(t, err)
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)
	assert.Nil(t, repo.createdPayload)
}

func TestCreateTicket_PanneDropsEquipmentDetail(t *testing.T) {
	repo := &recordingTicketRepo{}
	svc := NewTicketService(repo, zap.NewNop())

	_, err := svc.CreateTicket(context.Background(), dto.CreateTicketDTO{
		Title:       "Écran noir",
		Description: "Rien ne s'affiche",
		Type:        entities.TicketTypePanne,
		Priority:    entities.TicketPriorityHaute,
		Equipment: &dto.EquipmentRequestDTO{
			EquipmentType: "écran",
			Quantity:      1,
			Urgency:       "normale",
			Justification: "poste en panne",
		},
	})

	require.NoError(t, err)
	require.NotNil(t, repo.createdPayload)
	assert.Nil(t, repo.createdPayload.Equipment)
}

func TestAddSolutions_AssignsIDsAndClamps(t *testing.T) {
	repo := &stubTicketRepo{ticket: &entities.Ticket{ID: 3, Type: entities.TicketTypePanne}}
	svc := NewTicketService(repo, zap.NewNop())

	_, err := svc.AddSolutions(context.Background(), 3, dto.AddSolutionsDTO{
		Solutions: []dto.SolutionInputDTO{
			{Solution: "Changer le câble", Confidence: 150, EstimatedTime: "5 minutes", Steps: []string{"Débrancher", "Rebrancher"}},
			{Solution: "Tester un autre écran", Confidence: -10, EstimatedTime: "10 minutes", Steps: []string{"Brancher l'écran de test"}},
		},
	})

	require.NoError(t, err)
	require.Len(t, repo.appended, 2)
	assert.Equal(t, uint64(3), repo.appendTicket)
	assert.NotEmpty(t, repo.appended[0].ID)
	assert.NotEmpty(t, repo.appended[1].ID)
	assert.NotEqual(t, repo.appended[0].ID, repo.appended[1].ID)
	assert.Equal(t, 100, repo.appended[0].Confidence)
	assert.Equal(t, 0, repo.appended[1].Confidence)
}
