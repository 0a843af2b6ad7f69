package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"helpdesk-system/internal/dto"
	"helpdesk-system/internal/entities"
	apperrors "helpdesk-system/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const ticketFields = `id, title, description, type, status, priority, assigned_to,
	equipment_type, equipment_quantity, equipment_urgency, equipment_justification,
	created_at, updated_at`

type SolutionConfidence struct {
	TicketID   uint64
	Confidence int
}

type TicketRepositoryInterface interface {
	GetTickets(ctx context.Context, filter dto.TicketFilterDTO) ([]entities.Ticket, error)
	FindTicket(ctx context.Context, id uint64) (*entities.Ticket, error)
	CreateTicket(ctx context.Context, payload dto.CreateTicketDTO) (*entities.Ticket, error)
	UpdateTicket(ctx context.Context, id uint64, payload dto.UpdateTicketDTO) (*entities.Ticket, error)
	DeleteTicket(ctx context.Context, id uint64) error
	AppendSolutions(ctx context.Context, ticketID uint64, solutions []entities.Solution) error
	ReplaceSolutions(ctx context.Context, ticketID uint64, solutions []entities.Solution) error
	ListPanneSolutionConfidences(ctx context.Context) ([]SolutionConfidence, error)
}

type TicketRepository struct {
	storage   *pgxpool.Pool
	txManager TxManagerInterface
}

func NewTicketRepository(storage *pgxpool.Pool, txManager TxManagerInterface) TicketRepositoryInterface {
	return &TicketRepository{storage: storage, txManager: txManager}
}

// buildListQuery собирает запрос списка. Значение "all" (или пустое)
// отключает соответствующий фильтр; search ищет по title+description без
// учёта регистра.
func buildListQuery(filter dto.TicketFilterDTO) sq.SelectBuilder {
	builder := psql.
		Select(strings.ReplaceAll(ticketFields, "\n\t", " ")).
		From("tickets").
		OrderBy("created_at DESC")

	if filter.Status != "" && filter.Status != "all" {
		builder = builder.Where(sq.Eq{"status": filter.Status})
	}
	if filter.Type != "" && filter.Type != "all" {
		builder = builder.Where(sq.Eq{"type": filter.Type})
	}
	if filter.Priority != "" && filter.Priority != "all" {
		builder = builder.Where(sq.Eq{"priority": filter.Priority})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"description": pattern},
		})
	}

	return builder
}

func scanTicket(row pgx.Row) (*entities.Ticket, error) {
	var t entities.Ticket
	var eqType, eqUrgency, eqJustification null.String
	var eqQuantity null.Int64

	err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&t.Type,
		&t.Status,
		&t.Priority,
		&t.AssignedTo,
		&eqType,
		&eqQuantity,
		&eqUrgency,
		&eqJustification,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if eqType.Valid {
		t.Equipment = &entities.EquipmentRequest{
			EquipmentType: eqType.String,
			Quantity:      int(eqQuantity.Int64),
			Urgency:       eqUrgency.String,
			Justification: eqJustification.String,
		}
	}
	t.Solutions = make([]entities.Solution, 0)

	return &t, nil
}

func (r *TicketRepository) GetTickets(ctx context.Context, filter dto.TicketFilterDTO) ([]entities.Ticket, error) {
	query, args, err := buildListQuery(filter).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]entities.Ticket, 0)
	ids := make([]uint64, 0)
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, *t)
		ids = append(ids, t.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachSolutions(ctx, tickets, ids); err != nil {
		return nil, err
	}

	return tickets, nil
}

// attachSolutions одним запросом подгружает решения для пачки тикетов.
func (r *TicketRepository) attachSolutions(ctx context.Context, tickets []entities.Ticket, ids []uint64) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := psql.
		Select("id, ticket_id, title, confidence, steps, estimated_time, created_at").
		From("solutions").
		Where(sq.Eq{"ticket_id": ids}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	byTicket := make(map[uint64][]entities.Solution, len(ids))
	for rows.Next() {
		s, err := scanSolution(rows)
		if err != nil {
			return err
		}
		byTicket[s.TicketID] = append(byTicket[s.TicketID], *s)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range tickets {
		if list, ok := byTicket[tickets[i].ID]; ok {
			tickets[i].Solutions = list
		}
	}
	return nil
}

func scanSolution(row pgx.Row) (*entities.Solution, error) {
	var s entities.Solution
	var stepsRaw []byte

	err := row.Scan(&s.ID, &s.TicketID, &s.Title, &s.Confidence, &stepsRaw, &s.EstimatedTime, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(stepsRaw, &s.Steps); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *TicketRepository) FindTicket(ctx context.Context, id uint64) (*entities.Ticket, error) {
	query := `SELECT ` + ticketFields + ` FROM tickets WHERE id = $1`
	ticket, err := scanTicket(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}

	tickets := []entities.Ticket{*ticket}
	if err := r.attachSolutions(ctx, tickets, []uint64{id}); err != nil {
		return nil, err
	}
	return &tickets[0], nil
}

func (r *TicketRepository) CreateTicket(ctx context.Context, payload dto.CreateTicketDTO) (*entities.Ticket, error) {
	priority := payload.Priority
	if priority == "" {
		priority = entities.TicketPriorityNormale
	}

	var eqType, eqUrgency, eqJustification *string
	var eqQuantity *int
	if payload.Equipment != nil {
		eqType = &payload.Equipment.EquipmentType
		eqQuantity = &payload.Equipment.Quantity
		eqUrgency = &payload.Equipment.Urgency
		eqJustification = &payload.Equipment.Justification
	}

	query := `
		INSERT INTO tickets (title, description, type, status, priority, assigned_to,
			equipment_type, equipment_quantity, equipment_urgency, equipment_justification)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + ticketFields

	return scanTicket(r.storage.QueryRow(ctx, query,
		payload.Title,
		payload.Description,
		payload.Type,
		entities.TicketStatusNouveau,
		priority,
		payload.AssignedTo,
		eqType,
		eqQuantity,
		eqUrgency,
		eqJustification,
	))
}

func (r *TicketRepository) UpdateTicket(ctx context.Context, id uint64, payload dto.UpdateTicketDTO) (*entities.Ticket, error) {
	builder := psql.Update("tickets").Set("updated_at", sq.Expr("CURRENT_TIMESTAMP"))

	if payload.Title != nil {
		builder = builder.Set("title", *payload.Title)
	}
	if payload.Description != nil {
		builder = builder.Set("description", *payload.Description)
	}
	if payload.Status != nil {
		builder = builder.Set("status", *payload.Status)
	}
	if payload.Priority != nil {
		builder = builder.Set("priority", *payload.Priority)
	}
	if payload.AssignedTo != nil {
		builder = builder.Set("assigned_to", *payload.AssignedTo)
	}
	if payload.Equipment != nil {
		builder = builder.
			Set("equipment_type", payload.Equipment.EquipmentType).
			Set("equipment_quantity", payload.Equipment.Quantity).
			Set("equipment_urgency", payload.Equipment.Urgency).
			Set("equipment_justification", payload.Equipment.Justification)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + ticketFields).
		ToSql()
	if err != nil {
		return nil, err
	}

	ticket, err := scanTicket(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, err
	}

	tickets := []entities.Ticket{*ticket}
	if err := r.attachSolutions(ctx, tickets, []uint64{id}); err != nil {
		return nil, err
	}
	return &tickets[0], nil
}

// DeleteTicket удаляет тикет жёстко; решения уходят каскадом.
// Оборудование и сотрудники, в отличие от тикетов, только деактивируются.
func (r *TicketRepository) DeleteTicket(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM tickets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func insertSolutions(ctx context.Context, tx pgx.Tx, ticketID uint64, solutions []entities.Solution) error {
	for _, s := range solutions {
		stepsRaw, err := json.Marshal(s.Steps)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO solutions (id, ticket_id, title, confidence, steps, estimated_time)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			s.ID, ticketID, s.Title, s.Confidence, stepsRaw, s.EstimatedTime,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *TicketRepository) ensureTicketExists(ctx context.Context, tx pgx.Tx, ticketID uint64) error {
	var exists bool
	err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM tickets WHERE id = $1)`, ticketID).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *TicketRepository) AppendSolutions(ctx context.Context, ticketID uint64, solutions []entities.Solution) error {
	return r.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if err := r.ensureTicketExists(ctx, tx, ticketID); err != nil {
			return err
		}
		return insertSolutions(ctx, tx, ticketID, solutions)
	})
}

// ReplaceSolutions - для генерации: старый список целиком заменяется новым,
// как это делает исходный endpoint generate-solutions.
func (r *TicketRepository) ReplaceSolutions(ctx context.Context, ticketID uint64, solutions []entities.Solution) error {
	return r.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if err := r.ensureTicketExists(ctx, tx, ticketID); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM solutions WHERE ticket_id = $1`, ticketID); err != nil {
			return err
		}
		return insertSolutions(ctx, tx, ticketID, solutions)
	})
}

func (r *TicketRepository) ListPanneSolutionConfidences(ctx context.Context) ([]SolutionConfidence, error) {
	query, args, err := psql.
		Select("s.ticket_id", "s.confidence").
		From("solutions s").
		Join("tickets t ON t.id = s.ticket_id").
		Where(sq.Eq{"t.type": entities.TicketTypePanne}).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SolutionConfidence, 0)
	for rows.Next() {
		var sc SolutionConfidence
		if err := rows.Scan(&sc.TicketID, &sc.Confidence); err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}
