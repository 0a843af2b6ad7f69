package repositories

import (
	"context"
	"errors"
	"strconv"

	"helpdesk-system/internal/dto"
	"helpdesk-system/internal/entities"
	apperrors "helpdesk-system/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultCriticalLevel = 10

const equipmentJoinedFields = `e.id, e.name, e.category_id, e.current_stock, e.critical_level,
	e.unit, e.description, e.is_active, e.created_at, e.updated_at,
	c.id, c.name, c.description, c.is_active, c.created_at, c.updated_at`

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context, filter dto.EquipmentFilterDTO) ([]entities.Equipment, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error)
	DeactivateEquipment(ctx context.Context, id uint64) error
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage}
}

func scanEquipmentWithCategory(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	var c entities.Category

	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.CategoryID,
		&e.CurrentStock,
		&e.CriticalLevel,
		&e.Unit,
		&e.Description,
		&e.IsActive,
		&e.CreatedAt,
		&e.UpdatedAt,
		&c.ID,
		&c.Name,
		&c.Description,
		&c.IsActive,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	e.Category = &c
	return &e, nil
}

func (r *EquipmentRepository) GetEquipments(ctx context.Context, filter dto.EquipmentFilterDTO) ([]entities.Equipment, error) {
	builder := psql.
		Select(equipmentJoinedFields).
		From("equipments e").
		Join("categories c ON c.id = e.category_id").
		Where(sq.Eq{"e.is_active": true}).
		OrderBy("e.created_at DESC")

	if filter.Category != "" && filter.Category != "all" {
		categoryID, err := strconv.ParseUint(filter.Category, 10, 64)
		if err != nil {
			return nil, apperrors.NewHttpError(400, "identifiant de catégorie invalide", err, nil)
		}
		builder = builder.Where(sq.Eq{"e.category_id": categoryID})
	}
	if filter.Search != "" {
		builder = builder.Where(sq.ILike{"e.name": "%" + filter.Search + "%"})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	equipments := make([]entities.Equipment, 0)
	for rows.Next() {
		e, err := scanEquipmentWithCategory(rows)
		if err != nil {
			return nil, err
		}
		equipments = append(equipments, *e)
	}
	return equipments, rows.Err()
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	query := `
		SELECT ` + equipmentJoinedFields + `
		FROM equipments e
		JOIN categories c ON c.id = e.category_id
		WHERE e.id = $1`
	return scanEquipmentWithCategory(r.storage.QueryRow(ctx, query, id))
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	criticalLevel := defaultCriticalLevel
	if payload.CriticalLevel != nil {
		criticalLevel = *payload.CriticalLevel
	}

	var id uint64
	err := r.storage.QueryRow(ctx, `
		INSERT INTO equipments (name, category_id, current_stock, critical_level, unit, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		payload.Name,
		payload.CategoryID,
		payload.CurrentStock,
		criticalLevel,
		payload.Unit,
		payload.Description,
	).Scan(&id)
	if err != nil {
		return nil, err
	}

	return r.FindEquipment(ctx, id)
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	builder := psql.Update("equipments").Set("updated_at", sq.Expr("CURRENT_TIMESTAMP"))

	if payload.Name != nil {
		builder = builder.Set("name", *payload.Name)
	}
	if payload.CategoryID != nil {
		builder = builder.Set("category_id", *payload.CategoryID)
	}
	if payload.CurrentStock != nil {
		// Прямая админская правка стока, в обход журнала - осознанно разрешена.
		builder = builder.Set("current_stock", *payload.CurrentStock)
	}
	if payload.CriticalLevel != nil {
		builder = builder.Set("critical_level", *payload.CriticalLevel)
	}
	if payload.Unit != nil {
		builder = builder.Set("unit", *payload.Unit)
	}
	if payload.Description != nil {
		builder = builder.Set("description", *payload.Description)
	}

	query, args, err := builder.Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected() == 0 {
		return nil, apperrors.ErrNotFound
	}

	return r.FindEquipment(ctx, id)
}

// DeactivateEquipment - мягкое удаление: записи журнала должны оставаться
// разрешимыми, поэтому строки оборудования физически не удаляются.
func (r *EquipmentRepository) DeactivateEquipment(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `
		UPDATE equipments SET is_active = FALSE, updated_at = CURRENT_TIMESTAMP WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
