package repositories

import (
	"context"
	"errors"

	"helpdesk-system/internal/dto"
	"helpdesk-system/internal/entities"
	apperrors "helpdesk-system/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userFields = "id, username, email, password_hash, role, department, is_active, created_at, updated_at"

type UserRepositoryInterface interface {
	FindUserByEmail(ctx context.Context, email string) (*entities.User, error)
	FindUserByID(ctx context.Context, id uint64) (*entities.User, error)
	IsUserActive(ctx context.Context, id uint64) (bool, error)
	CreateUser(ctx context.Context, payload dto.RegisterDTO, passwordHash string) (*entities.User, error)
}

type UserRepository struct {
	storage *pgxpool.Pool
}

func NewUserRepository(storage *pgxpool.Pool) UserRepositoryInterface {
	return &UserRepository{storage: storage}
}

func (r *UserRepository) scanUser(row pgx.Row) (*entities.User, error) {
	var u entities.User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.Department,
		&u.IsActive,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindUserByEmail возвращает только активных пользователей: логин
// деактивированного аккаунта эквивалентен неверным учётным данным.
func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	query := `SELECT ` + userFields + ` FROM users WHERE email = $1 AND is_active = TRUE`
	return r.scanUser(r.storage.QueryRow(ctx, query, email))
}

func (r *UserRepository) FindUserByID(ctx context.Context, id uint64) (*entities.User, error) {
	query := `SELECT ` + userFields + ` FROM users WHERE id = $1`
	return r.scanUser(r.storage.QueryRow(ctx, query, id))
}

func (r *UserRepository) IsUserActive(ctx context.Context, id uint64) (bool, error) {
	var active bool
	err := r.storage.QueryRow(ctx, `SELECT is_active FROM users WHERE id = $1`, id).Scan(&active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return active, nil
}

func (r *UserRepository) CreateUser(ctx context.Context, payload dto.RegisterDTO, passwordHash string) (*entities.User, error) {
	role := payload.Role
	if role == "" {
		role = entities.RoleUser
	}

	query := `
		INSERT INTO users (username, email, password_hash, role, department)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + userFields

	user, err := r.scanUser(r.storage.QueryRow(ctx, query,
		payload.Username,
		payload.Email,
		passwordHash,
		role,
		payload.Department,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 - нарушение уникальности email/username
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrConflict
		}
		return nil, err
	}
	return user, nil
}
