package repositories

import (
	"context"
	"errors"

	"helpdesk-system/internal/dto"
	"helpdesk-system/internal/entities"
	apperrors "helpdesk-system/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const employeeFields = "id, name, department, is_active, created_at, updated_at"

type EmployeeRepositoryInterface interface {
	GetEmployees(ctx context.Context) ([]entities.Employee, error)
	FindEmployee(ctx context.Context, id uint64) (*entities.Employee, error)
	CreateEmployee(ctx context.Context, payload dto.CreateEmployeeDTO) (*entities.Employee, error)
	UpdateEmployee(ctx context.Context, id uint64, payload dto.UpdateEmployeeDTO) (*entities.Employee, error)
	DeactivateEmployee(ctx context.Context, id uint64) error
	AssignEquipment(ctx context.Context, payload dto.AssignEquipmentDTO, assignedBy uint64) error
}

type EmployeeRepository struct {
	storage   *pgxpool.Pool
	txManager TxManagerInterface
}

func NewEmployeeRepository(storage *pgxpool.Pool, txManager TxManagerInterface) EmployeeRepositoryInterface {
	return &EmployeeRepository{storage: storage, txManager: txManager}
}

func scanEmployee(row pgx.Row) (*entities.Employee, error) {
	var e entities.Employee
	err := row.Scan(&e.ID, &e.Name, &e.Department, &e.IsActive, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	e.AssignedItems = make([]entities.AssignedItem, 0)
	return &e, nil
}

func (r *EmployeeRepository) GetEmployees(ctx context.Context) ([]entities.Employee, error) {
	query := `SELECT ` + employeeFields + ` FROM employees WHERE is_active = TRUE ORDER BY created_at DESC`

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]entities.Employee, 0)
	ids := make([]uint64, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *e)
		ids = append(ids, e.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachAssignedItems(ctx, employees, ids); err != nil {
		return nil, err
	}
	return employees, nil
}

// attachAssignedItems одним запросом подгружает закреплённое оборудование
// (с именами) для пачки сотрудников.
func (r *EmployeeRepository) attachAssignedItems(ctx context.Context, employees []entities.Employee, ids []uint64) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := psql.
		Select("ee.employee_id", "ee.equipment_id", "eq.name", "ee.quantity", "ee.assigned_date").
		From("employee_equipment ee").
		Join("equipments eq ON eq.id = ee.equipment_id").
		Where(sq.Eq{"ee.employee_id": ids}).
		OrderBy("ee.assigned_date ASC").
		ToSql()
	if err != nil {
		return err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	byEmployee := make(map[uint64][]entities.AssignedItem, len(ids))
	for rows.Next() {
		var employeeID uint64
		var item entities.AssignedItem
		if err := rows.Scan(&employeeID, &item.EquipmentID, &item.EquipmentName, &item.Quantity, &item.AssignedDate); err != nil {
			return err
		}
		byEmployee[employeeID] = append(byEmployee[employeeID], item)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range employees {
		if items, ok := byEmployee[employees[i].ID]; ok {
			employees[i].AssignedItems = items
		}
	}
	return nil
}

func (r *EmployeeRepository) FindEmployee(ctx context.Context, id uint64) (*entities.Employee, error) {
	query := `SELECT ` + employeeFields + ` FROM employees WHERE id = $1`
	employee, err := scanEmployee(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}

	employees := []entities.Employee{*employee}
	if err := r.attachAssignedItems(ctx, employees, []uint64{id}); err != nil {
		return nil, err
	}
	return &employees[0], nil
}

func (r *EmployeeRepository) CreateEmployee(ctx context.Context, payload dto.CreateEmployeeDTO) (*entities.Employee, error) {
	query := `
		INSERT INTO employees (name, department)
		VALUES ($1, $2)
		RETURNING ` + employeeFields

	return scanEmployee(r.storage.QueryRow(ctx, query, payload.Name, payload.Department))
}

func (r *EmployeeRepository) UpdateEmployee(ctx context.Context, id uint64, payload dto.UpdateEmployeeDTO) (*entities.Employee, error) {
	builder := psql.Update("employees").Set("updated_at", sq.Expr("CURRENT_TIMESTAMP"))

	if payload.Name != nil {
		builder = builder.Set("name", *payload.Name)
	}
	if payload.Department != nil {
		builder = builder.Set("department", *payload.Department)
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

	return r.FindEmployee(ctx, id)
}

func (r *EmployeeRepository) DeactivateEmployee(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `
		UPDATE employees SET is_active = FALSE, updated_at = CURRENT_TIMESTAMP WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// AssignEquipment - три записи (декремент стока, позиция сотрудника, строка
// журнала) в одной транзакции: либо применяются все, либо ни одна.
// Декремент условный, поэтому параллельные выдачи не могут увести сток в минус.
func (r *EmployeeRepository) AssignEquipment(ctx context.Context, payload dto.AssignEquipmentDTO, assignedBy uint64) error {
	return r.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		var employeeExists bool
		err := tx.QueryRow(ctx, `
			SELECT EXISTS (SELECT 1 FROM employees WHERE id = $1 AND is_active = TRUE)`,
			payload.EmployeeID,
		).Scan(&employeeExists)
		if err != nil {
			return err
		}
		if !employeeExists {
			return apperrors.ErrNotFound
		}

		result, err := tx.Exec(ctx, `
			UPDATE equipments
			SET current_stock = current_stock - $1, updated_at = CURRENT_TIMESTAMP
			WHERE id = $2 AND is_active = TRUE AND current_stock >= $1`,
			payload.Quantity, payload.EquipmentID,
		)
		if err != nil {
			return err
		}
		if result.RowsAffected() == 0 {
			// Различаем "нет такого оборудования" и "не хватило стока".
			var equipmentExists bool
			err := tx.QueryRow(ctx, `
				SELECT EXISTS (SELECT 1 FROM equipments WHERE id = $1 AND is_active = TRUE)`,
				payload.EquipmentID,
			).Scan(&equipmentExists)
			if err != nil {
				return err
			}
			if !equipmentExists {
				return apperrors.ErrNotFound
			}
			return apperrors.ErrInsufficientStock
		}

		// Повторная выдача того же оборудования накапливает количество,
		// дубликат позиции не создаётся.
		_, err = tx.Exec(ctx, `
			INSERT INTO employee_equipment (employee_id, equipment_id, quantity)
			VALUES ($1, $2, $3)
			ON CONFLICT (employee_id, equipment_id)
			DO UPDATE SET quantity = employee_equipment.quantity + EXCLUDED.quantity`,
			payload.EmployeeID, payload.EquipmentID, payload.Quantity,
		)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO assignments (employee_id, equipment_id, quantity, type, assigned_by)
			VALUES ($1, $2, $3, $4, $5)`,
			payload.EmployeeID, payload.EquipmentID, payload.Quantity,
			entities.AssignmentTypeAssignment, assignedBy,
		)
		return err
	})
}
