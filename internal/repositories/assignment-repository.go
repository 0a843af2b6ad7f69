package repositories

import (
	"context"

	"helpdesk-system/internal/entities"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AssignmentRepositoryInterface interface {
	GetAssignmentHistory(ctx context.Context) ([]entities.Assignment, error)
}

// AssignmentRepository читает журнал движения стока. Журнал append-only:
// строки создаёт только AssignEquipment, обновлений и удалений здесь нет.
type AssignmentRepository struct {
	storage *pgxpool.Pool
}

func NewAssignmentRepository(storage *pgxpool.Pool) AssignmentRepositoryInterface {
	return &AssignmentRepository{storage: storage}
}

func (r *AssignmentRepository) GetAssignmentHistory(ctx context.Context) ([]entities.Assignment, error) {
	query := `
		SELECT a.id, a.employee_id, a.equipment_id, a.quantity, a.type, a.notes,
			a.assigned_by, a.created_at,
			emp.name, emp.department, eq.name, u.username
		FROM assignments a
		JOIN employees emp ON emp.id = a.employee_id
		JOIN equipments eq ON eq.id = a.equipment_id
		JOIN users u ON u.id = a.assigned_by
		ORDER BY a.created_at DESC`

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := make([]entities.Assignment, 0)
	for rows.Next() {
		var a entities.Assignment
		err := rows.Scan(
			&a.ID,
			&a.EmployeeID,
			&a.EquipmentID,
			&a.Quantity,
			&a.Type,
			&a.Notes,
			&a.AssignedBy,
			&a.CreatedAt,
			&a.EmployeeName,
			&a.EmployeeDepartment,
			&a.EquipmentName,
			&a.AssignedByUsername,
		)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}
