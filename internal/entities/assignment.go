package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

const (
	AssignmentTypeAssignment = "assignment"
	// Деассигнация присутствует в модели, но ни одна операция её пока не создаёт.
	AssignmentTypeDeassignment = "deassignment"
)

// Assignment - неизменяемая запись журнала движения стока.
// Строки только добавляются, обновления и удаления не предусмотрены.
type Assignment struct {
	ID          uint64      `json:"id"`
	EmployeeID  uint64      `json:"employee_id"`
	EquipmentID uint64      `json:"equipment_id"`
	Quantity    int         `json:"quantity"`
	Type        string      `json:"type"`
	Notes       null.String `json:"notes"`
	AssignedBy  uint64      `json:"assigned_by"`
	CreatedAt   time.Time   `json:"created_at"`

	// Связанные данные для истории
	EmployeeName       string `json:"employee_name,omitempty" db:"-"`
	EmployeeDepartment string `json:"employee_department,omitempty" db:"-"`
	EquipmentName      string `json:"equipment_name,omitempty" db:"-"`
	AssignedByUsername string `json:"assigned_by_username,omitempty" db:"-"`
}
