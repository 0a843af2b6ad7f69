package dto

type CreateEmployeeDTO struct {
	Name       string `json:"name" validate:"required"`
	Department string `json:"department" validate:"required"`
}

type UpdateEmployeeDTO struct {
	Name       *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Department *string `json:"department,omitempty" validate:"omitempty,min=1"`
}

type AssignEquipmentDTO struct {
	EmployeeID  uint64 `json:"employee_id" validate:"required,gt=0"`
	EquipmentID uint64 `json:"equipment_id" validate:"required,gt=0"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
}
