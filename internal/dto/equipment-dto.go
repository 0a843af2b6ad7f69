package dto

type CreateEquipmentDTO struct {
	Name          string  `json:"name" validate:"required"`
	CategoryID    uint64  `json:"category_id" validate:"required,gt=0"`
	CurrentStock  int     `json:"current_stock" validate:"gte=0"`
	CriticalLevel *int    `json:"critical_level" validate:"omitempty,gte=0"`
	Unit          string  `json:"unit" validate:"required"`
	Description   *string `json:"description" validate:"omitempty"`
}

type UpdateEquipmentDTO struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,min=1"`
	CategoryID    *uint64 `json:"category_id,omitempty" validate:"omitempty,gt=0"`
	CurrentStock  *int    `json:"current_stock,omitempty" validate:"omitempty,gte=0"`
	CriticalLevel *int    `json:"critical_level,omitempty" validate:"omitempty,gte=0"`
	Unit          *string `json:"unit,omitempty" validate:"omitempty,min=1"`
	Description   *string `json:"description,omitempty" validate:"omitempty"`
}

// EquipmentFilterDTO - фильтры списка. Category - id категории, "all" = без фильтра.
type EquipmentFilterDTO struct {
	Category string
	Search   string
}
