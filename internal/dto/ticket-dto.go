package dto

type EquipmentRequestDTO struct {
	EquipmentType string `json:"equipment_type" validate:"required"`
	Quantity      int    `json:"quantity" validate:"required,gte=1"`
	Urgency       string `json:"urgency" validate:"required,oneof=normale urgente"`
	Justification string `json:"justification" validate:"required"`
}

type CreateTicketDTO struct {
	Title       string               `json:"title" validate:"required"`
	Description string               `json:"description" validate:"required"`
	Type        string               `json:"type" validate:"required,oneof=panne equipement"`
	Priority    string               `json:"priority" validate:"omitempty,oneof=faible normale haute critique"`
	AssignedTo  *string              `json:"assigned_to" validate:"omitempty"`
	Equipment   *EquipmentRequestDTO `json:"equipment" validate:"omitempty"`
}

// UpdateTicketDTO - частичное слияние: применяются только переданные поля.
type UpdateTicketDTO struct {
	Title       *string              `json:"title,omitempty" validate:"omitempty,min=1"`
	Description *string              `json:"description,omitempty" validate:"omitempty,min=1"`
	Status      *string              `json:"status,omitempty" validate:"omitempty,oneof=nouveau en-cours resolu ferme"`
	Priority    *string              `json:"priority,omitempty" validate:"omitempty,oneof=faible normale haute critique"`
	AssignedTo  *string              `json:"assigned_to,omitempty" validate:"omitempty"`
	Equipment   *EquipmentRequestDTO `json:"equipment,omitempty" validate:"omitempty"`
}

// TicketFilterDTO - query-параметры списка. Пустая строка или "all" = фильтр выключен.
type TicketFilterDTO struct {
	Status   string
	Type     string
	Priority string
	Search   string
}
