package entities

import (
	"time"

	"helpdesk-system/pkg/types"
)

type AssignedItem struct {
	EquipmentID   uint64    `json:"equipment_id"`
	EquipmentName string    `json:"equipment_name"`
	Quantity      int       `json:"quantity"`
	AssignedDate  time.Time `json:"assigned_date"`
}

type Employee struct {
	ID         uint64 `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	IsActive   bool   `json:"is_active"`

	types.BaseEntity

	AssignedItems []AssignedItem `json:"assigned_items" db:"-"`
}
