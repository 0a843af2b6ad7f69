package entities

import (
	"github.com/aarondl/null/v8"

	"helpdesk-system/pkg/types"
)

type Equipment struct {
	ID            uint64      `json:"id"`
	Name          string      `json:"name"`
	CategoryID    uint64      `json:"category_id"`
	CurrentStock  int         `json:"current_stock"`
	CriticalLevel int         `json:"critical_level"`
	Unit          string      `json:"unit"`
	Description   null.String `json:"description"`
	IsActive      bool        `json:"is_active"`

	types.BaseEntity

	// Связанные данные, не колонки таблицы
	Category *Category `json:"category,omitempty" db:"-"`
}

// IsCritical - производный признак, в базе не хранится.
func (e *Equipment) IsCritical() bool {
	return e.CurrentStock <= e.CriticalLevel
}
