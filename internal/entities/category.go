package entities

import (
	"github.com/aarondl/null/v8"

	"helpdesk-system/pkg/types"
)

type Category struct {
	ID          uint64      `json:"id"`
	Name        string      `json:"name"`
	Description null.String `json:"description"`
	IsActive    bool        `json:"is_active"`

	types.BaseEntity
}
