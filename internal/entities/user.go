package entities

import (
	"helpdesk-system/pkg/types"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID           uint64 `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
	Department   string `json:"department"`
	IsActive     bool   `json:"is_active"`

	types.BaseEntity
}
