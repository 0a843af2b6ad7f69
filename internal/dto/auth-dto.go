package dto

import "helpdesk-system/internal/entities"

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterDTO struct {
	Username   string `json:"username" validate:"required,min=3"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	Role       string `json:"role" validate:"omitempty,oneof=admin user"`
	Department string `json:"department" validate:"required"`
}

type LoginResponseDTO struct {
	Token string       `json:"token"`
	User  ShortUserDTO `json:"user"`
}

type ShortUserDTO struct {
	ID         uint64 `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department"`
}

func NewShortUserDTO(u *entities.User) ShortUserDTO {
	return ShortUserDTO{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		Role:       u.Role,
		Department: u.Department,
	}
}
