package types

import "time"

// BaseEntity - общие timestamp-поля всех таблиц.
type BaseEntity struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
