package entities

import (
	"time"

	"github.com/aarondl/null/v8"

	"helpdesk-system/pkg/types"
)

// Типы тикетов
const (
	TicketTypePanne      = "panne"
	TicketTypeEquipement = "equipement"
)

// Статусы. Переходы не форсируются: любой статус можно выставить напрямую через PUT.
const (
	TicketStatusNouveau = "nouveau"
	TicketStatusEnCours = "en-cours"
	TicketStatusResolu  = "resolu"
	TicketStatusFerme   = "ferme"
)

// Приоритеты
const (
	TicketPriorityFaible   = "faible"
	TicketPriorityNormale  = "normale"
	TicketPriorityHaute    = "haute"
	TicketPriorityCritique = "critique"
)

// Срочность запроса оборудования
const (
	UrgencyNormale = "normale"
	UrgencyUrgente = "urgente"
)

// Solution - один предложенный вариант решения для тикета-поломки.
// Confidence всегда в [0,100], зажимается на границе сервиса.
type Solution struct {
	ID            string    `json:"id"`
	TicketID      uint64    `json:"-"`
	Title         string    `json:"solution"`
	Confidence    int       `json:"confidence"`
	Steps         []string  `json:"steps"`
	EstimatedTime string    `json:"estimated_time"`
	CreatedAt     time.Time `json:"created_at"`
}

// EquipmentRequest имеет смысл только для тикетов типа equipement.
type EquipmentRequest struct {
	EquipmentType string `json:"equipment_type"`
	Quantity      int    `json:"quantity"`
	Urgency       string `json:"urgency"`
	Justification string `json:"justification"`
}

type Ticket struct {
	ID          uint64      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Type        string      `json:"type"`
	Status      string      `json:"status"`
	Priority    string      `json:"priority"`
	AssignedTo  null.String `json:"assigned_to"`

	types.BaseEntity

	Solutions []Solution        `json:"solutions" db:"-"`
	Equipment *EquipmentRequest `json:"equipment,omitempty" db:"-"`
}
