package dto

import "helpdesk-system/internal/entities"

type PreviewSolutionsDTO struct {
	Description string `json:"description" validate:"required"`
	Title       string `json:"title" validate:"omitempty"`
}

type GeneratedSolutionsDTO struct {
	TicketID  uint64              `json:"ticket_id"`
	Solutions []entities.Solution `json:"solutions"`
}

type ConfidenceBucketsDTO struct {
	High   int `json:"high"`   // > 80
	Medium int `json:"medium"` // 60-80 включительно
	Low    int `json:"low"`    // < 60
}

type SolutionStatsDTO struct {
	TotalTicketsWithSolutions int                  `json:"total_tickets_with_solutions"`
	AverageConfidence         int                  `json:"average_confidence"`
	SolutionsByConfidence     ConfidenceBucketsDTO `json:"solutions_by_confidence"`
}
